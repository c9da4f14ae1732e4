package ingesting

import (
	"context"
	"time"

	linkedindomain "github.com/vfg2006/linkedin-ads-ingestor/infrastructure/integrator/linkedin/domain"
	"github.com/vfg2006/linkedin-ads-ingestor/infrastructure/notifier"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// TokenProvider entrega um access token válido para a execução
type TokenProvider interface {
	GetValidToken(ctx context.Context) (string, error)
}

// AnalyticsFetcher consulta a API de anúncios
type AnalyticsFetcher interface {
	// GetAccountName retorna N/A quando o nome não pode ser resolvido
	GetAccountName(ctx context.Context, token string) string
	FetchAnalytics(ctx context.Context, token string, query linkedindomain.AnalyticsQuery) (*linkedindomain.AnalyticsResponse, []string, error)
}

// Flattener converte a resposta do adAnalytics em linhas planas
type Flattener interface {
	Flatten(ctx context.Context, token string, resp *linkedindomain.AnalyticsResponse, date time.Time, accountName, accountID string) []domain.FlattenedRow
}

// FlattenerFactory cria um Flattener novo (com cache vazio) por execução
type FlattenerFactory func() Flattener

type Notifier interface {
	Notify(ctx context.Context, msg notifier.Message) int
}
