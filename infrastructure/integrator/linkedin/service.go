package linkedin

import (
	"context"
	"strconv"

	"github.com/sirupsen/logrus"
	linkedindomain "github.com/vfg2006/linkedin-ads-ingestor/infrastructure/integrator/linkedin/domain"
	"github.com/vfg2006/linkedin-ads-ingestor/infrastructure/integrator/linkedin/linkedinclient"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/config"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/domain"
)

type LinkedInIntegrator struct {
	cfg    *config.Config
	Client linkedinclient.Client
}

func New(cfg *config.Config, client linkedinclient.Client) *LinkedInIntegrator {
	return &LinkedInIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// GetAccountName resolve o nome da conta configurada. Falhas viram N/A.
func (s *LinkedInIntegrator) GetAccountName(ctx context.Context, token string) string {
	account, err := s.Client.GetAdAccount(ctx, token, s.cfg.LinkedIn.AccountID)
	if err != nil {
		logrus.WithField("account_id", s.cfg.LinkedIn.AccountID).WithError(err).Warn("account: falha ao buscar nome da conta, usando N/A")
		return domain.NotAvailable
	}

	if account.Name == "" {
		return domain.NotAvailable
	}

	return account.Name
}

// FetchAnalytics busca as métricas de um dia e aplica o pós-processamento:
// impressions é removido quando não foi solicitado e as métricas ausentes viram 0.
// Retorna também a lista efetiva de métricas.
func (s *LinkedInIntegrator) FetchAnalytics(ctx context.Context, token string, query linkedindomain.AnalyticsQuery) (*linkedindomain.AnalyticsResponse, []string, error) {
	effective := EffectiveMetrics(query.Metrics)

	resp, err := s.Client.GetAdAnalytics(ctx, token, query)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": query.AccountID,
			"date":       query.Date.Format("2006-01-02"),
		}).WithError(err).Error("analytics: falha ao buscar métricas")
		return nil, nil, err
	}

	impressionsRequested := contains(effective, linkedindomain.FieldImpressions)

	for i := range resp.Elements {
		element := &resp.Elements[i]
		if element.Metrics == nil {
			element.Metrics = make(map[string]any, len(effective))
		}
		if !impressionsRequested {
			delete(element.Metrics, linkedindomain.FieldImpressions)
		}
		for _, m := range effective {
			if _, ok := element.Metrics[m]; !ok {
				element.Metrics[m] = int64(0)
			}
		}
	}
	resp.Metrics = effective

	logrus.WithFields(logrus.Fields{
		"account_id": query.AccountID,
		"date":       query.Date.Format("2006-01-02"),
		"elements":   len(resp.Elements),
	}).Debug("analytics: métricas recuperadas com sucesso")

	return resp, effective, nil
}

// NewFlattener cria um Flattener com cache vazio
func (s *LinkedInIntegrator) NewFlattener() *Flattener {
	return NewFlattener(s.Client)
}

// ListAdAccounts lista as contas de anúncio acessíveis pelo token
func (s *LinkedInIntegrator) ListAdAccounts(ctx context.Context, token string) ([]domain.AdAccount, error) {
	accounts, err := s.Client.SearchAdAccounts(ctx, token)
	if err != nil {
		return nil, err
	}

	result := make([]domain.AdAccount, 0, len(accounts))
	for _, a := range accounts {
		result = append(result, domain.AdAccount{
			ID:       strconv.FormatInt(a.ID, 10),
			Name:     a.Name,
			Status:   domain.AdAccountStatus(a.Status),
			Type:     a.Type,
			Currency: a.Currency,
		})
	}

	return result, nil
}

// EffectiveMetrics remove duplicatas e vazios preservando a ordem
func EffectiveMetrics(metrics []string) []string {
	out := make([]string, 0, len(metrics))
	seen := make(map[string]bool, len(metrics))
	for _, m := range metrics {
		if m == "" || m == linkedindomain.FieldPivotValues || seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
