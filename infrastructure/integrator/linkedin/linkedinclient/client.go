package linkedinclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	linkedindomain "github.com/vfg2006/linkedin-ads-ingestor/infrastructure/integrator/linkedin/domain"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/config"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/domain"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const restliProtocolVersion = "2.0.0"

//go:generate mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks

// TokenAPI reúne as chamadas usadas pelo ciclo de vida do token
type TokenAPI interface {
	CheckTokenValidity(ctx context.Context, token string) (bool, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (*TokenResponse, error)
}

type Client interface {
	TokenAPI
	GetAdAccount(ctx context.Context, token, accountID string) (*linkedindomain.AdAccount, error)
	SearchAdAccounts(ctx context.Context, token string) ([]linkedindomain.AdAccount, error)
	GetAdCampaign(ctx context.Context, token, accountID, campaignID string) (*linkedindomain.Campaign, error)
	GetAdCampaignGroup(ctx context.Context, token, accountID, campaignGroupID string) (*linkedindomain.CampaignGroup, error)
	GetAdAnalytics(ctx context.Context, token string, query linkedindomain.AnalyticsQuery) (*linkedindomain.AnalyticsResponse, error)
}

type LinkedInClient struct {
	Cfg        config.LinkedIn
	HTTPClient *http.Client
	limiter    *rate.Limiter
	oauth      *oauth2.Config
}

func NewClient(cfg config.LinkedIn) *LinkedInClient {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &LinkedInClient{
		Cfg:        cfg,
		HTTPClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(limit, 1),
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
	}
}

// get executa um GET autenticado na API REST e retorna o corpo em caso de sucesso
func (c *LinkedInClient) get(ctx context.Context, token, requestURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}
	req.Header = http.Header{
		"Authorization":             {"Bearer " + token},
		"Linkedin-Version":          {c.Cfg.Version},
		"X-Restli-Protocol-Version": {restliProtocolVersion},
		"Content-Type":              {"application/json"},
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, &domain.UpstreamAPIError{Endpoint: endpointOf(req), Err: err}
	}
	defer resp.Body.Close()

	return HandleResponse(resp)
}

// HandleResponse lê o corpo e converte respostas não 2xx em UpstreamAPIError
func HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	apiErr := &domain.UpstreamAPIError{
		Endpoint:   endpointOf(resp.Request),
		StatusCode: resp.StatusCode,
		Message:    string(body),
	}

	var errorResp linkedindomain.ErrorResponse
	if json.Unmarshal(body, &errorResp) == nil && errorResp.Message != "" {
		apiErr.Message = errorResp.Message
		apiErr.ServiceErrorCode = errorResp.ServiceErrorCode
		if errorResp.IsTokenExpired() {
			logrus.WithField("service_error_code", errorResp.ServiceErrorCode).Warn("Token do LinkedIn expirado ou revogado")
		}
	}

	return nil, apiErr
}

// endpointOf retorna o caminho da requisição sem a query string
func endpointOf(req *http.Request) string {
	if req == nil || req.URL == nil {
		return ""
	}
	return req.URL.Path
}
