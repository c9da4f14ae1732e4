package linkedinclient

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/linkedin-ads-ingestor/infrastructure/secretstore"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/config"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/domain"
	"github.com/vfg2006/linkedin-ads-ingestor/pkg/metrics"
)

// TokenManager gerencia o ciclo de vida do access token do LinkedIn.
// Os tokens vivem apenas no secret store, nunca em memória entre execuções.
type TokenManager struct {
	api              TokenAPI
	store            secretstore.Store
	accessTokenName  string
	refreshTokenName string
	mu               sync.Mutex
}

// NewTokenManager cria uma nova instância do gerenciador de tokens
func NewTokenManager(cfg config.Secrets, api TokenAPI, store secretstore.Store) *TokenManager {
	return &TokenManager{
		api:              api,
		store:            store,
		accessTokenName:  cfg.AccessTokenName,
		refreshTokenName: cfg.RefreshTokenName,
	}
}

// GetValidToken retorna um access token válido, renovando e persistindo quando necessário
func (tm *TokenManager) GetValidToken(ctx context.Context) (string, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	token, err := tm.store.ReadLatest(ctx, tm.accessTokenName)
	if err != nil {
		logrus.WithError(err).WithField("secret", tm.accessTokenName).Warn("Não foi possível ler o access token, tentando renovar")
		token = ""
	}

	if token != "" {
		valid, err := tm.api.CheckTokenValidity(ctx, token)
		if err != nil {
			logrus.WithError(err).Warn("Erro ao verificar validade do token, tentando renovar")
		}
		if valid {
			metrics.TokenRefreshTotal.WithLabelValues(metrics.TokenReused).Inc()
			logrus.Debug("Access token atual ainda é válido")
			return token, nil
		}
	}

	token, err = tm.refresh(ctx)
	if err != nil {
		metrics.TokenRefreshTotal.WithLabelValues(metrics.TokenRefreshFailed).Inc()
		return "", err
	}

	return token, nil
}

func (tm *TokenManager) refresh(ctx context.Context) (string, error) {
	refreshToken, err := tm.store.ReadLatest(ctx, tm.refreshTokenName)
	if err != nil && !errors.Is(err, secretstore.ErrSecretNotFound) {
		return "", &domain.MissingCredentialError{SecretName: tm.refreshTokenName, Err: err}
	}
	if refreshToken == "" {
		logrus.WithField("secret", tm.refreshTokenName).Error("Refresh token não encontrado. É necessário reautorizar o aplicativo")
		return "", &domain.MissingCredentialError{SecretName: tm.refreshTokenName}
	}

	logrus.Info("Iniciando renovação do access token do LinkedIn...")
	tokenResponse, err := tm.api.RefreshAccessToken(ctx, refreshToken)
	if err != nil {
		return "", err
	}

	if err := tm.store.WriteNewVersion(ctx, tm.accessTokenName, tokenResponse.AccessToken); err != nil {
		return "", fmt.Errorf("erro ao salvar novo access token: %w", err)
	}

	if !tokenResponse.Rotated() {
		metrics.TokenRefreshTotal.WithLabelValues(metrics.TokenRefreshed).Inc()
		return tokenResponse.AccessToken, nil
	}

	if err := tm.store.WriteNewVersion(ctx, tm.refreshTokenName, tokenResponse.RefreshToken); err != nil {
		return "", fmt.Errorf("erro ao salvar novo refresh token: %w", err)
	}

	logrus.Info("Refresh token rotacionado e salvo como nova versão")
	metrics.TokenRefreshTotal.WithLabelValues(metrics.TokenRotated).Inc()

	return tokenResponse.AccessToken, nil
}
