package linkedinclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/domain"
	"golang.org/x/oauth2"
)

// TokenResponse é o resultado da troca do refresh token. RefreshToken só é
// preenchido quando a API rotacionou o refresh token.
type TokenResponse struct {
	AccessToken  string
	RefreshToken string
	Expiry       time.Time
}

// Rotated indica se a resposta trouxe um novo refresh token
func (t *TokenResponse) Rotated() bool {
	return t.RefreshToken != ""
}

// CheckTokenValidity verifica se o token é válido fazendo uma consulta simples ao /v2/me
func (c *LinkedInClient) CheckTokenValidity(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, fmt.Errorf("token não pode ser vazio")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Cfg.APIURL+"/v2/me", nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar token: %w", err)
	}
	defer resp.Body.Close()

	// Se o status for diferente de 200, o token pode ter expirado ou ser inválido
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		logrus.Warnf("Token inválido ou expirado. Status: %d, Corpo: %s", resp.StatusCode, string(body))
		return false, nil
	}

	return true, nil
}

// RefreshAccessToken troca o refresh token por um novo access token (grant refresh_token)
func (c *LinkedInClient) RefreshAccessToken(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	if refreshToken == "" {
		return nil, &domain.TokenRefreshError{Details: "refresh token vazio"}
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.HTTPClient)

	token, err := c.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken}).Token()
	if err != nil {
		refreshErr := &domain.TokenRefreshError{Err: err}

		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			refreshErr.Err = nil
			refreshErr.Details = string(retrieveErr.Body)
			if retrieveErr.Response != nil {
				refreshErr.StatusCode = retrieveErr.Response.StatusCode
			}
		}

		logrus.WithError(refreshErr).Error("Erro ao renovar access token do LinkedIn")
		return nil, refreshErr
	}

	if token.AccessToken == "" {
		return nil, &domain.TokenRefreshError{Details: "resposta sem access_token"}
	}

	response := &TokenResponse{
		AccessToken: token.AccessToken,
		Expiry:      token.Expiry,
	}

	// O oauth2 repete o refresh token antigo quando a resposta não traz um novo,
	// por isso a rotação é detectada pelo campo cru da resposta
	if rotated, ok := token.Extra("refresh_token").(string); ok && rotated != "" {
		response.RefreshToken = rotated
	}

	if !token.Expiry.IsZero() {
		logrus.Infof("Access token do LinkedIn renovado com sucesso. Expira em %s.", FormatDuration(time.Until(token.Expiry)))
	}

	return response, nil
}

// FormatDuration formata a duração para um formato legível
func FormatDuration(duration time.Duration) string {
	days := duration / (24 * time.Hour)
	hours := (duration % (24 * time.Hour)) / time.Hour
	minutes := (duration % time.Hour) / time.Minute

	return fmt.Sprintf("%d dias, %d horas e %d minutos", days, hours, minutes)
}
