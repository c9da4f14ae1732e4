package domain

import (
	"fmt"
	"strings"
)

// MissingCredentialError indica que o refresh token não existe no secret store.
// Exige intervenção manual.
type MissingCredentialError struct {
	SecretName string
	Err        error
}

func (e *MissingCredentialError) Error() string {
	msg := fmt.Sprintf("missing credential: refresh token %q not found in secret store", e.SecretName)
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *MissingCredentialError) Unwrap() error {
	return e.Err
}

// TokenRefreshError indica que a troca do refresh token falhou ou não retornou access token
type TokenRefreshError struct {
	StatusCode int
	Details    string
	Err        error
}

func (e *TokenRefreshError) Error() string {
	msg := "token refresh failed"
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Details != "" {
		msg += ": " + e.Details
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *TokenRefreshError) Unwrap() error {
	return e.Err
}

// UpstreamAPIError é qualquer resposta não 2xx da API de anúncios
type UpstreamAPIError struct {
	Endpoint         string
	StatusCode       int
	ServiceErrorCode int
	Message          string
	Err              error
}

func (e *UpstreamAPIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream API error on %s: %s", e.Endpoint, e.Err.Error())
	}
	msg := fmt.Sprintf("upstream API error on %s: status %d", e.Endpoint, e.StatusCode)
	if e.ServiceErrorCode != 0 {
		msg = fmt.Sprintf("%s (service error %d)", msg, e.ServiceErrorCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

func (e *UpstreamAPIError) Unwrap() error {
	return e.Err
}

// DestinationNotFoundError indica dataset ou tabela inexistente no destino.
// Table vazio significa que o próprio dataset não existe.
type DestinationNotFoundError struct {
	Dataset string
	Table   string
}

func (e *DestinationNotFoundError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("couldn't find dataset: %s", e.Dataset)
	}
	return fmt.Sprintf("couldn't find table: %s (dataset %s)", e.Table, e.Dataset)
}

// LoadError indica falha no job de carga em lote
type LoadError struct {
	Table     string
	Details   []string
	Expected  int64
	Confirmed int64
	Err       error
}

func (e *LoadError) Error() string {
	msg := fmt.Sprintf("load into %s failed", e.Table)
	if len(e.Details) > 0 {
		msg += ": " + strings.Join(e.Details, "; ")
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Err == nil && len(e.Details) == 0 && e.Expected != e.Confirmed {
		msg = fmt.Sprintf("%s: backend confirmed %d rows, expected %d", msg, e.Confirmed, e.Expected)
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
