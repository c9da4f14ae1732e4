package ingesting

import (
	"errors"
	"net/http"

	"github.com/vfg2006/linkedin-ads-ingestor/internal/domain"
)

var (
	ErrUnknownTable  = errors.New("unknown table")
	ErrRunInProgress = errors.New("an ingestion run is already in progress")
)

// StatusCode mapeia o erro de uma execução para o status HTTP da resposta
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, domain.ErrInvalidDateRange), errors.Is(err, ErrUnknownTable):
		return http.StatusBadRequest
	case errors.Is(err, ErrRunInProgress):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
