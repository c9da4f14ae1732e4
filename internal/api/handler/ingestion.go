package handler

import (
	"bytes"
	"context"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/usecases/ingesting"
	"github.com/vfg2006/linkedin-ads-ingestor/pkg/apiErrors"
	"github.com/vfg2006/linkedin-ads-ingestor/pkg/log"
	"github.com/vfg2006/linkedin-ads-ingestor/pkg/utils"
)

//go:generate mockgen -source=ingestion.go -destination=mocks/mock_ingestion.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// IngestionRunner executa uma ingestão de forma síncrona
type IngestionRunner interface {
	Run(ctx context.Context, req ingesting.RunRequest) ingesting.RunResult
}

type RunIngestionRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Table     string `json:"table"`
}

type RunIngestionResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	RunID   string `json:"run_id,omitempty"`
}

// RunIngestion executa a ingestão e responde quando ela termina. O corpo é opcional.
func RunIngestion(runner IngestionRunner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - RunIngestion")

		body, err := io.ReadAll(r.Body)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler corpo da requisição", nil)
			return
		}

		var payload RunIngestionRequest
		if len(bytes.TrimSpace(body)) > 0 {
			if err := json.Unmarshal(body, &payload); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", err.Error())
				return
			}
		}

		req, err := toRunRequest(payload)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", err.Error())
			return
		}

		result := runner.Run(r.Context(), req)
		logger.WithFields(log.Fields{
			"run_id":     result.RunID,
			"run_status": result.StatusCode,
		}).Info("Ingestão via API finalizada")

		writeJSON(w, result.StatusCode, RunIngestionResponse{
			Message: result.Message,
			Status:  result.StatusCode,
			RunID:   result.RunID,
		})
	})
}

func toRunRequest(payload RunIngestionRequest) (ingesting.RunRequest, error) {
	start, err := utils.ParseDate(payload.StartDate)
	if err != nil {
		return ingesting.RunRequest{}, err
	}

	end, err := utils.ParseDate(payload.EndDate)
	if err != nil {
		return ingesting.RunRequest{}, err
	}

	return ingesting.RunRequest{StartDate: start, EndDate: end, Table: payload.Table}, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Warn("Erro ao codificar resposta")
	}
}
