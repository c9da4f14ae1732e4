package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/linkedin-ads-ingestor/pkg/apiErrors"
	"github.com/vfg2006/linkedin-ads-ingestor/pkg/log"
)

//go:generate mockgen -source=cron.go -destination=mocks/mock_cron.go -package=mocks

// CronJobService é o agendador da ingestão diária
type CronJobService interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

// RunCronJob dispara a ingestão agendada em segundo plano
func RunCronJob(service CronJobService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - RunCronJob")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de ingestão agendada não disponível", nil)
			return
		}

		if !service.TriggerManualSync(r.Context()) {
			apiErrors.WriteError(w, apiErrors.ErrRunInProgress, "Ingestão já em andamento", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    "ingestion",
		})
	})
}

// GetCronStatus retorna o status do agendador
func GetCronStatus(service CronJobService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - GetCronStatus")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de ingestão agendada não disponível", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"ingestion": service.GetStatus(),
		})
	})
}
