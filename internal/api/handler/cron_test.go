package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/api/handler"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/api/handler/mocks"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/api/handler/router"
	"go.uber.org/mock/gomock"
)

func TestCronJobs(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		setup    func(service *mocks.MockCronJobService)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "Disparo manual - 202",
			method: http.MethodPost,
			path:   "/v1/cron/ingestion/run",
			setup: func(service *mocks.MockCronJobService) {
				service.EXPECT().TriggerManualSync(gomock.Any()).Return(true)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusAccepted, rec.Code)
				assert.Contains(t, rec.Body.String(), "Cron job iniciada com sucesso")
			},
		},
		{
			name:   "Disparo manual com execução em andamento - 409",
			method: http.MethodPost,
			path:   "/v1/cron/ingestion/run",
			setup: func(service *mocks.MockCronJobService) {
				service.EXPECT().TriggerManualSync(gomock.Any()).Return(false)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusConflict, rec.Code)
				assert.Contains(t, rec.Body.String(), "RUN_001")
			},
		},
		{
			name:   "Status do agendador",
			method: http.MethodGet,
			path:   "/v1/cron/status",
			setup: func(service *mocks.MockCronJobService) {
				service.EXPECT().GetStatus().Return(map[string]any{"sync_enabled": true, "sync_cron": "0 6 * * *"})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)

				var body map[string]map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, true, body["ingestion"]["sync_enabled"])
				assert.Equal(t, "0 6 * * *", body["ingestion"]["sync_cron"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockCronJobService(ctrl)
			tt.setup(service)

			rt := router.New(router.WithRoutes(handler.CronJobs(service)...))
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			tt.validate(t, rec)
		})
	}
}
