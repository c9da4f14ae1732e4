package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/api/handler"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/api/handler/mocks"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/api/handler/router"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/usecases/ingesting"
	"github.com/vfg2006/linkedin-ads-ingestor/pkg/log"
	"go.uber.org/mock/gomock"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func day(s string) *time.Time {
	d, _ := time.Parse(time.DateOnly, s)
	return &d
}

func TestRunIngestion(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(runner *mocks.MockIngestionRunner)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Sem corpo - execução padrão",
			body: "",
			setup: func(runner *mocks.MockIngestionRunner) {
				runner.EXPECT().Run(gomock.Any(), ingesting.RunRequest{}).Return(ingesting.RunResult{
					RunID:      "abc123",
					Message:    "Inserted 42 rows.",
					StatusCode: http.StatusOK,
				})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)

				var resp handler.RunIngestionResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, handler.RunIngestionResponse{Message: "Inserted 42 rows.", Status: 200, RunID: "abc123"}, resp)
			},
		},
		{
			name: "Datas e tabela informadas - repassa ao serviço",
			body: `{"start_date":"2025-03-01","end_date":"2025-03-05","table":"ad_cost_metrics"}`,
			setup: func(runner *mocks.MockIngestionRunner) {
				runner.EXPECT().Run(gomock.Any(), ingesting.RunRequest{
					StartDate: day("2025-03-01"),
					EndDate:   day("2025-03-05"),
					Table:     "ad_cost_metrics",
				}).Return(ingesting.RunResult{Message: "Inserted 0 rows.", StatusCode: http.StatusOK})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			name: "Falha na execução - status e mensagem do resultado",
			body: `{}`,
			setup: func(runner *mocks.MockIngestionRunner) {
				runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(ingesting.RunResult{
					Message:    "Error: couldn't find table: ad_cost_metrics (dataset linkedin)",
					StatusCode: http.StatusInternalServerError,
				})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				assert.Contains(t, rec.Body.String(), `"status":500`)
				assert.Contains(t, rec.Body.String(), "couldn't find table")
			},
		},
		{
			name: "Ingestão em andamento - 409",
			body: `{}`,
			setup: func(runner *mocks.MockIngestionRunner) {
				runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(ingesting.RunResult{
					Message:    "Error: an ingestion run is already in progress",
					StatusCode: http.StatusConflict,
				})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusConflict, rec.Code)
			},
		},
		{
			name: "Data em formato inválido - 400 sem executar",
			body: `{"start_date":"01/03/2025"}`,
			setup: func(runner *mocks.MockIngestionRunner) {
				runner.EXPECT().Run(gomock.Any(), gomock.Any()).Times(0)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, rec.Body.String(), "VAL_003")
			},
		},
		{
			name: "JSON inválido - 400 sem executar",
			body: `{"start_date":`,
			setup: func(runner *mocks.MockIngestionRunner) {
				runner.EXPECT().Run(gomock.Any(), gomock.Any()).Times(0)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			runner := mocks.NewMockIngestionRunner(ctrl)
			tt.setup(runner)

			rt := router.New(router.WithRoutes(handler.Ingestion(runner)...))
			req := httptest.NewRequest(http.MethodPost, "/v1/ingestion/run", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			rt.ServeHTTP(rec, req)

			tt.validate(t, rec)
		})
	}
}

func TestRunIngestion_LogsCorrelationID(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	hook := logtest.NewGlobal()
	defer hook.Reset()

	ctrl := gomock.NewController(t)
	runner := mocks.NewMockIngestionRunner(ctrl)
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(ingesting.RunResult{
		RunID:      "abc123",
		Message:    "Inserted 1 rows.",
		StatusCode: http.StatusOK,
	})

	ctx, correlationID := log.WithCorrelationID(context.Background())
	req := httptest.NewRequest(http.MethodPost, "/v1/ingestion/run", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	handler.RunIngestion(runner).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var finished *logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Message == "Ingestão via API finalizada" {
			finished = e
		}
	}
	require.NotNil(t, finished)
	assert.Equal(t, correlationID, finished.Data["correlation_id"])
	assert.Equal(t, "abc123", finished.Data["run_id"])
	assert.Equal(t, http.StatusOK, finished.Data["run_status"])
}

func TestHealthcheck(t *testing.T) {
	rt := router.New(router.WithRoutes(handler.Healthcheck()...), router.WithRoutes(handler.Metrics()...))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
