package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/api/handler/mocks"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/config"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/usecases/ingesting"
	"github.com/vfg2006/linkedin-ads-ingestor/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func newTestServer(t *testing.T, secret string) (*Server, *mocks.MockIngestionRunner) {
	t.Helper()
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockIngestionRunner(ctrl)
	cron := mocks.NewMockCronJobService(ctrl)

	cfg := &config.Config{
		Server: config.Server{Host: "localhost", Port: "0"},
		Auth:   config.Auth{Secret: secret},
	}

	srv, err := New(cfg, runner, cron)
	require.NoError(t, err)
	return srv, runner
}

func TestServer_Auth(t *testing.T) {
	srv, runner := newTestServer(t, "segredo")
	runner.EXPECT().Run(gomock.Any(), ingesting.RunRequest{}).Return(ingesting.RunResult{Message: "Inserted 0 rows.", StatusCode: http.StatusOK})

	token, err := middleware.SignToken("segredo", "operador", time.Minute)
	require.NoError(t, err)

	// sem token
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/ingestion/run", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// healthcheck é público
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/v1/ingestion/run", strings.NewReader(""))
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Inserted 0 rows.")
}

func TestServer_Shutdown(t *testing.T) {
	var closed []string

	cfg := &config.Config{Server: config.Server{Host: "localhost", Port: "0"}}
	ctrl := gomock.NewController(t)
	srv, err := New(cfg, mocks.NewMockIngestionRunner(ctrl), mocks.NewMockCronJobService(ctrl),
		func() error { closed = append(closed, "warehouse"); return nil },
		func() error { closed = append(closed, "secrets"); return errors.New("já fechado") },
	)
	require.NoError(t, err)

	require.NoError(t, srv.Shutdown(context.Background()))
	assert.Equal(t, []string{"warehouse", "secrets"}, closed)
}
