package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "linkedin_ingestion"

var (
	RunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "runs_total",
		Help:      "Execuções de ingestão por status final.",
	}, []string{"status"})

	RowsInsertedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rows_inserted_total",
		Help:      "Linhas confirmadas pelo destino por tabela.",
	}, []string{"table"})

	TokenRefreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refresh_total",
		Help:      "Resultados da obtenção do access token.",
	}, []string{"result"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Requisições HTTP atendidas por método, caminho e status.",
	}, []string{"method", "path", "code"})

	RunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "run_duration_seconds",
		Help:      "Duração das execuções de ingestão.",
		Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600},
	})
)

// Resultados possíveis de TokenRefreshTotal
const (
	TokenReused        = "reused"
	TokenRefreshed     = "refreshed"
	TokenRotated       = "rotated"
	TokenRefreshFailed = "failed"
)
