package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/api/handler/router"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Ingestion(runner IngestionRunner) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/ingestion/run",
			Method:  http.MethodPost,
			Handler: RunIngestion(runner),
		},
	}
}

func CronJobs(service CronJobService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/ingestion/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(service),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(service),
		},
	}
}
