package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/api"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/app"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/scheduler"
)

func main() {
	cfg, flush, err := app.LoadConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	defer flush()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := app.New(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar a aplicação")
	}

	ingestionSyncService := scheduler.NewIngestionSyncService(application.Ingestion, cfg)

	if err := ingestionSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de ingestão LinkedIn")
	} else {
		logrus.Info("Agendador de ingestão LinkedIn iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		application.Ingestion,
		ingestionSyncService,
		application.Close,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
