package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/linkedin-ads-ingestor/infrastructure/integrator/linkedin"
	"github.com/vfg2006/linkedin-ads-ingestor/infrastructure/integrator/linkedin/linkedinclient"
	"github.com/vfg2006/linkedin-ads-ingestor/infrastructure/notifier"
	"github.com/vfg2006/linkedin-ads-ingestor/infrastructure/secretstore"
	"github.com/vfg2006/linkedin-ads-ingestor/infrastructure/warehouse"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/config"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/usecases/ingesting"
	"github.com/vfg2006/linkedin-ads-ingestor/pkg/log"

	// backends de destino registrados em warehouse.Register
	_ "github.com/vfg2006/linkedin-ads-ingestor/infrastructure/warehouse/bigquery"
	_ "github.com/vfg2006/linkedin-ads-ingestor/infrastructure/warehouse/postgres"
	_ "github.com/vfg2006/linkedin-ads-ingestor/infrastructure/warehouse/sqlite"
)

// LinkedIn agrupa as dependências necessárias para falar com a API do LinkedIn
type LinkedIn struct {
	Store      secretstore.Store
	Client     *linkedinclient.LinkedInClient
	Tokens     *linkedinclient.TokenManager
	Integrator *linkedin.LinkedInIntegrator
}

func (l *LinkedIn) Close() error {
	return secretstore.Close(l.Store)
}

// App é a composição completa usada pelos comandos que executam ingestões
type App struct {
	LinkedIn
	Config    *config.Config
	Warehouse warehouse.Warehouse
	Notifier  *notifier.Dispatcher
	Ingestion *ingesting.Service
}

// LoadConfig carrega e valida a configuração e prepara logs e Sentry.
// A função retornada libera o Sentry e deve ser chamada antes de sair.
func LoadConfig() (*config.Config, func(), error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, err
	}

	log.Setup(cfg.App.LogLevel)

	flush, err := log.InitSentry(cfg.App.SentryDSN, cfg.App.Environment)
	if err != nil {
		logrus.WithError(err).Warn("Sentry não inicializado, seguindo sem captura de erros")
		flush = func() {}
	}

	if err := cfg.Validate(); err != nil {
		flush()
		return nil, nil, err
	}

	return cfg, flush, nil
}

// NewLinkedIn monta o secret store, o cliente HTTP e o gerenciador de tokens
func NewLinkedIn(ctx context.Context, cfg *config.Config) (*LinkedIn, error) {
	store, err := secretstore.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar secret store: %w", err)
	}

	client := linkedinclient.NewClient(cfg.LinkedIn)

	return &LinkedIn{
		Store:      store,
		Client:     client,
		Tokens:     linkedinclient.NewTokenManager(cfg.Secrets, client, store),
		Integrator: linkedin.New(cfg, client),
	}, nil
}

// New monta a aplicação completa
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	li, err := NewLinkedIn(ctx, cfg)
	if err != nil {
		return nil, err
	}

	wh, err := warehouse.New(ctx, cfg)
	if err != nil {
		_ = li.Close()
		return nil, fmt.Errorf("erro ao conectar ao destino %s: %w", cfg.Warehouse.Backend, err)
	}

	dispatcher := notifier.FromConfig(cfg)

	integrator := li.Integrator
	service := ingesting.NewService(
		cfg,
		li.Tokens,
		integrator,
		func() ingesting.Flattener { return integrator.NewFlattener() },
		ingesting.NewTableLoader(wh),
		dispatcher,
	)

	logrus.WithFields(logrus.Fields{
		"warehouse": wh.Name(),
		"dataset":   wh.Dataset(),
		"tables":    len(cfg.Tables),
		"channels":  len(dispatcher.Channels()),
	}).Info("Aplicação inicializada")

	return &App{
		LinkedIn:  *li,
		Config:    cfg,
		Warehouse: wh,
		Notifier:  dispatcher,
		Ingestion: service,
	}, nil
}

// Close libera o destino e o secret store
func (a *App) Close() error {
	whErr := a.Warehouse.Close()
	storeErr := a.LinkedIn.Close()

	if whErr != nil {
		return whErr
	}
	return storeErr
}
