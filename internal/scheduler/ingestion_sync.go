package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/config"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/usecases/ingesting"
)

//go:generate mockgen -source=ingestion_sync.go -destination=mocks/mock_ingestion_sync.go -package=mocks

// IngestionRunner executa uma ingestão completa
type IngestionRunner interface {
	Run(ctx context.Context, req ingesting.RunRequest) ingesting.RunResult
	IsRunning() bool
}

// IngestionSyncConfig representa a configuração do agendador da ingestão diária
type IngestionSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// IngestionSyncService agenda a ingestão diária (dia anterior, todas as tabelas)
type IngestionSyncService struct {
	scheduler           *gocron.Scheduler
	config              IngestionSyncConfig
	runner              IngestionRunner
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *ingesting.RunResult
}

func NewIngestionSyncService(runner IngestionRunner, appConfig *config.Config) *IngestionSyncService {
	syncConfig := IngestionSyncConfig{
		CronSchedule: appConfig.IngestionSync.CronSchedule,
		SyncEnabled:  appConfig.IngestionSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de ingestão LinkedIn carregada")

	return &IngestionSyncService{
		// o dia anterior é sempre calculado em UTC
		scheduler: gocron.NewScheduler(time.UTC),
		config:    syncConfig,
		runner:    runner,
	}
}

// Start inicia o agendador
func (s *IngestionSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Ingestão agendada do LinkedIn desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de ingestão LinkedIn")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncIngestion(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar ingestão LinkedIn: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de ingestão LinkedIn")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *IngestionSyncService) syncIngestion(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Ingestão LinkedIn já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	result := s.runner.Run(ctx, ingesting.RunRequest{})

	logrus.WithFields(logrus.Fields{
		"run_id":      result.RunID,
		"status_code": result.StatusCode,
		"message":     result.Message,
	}).Info("Ingestão agendada do LinkedIn finalizada")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.lastResult = &result
	s.syncMutex.Unlock()
}

// TriggerManualSync dispara a ingestão em segundo plano. Retorna false se já houver uma em andamento.
func (s *IngestionSyncService) TriggerManualSync(ctx context.Context) bool {
	s.syncMutex.Lock()
	busy := s.syncRunning
	s.syncMutex.Unlock()

	if busy || s.runner.IsRunning() {
		logrus.Info("Ingestão LinkedIn já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando ingestão manual do LinkedIn")
	go s.syncIngestion(context.WithoutCancel(ctx))
	return true
}

// GetStatus retorna o status atual do agendador
func (s *IngestionSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning || s.runner.IsRunning(),
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastResult != nil {
		status["last_run_id"] = s.lastResult.RunID
		status["last_message"] = s.lastResult.Message
		status["last_status"] = s.lastResult.StatusCode
	}

	return status
}
