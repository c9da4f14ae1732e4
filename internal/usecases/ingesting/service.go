package ingesting

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	linkedindomain "github.com/vfg2006/linkedin-ads-ingestor/infrastructure/integrator/linkedin/domain"
	"github.com/vfg2006/linkedin-ads-ingestor/infrastructure/notifier"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/config"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/domain"
	"github.com/vfg2006/linkedin-ads-ingestor/pkg/metrics"
	"github.com/vfg2006/linkedin-ads-ingestor/pkg/utils"
)

const (
	subjectSuccess = "LinkedIn Data Ingestion"
	subjectFailure = "LinkedIn Data Ingestion Error"
	separator      = "=================================================="

	notifyTimeout = time.Minute
)

// RunRequest descreve uma execução. Sem datas, processa o dia anterior (UTC).
// Table vazio processa todas as tabelas configuradas.
type RunRequest struct {
	StartDate *time.Time
	EndDate   *time.Time
	Table     string
}

type RunResult struct {
	RunID      string
	Message    string
	StatusCode int
	Inserted   int64
	Logs       []string
	Err        error
}

type Service struct {
	cfg          *config.Config
	tokens       TokenProvider
	fetcher      AnalyticsFetcher
	newFlattener FlattenerFactory
	loader       *TableLoader
	notifier     Notifier
	now          func() time.Time

	runMutex sync.Mutex
	running  bool
}

func NewService(
	cfg *config.Config,
	tokens TokenProvider,
	fetcher AnalyticsFetcher,
	newFlattener FlattenerFactory,
	loader *TableLoader,
	notifier Notifier,
) *Service {
	return &Service{
		cfg:          cfg,
		tokens:       tokens,
		fetcher:      fetcher,
		newFlattener: newFlattener,
		loader:       loader,
		notifier:     notifier,
		now:          time.Now,
	}
}

// IsRunning indica se há uma execução em andamento
func (s *Service) IsRunning() bool {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()
	return s.running
}

func (s *Service) acquire() bool {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()
	if s.running {
		return false
	}
	s.running = true
	return true
}

func (s *Service) release() {
	s.runMutex.Lock()
	s.running = false
	s.runMutex.Unlock()
}

// Resolve valida a requisição e retorna a janela de datas e as tabelas selecionadas
func (s *Service) Resolve(req RunRequest) (domain.DateRange, []domain.MetricTable, error) {
	var window domain.DateRange

	switch {
	case req.StartDate == nil && req.EndDate == nil:
		window = domain.SingleDay(domain.Yesterday(s.now()))
	case req.StartDate == nil:
		window = domain.SingleDay(*req.EndDate)
	case req.EndDate == nil:
		window = domain.SingleDay(*req.StartDate)
	default:
		var err error
		window, err = domain.NewDateRange(*req.StartDate, *req.EndDate)
		if err != nil {
			return domain.DateRange{}, nil, err
		}
	}

	if req.Table == "" {
		return window, s.cfg.Tables, nil
	}

	table, ok := domain.FindTable(s.cfg.Tables, req.Table)
	if !ok {
		return domain.DateRange{}, nil, fmt.Errorf("%w: %s", ErrUnknownTable, req.Table)
	}

	return window, []domain.MetricTable{table}, nil
}

// Run executa uma ingestão completa: token, conta, destino, e para cada tabela
// remove a janela e carrega dia a dia. Não há retry nem rollback.
func (s *Service) Run(ctx context.Context, req RunRequest) RunResult {
	runID, err := utils.GenerateID()
	if err != nil {
		runID = fmt.Sprintf("%d", s.now().UnixNano())
	}

	window, tables, err := s.Resolve(req)
	if err != nil {
		logrus.WithField("run_id", runID).WithError(err).Warn("Requisição de ingestão inválida")
		metrics.RunsTotal.WithLabelValues("rejected").Inc()
		return failureResult(runID, err, nil)
	}

	if !s.acquire() {
		logrus.WithField("run_id", runID).Warn("Ingestão já está em andamento, nova execução rejeitada")
		metrics.RunsTotal.WithLabelValues("rejected").Inc()
		return failureResult(runID, ErrRunInProgress, nil)
	}
	defer s.release()

	start := s.now()
	defer func() { metrics.RunDuration.Observe(time.Since(start).Seconds()) }()

	logger := logrus.WithFields(logrus.Fields{
		"run_id":     runID,
		"run_window": window.String(),
		"run_tables": len(tables),
	})
	logger.Info("Iniciando ingestão LinkedIn")

	r := &run{
		service:     s,
		id:          runID,
		window:      window,
		tables:      tables,
		accountName: domain.NotAvailable,
		processing:  window.String(),
		logger:      logger,
	}

	if err := r.execute(ctx); err != nil {
		logger.WithError(err).Error("Ingestão falhou")
		metrics.RunsTotal.WithLabelValues("failure").Inc()
		s.notify(ctx, notifier.Message{Subject: subjectFailure, Body: r.failureBody(err)})
		return failureResult(runID, err, r.logs)
	}

	logger.WithField("run_inserted", r.inserted).Info("Ingestão concluída com sucesso")
	metrics.RunsTotal.WithLabelValues("success").Inc()
	s.notify(ctx, notifier.Message{Subject: subjectSuccess, Body: r.successBody()})

	return RunResult{
		RunID:      runID,
		Message:    fmt.Sprintf("Inserted %d rows.", r.inserted),
		StatusCode: StatusCode(nil),
		Inserted:   r.inserted,
		Logs:       r.logs,
	}
}

// notify envia a notificação mesmo com o contexto da execução cancelado
func (s *Service) notify(ctx context.Context, msg notifier.Message) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	s.notifier.Notify(ctx, msg)
}

func failureResult(runID string, err error, logs []string) RunResult {
	return RunResult{
		RunID:      runID,
		Message:    fmt.Sprintf("Error: %v", err),
		StatusCode: StatusCode(err),
		Logs:       logs,
		Err:        err,
	}
}

// run guarda o estado de uma única execução
type run struct {
	service     *Service
	id          string
	window      domain.DateRange
	tables      []domain.MetricTable
	accountName string
	processing  string
	inserted    int64
	logs        []string
	logger      *logrus.Entry
}

func (r *run) execute(ctx context.Context) error {
	s := r.service

	token, err := s.tokens.GetValidToken(ctx)
	if err != nil {
		return err
	}

	r.accountName = s.fetcher.GetAccountName(ctx, token)
	r.logger.WithField("account_name", r.accountName).Info("Conta LinkedIn resolvida")

	if err := s.loader.VerifyDestination(ctx, r.tables); err != nil {
		return err
	}

	flattener := s.newFlattener()
	accountID := s.cfg.LinkedIn.AccountID

	for i, table := range r.tables {
		r.logger.WithField("table", table.Name).Infof("Processando tabela %d de %d", i+1, len(r.tables))
		r.processing = r.window.String()

		if _, err := s.loader.DeleteRange(ctx, table.Name, r.window); err != nil {
			return err
		}

		for _, day := range r.window.Days() {
			r.processing = day.Format(time.DateOnly)

			resp, _, err := s.fetcher.FetchAnalytics(ctx, token, linkedindomain.AnalyticsQuery{
				AccountID: accountID,
				Date:      day,
				Metrics:   table.Metrics,
				Pivots:    s.cfg.LinkedIn.Pivots,
			})
			if err != nil {
				return err
			}

			rows := flattener.Flatten(ctx, token, resp, day, r.accountName, accountID)

			inserted, err := s.loader.Load(ctx, table.Name, rows)
			if err != nil {
				return err
			}

			r.inserted += inserted
			metrics.RowsInsertedTotal.WithLabelValues(table.Name).Add(float64(inserted))

			r.logs = append(r.logs, separator, fmt.Sprintf("Inserted %d rows into table (%s) of %s dataset %s for date %s",
				inserted, table.Name, s.loader.Backend(), s.loader.Dataset(), r.processing))

			r.logger.WithFields(logrus.Fields{
				"table":    table.Name,
				"date":     r.processing,
				"inserted": inserted,
			}).Info("Linhas carregadas")
		}
	}

	r.processing = r.window.String()
	return nil
}

func (r *run) header() string {
	return fmt.Sprintf("Date processed: %s\nAccount Name: %s\nDataset: %s\n",
		r.processing, r.accountName, r.service.loader.Dataset())
}

func (r *run) successBody() string {
	return r.header() + strings.Join(r.logs, "\n") + "\n"
}

func (r *run) failureBody(err error) string {
	return fmt.Sprintf("Error: %v\n", err) + r.header()
}
