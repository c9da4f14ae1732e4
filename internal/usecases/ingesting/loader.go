package ingesting

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/linkedin-ads-ingestor/infrastructure/warehouse"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/domain"
)

// TableLoader aplica a semântica de substituição por janela de datas sobre um Warehouse
type TableLoader struct {
	wh warehouse.Warehouse
}

func NewTableLoader(wh warehouse.Warehouse) *TableLoader {
	return &TableLoader{wh: wh}
}

// DeleteRange remove as linhas da janela. Sempre executa, mesmo que não haja dados novos.
func (l *TableLoader) DeleteRange(ctx context.Context, table string, window domain.DateRange) (int64, error) {
	deleted, err := l.wh.DeleteDateRange(ctx, table, window.Start, window.End)
	if err != nil {
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"table":   table,
		"window":  window.String(),
		"deleted": deleted,
	}).Info("Linhas existentes removidas")

	return deleted, nil
}

// Load grava as linhas em um único job. A contagem confirmada deve ser igual à enviada.
func (l *TableLoader) Load(ctx context.Context, table string, rows []domain.FlattenedRow) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	inserted, err := l.wh.BulkInsert(ctx, table, rows)
	if err != nil {
		var loadErr *domain.LoadError
		if errors.As(err, &loadErr) {
			return 0, err
		}
		return 0, &domain.LoadError{Table: table, Expected: int64(len(rows)), Err: err}
	}

	if inserted != int64(len(rows)) {
		return inserted, &domain.LoadError{Table: table, Expected: int64(len(rows)), Confirmed: inserted}
	}

	return inserted, nil
}

// Replace combina DeleteRange e Load
func (l *TableLoader) Replace(ctx context.Context, table string, window domain.DateRange, rows []domain.FlattenedRow) (int64, error) {
	if _, err := l.DeleteRange(ctx, table, window); err != nil {
		return 0, err
	}
	return l.Load(ctx, table, rows)
}

// VerifyDestination confirma que o dataset e todas as tabelas existem
func (l *TableLoader) VerifyDestination(ctx context.Context, tables []domain.MetricTable) error {
	ok, err := l.wh.DatasetExists(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return &domain.DestinationNotFoundError{Dataset: l.wh.Dataset()}
	}

	for _, t := range tables {
		ok, err := l.wh.TableExists(ctx, t.Name)
		if err != nil {
			return err
		}
		if !ok {
			return &domain.DestinationNotFoundError{Dataset: l.wh.Dataset(), Table: t.Name}
		}
	}

	return nil
}

func (l *TableLoader) Dataset() string { return l.wh.Dataset() }
func (l *TableLoader) Backend() string { return l.wh.Name() }
