package postgres

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/linkedin-ads-ingestor/infrastructure/warehouse"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/config"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/domain"
)

var dialect = warehouse.Dialect{
	Quote:       pq.QuoteIdentifier,
	DateType:    "DATE",
	TextType:    "TEXT",
	NumericType: "NUMERIC",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Warehouse grava as tabelas em um schema do Postgres. O dataset configurado é o nome do schema.
type Warehouse struct {
	conn   *Connection
	schema string
}

func init() {
	warehouse.Register("postgres", func(ctx context.Context, cfg *config.Config) (warehouse.Warehouse, error) {
		conn, err := NewConnection(ctx, cfg.Warehouse.DSN)
		if err != nil {
			return nil, err
		}
		return New(conn, cfg.GCP.BigQueryDataset), nil
	})
}

func New(conn *Connection, schema string) *Warehouse {
	if schema == "" {
		schema = "public"
	}
	return &Warehouse{conn: conn, schema: schema}
}

func (w *Warehouse) Name() string    { return "Postgres" }
func (w *Warehouse) Dataset() string { return w.schema }
func (w *Warehouse) Close() error    { return w.conn.Close() }

func (w *Warehouse) qualified(table string) string {
	return pq.QuoteIdentifier(w.schema) + "." + pq.QuoteIdentifier(table)
}

func (w *Warehouse) DatasetExists(ctx context.Context) (bool, error) {
	query, args, err := psql.Select("1").
		From("information_schema.schemata").
		Where(sq.Eq{"schema_name": w.schema}).
		ToSql()
	if err != nil {
		return false, err
	}

	return w.exists(ctx, query, args...)
}

func (w *Warehouse) TableExists(ctx context.Context, table string) (bool, error) {
	query, args, err := psql.Select("1").
		From("information_schema.tables").
		Where(sq.Eq{"table_schema": w.schema, "table_name": table}).
		ToSql()
	if err != nil {
		return false, err
	}

	return w.exists(ctx, query, args...)
}

func (w *Warehouse) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var one int
	err := w.conn.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "postgres: erro ao consultar catálogo")
	}
	return true, nil
}

func (w *Warehouse) DeleteDateRange(ctx context.Context, table string, start, end time.Time) (int64, error) {
	query, args, err := psql.Delete(w.qualified(table)).
		Where(sq.GtOrEq{domain.ColumnDate: start.Format(time.DateOnly)}).
		Where(sq.LtOrEq{domain.ColumnDate: end.Format(time.DateOnly)}).
		ToSql()
	if err != nil {
		return 0, err
	}

	result, err := w.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, errors.Wrapf(err, "postgres: erro ao remover linhas de %s", table)
	}

	return result.RowsAffected()
}

// BulkInsert usa COPY dentro de uma transação. A contagem vem do comando COPY.
func (w *Warehouse) BulkInsert(ctx context.Context, table string, rows []domain.FlattenedRow) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	var copied int64
	err := w.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, pq.CopyInSchema(w.schema, table, rows[0].Columns()...))
		if err != nil {
			return errors.Wrapf(err, "postgres: erro ao preparar COPY em %s", table)
		}
		defer stmt.Close()

		for _, row := range rows {
			if _, err := stmt.ExecContext(ctx, row.Values()...); err != nil {
				return errors.Wrapf(err, "postgres: erro ao copiar linha para %s", table)
			}
		}

		result, err := stmt.ExecContext(ctx)
		if err != nil {
			return errors.Wrapf(err, "postgres: erro ao finalizar COPY em %s", table)
		}

		copied, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return 0, err
	}

	logrus.WithFields(logrus.Fields{"table": table, "rows": copied}).Debug("postgres: linhas copiadas")

	return copied, nil
}

func (w *Warehouse) CreateTable(ctx context.Context, table domain.MetricTable) error {
	if _, err := w.conn.ExecContext(ctx, "CREATE SCHEMA IF NOT EXISTS "+pq.QuoteIdentifier(w.schema)); err != nil {
		return errors.Wrapf(err, "postgres: erro ao criar schema %s", w.schema)
	}
	if _, err := w.conn.ExecContext(ctx, w.CreateTableSQL(table)); err != nil {
		return errors.Wrapf(err, "postgres: erro ao criar tabela %s", table.Name)
	}
	return nil
}

// CreateTableSQL retorna o DDL sem executá-lo
func (w *Warehouse) CreateTableSQL(table domain.MetricTable) string {
	return warehouse.CreateTableSQL(dialect, w.qualified(table.Name), table)
}
