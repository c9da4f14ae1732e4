package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/linkedin-ads-ingestor/infrastructure/warehouse"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/config"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/domain"
	_ "modernc.org/sqlite"
)

const (
	mainDatabase = "main"
	// limite de linhas por INSERT para ficar abaixo do máximo de parâmetros do SQLite
	insertBatchSize = 200
)

var dialect = warehouse.Dialect{
	Quote:       quoteIdent,
	DateType:    "TEXT",
	TextType:    "TEXT",
	NumericType: "NUMERIC",
}

// Warehouse grava as tabelas no banco principal de um arquivo SQLite. Usado em execuções locais.
type Warehouse struct {
	db *sql.DB
}

func init() {
	warehouse.Register("sqlite", func(ctx context.Context, cfg *config.Config) (warehouse.Warehouse, error) {
		return New(ctx, cfg.Warehouse.DSN)
	})
}

func New(ctx context.Context, dsn string) (*Warehouse, error) {
	if dsn == "" {
		return nil, errors.New("sqlite: WAREHOUSE_DSN não informado")
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "sqlite: erro ao abrir banco")
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "sqlite: erro ao conectar")
	}

	return &Warehouse{db: db}, nil
}

// NewWithDB usa uma conexão já aberta
func NewWithDB(db *sql.DB) *Warehouse {
	return &Warehouse{db: db}
}

func (w *Warehouse) Name() string    { return "SQLite" }
func (w *Warehouse) Dataset() string { return mainDatabase }
func (w *Warehouse) Close() error    { return w.db.Close() }

func (w *Warehouse) DatasetExists(ctx context.Context) (bool, error) {
	if err := w.db.PingContext(ctx); err != nil {
		return false, errors.Wrap(err, "sqlite: erro ao verificar banco")
	}
	return true, nil
}

func (w *Warehouse) TableExists(ctx context.Context, table string) (bool, error) {
	query, args, err := sq.Select("COUNT(*)").
		From("sqlite_master").
		Where(sq.Eq{"type": "table", "name": table}).
		ToSql()
	if err != nil {
		return false, err
	}

	var count int
	if err := w.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, errors.Wrapf(err, "sqlite: erro ao verificar tabela %s", table)
	}

	return count > 0, nil
}

func (w *Warehouse) DeleteDateRange(ctx context.Context, table string, start, end time.Time) (int64, error) {
	query, args, err := sq.Delete(quoteIdent(table)).
		Where(sq.GtOrEq{domain.ColumnDate: start.Format(time.DateOnly)}).
		Where(sq.LtOrEq{domain.ColumnDate: end.Format(time.DateOnly)}).
		ToSql()
	if err != nil {
		return 0, err
	}

	result, err := w.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, errors.Wrapf(err, "sqlite: erro ao remover linhas de %s", table)
	}

	return result.RowsAffected()
}

// BulkInsert grava todas as linhas em uma única transação
func (w *Warehouse) BulkInsert(ctx context.Context, table string, rows []domain.FlattenedRow) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	columns := rows[0].Columns()
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = quoteIdent(c)
	}

	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "sqlite: erro ao iniciar transação")
	}
	defer func() { _ = tx.Rollback() }()

	var inserted int64
	for start := 0; start < len(rows); start += insertBatchSize {
		end := min(start+insertBatchSize, len(rows))

		builder := sq.Insert(quoteIdent(table)).Columns(quoted...)
		for _, row := range rows[start:end] {
			builder = builder.Values(row.Values()...)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return 0, err
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, errors.Wrapf(err, "sqlite: erro ao inserir linhas em %s", table)
		}

		n, err := result.RowsAffected()
		if err != nil {
			return 0, err
		}
		inserted += n
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "sqlite: erro ao confirmar transação")
	}

	logrus.WithFields(logrus.Fields{"table": table, "rows": inserted}).Debug("sqlite: linhas inseridas")

	return inserted, nil
}

func (w *Warehouse) CreateTable(ctx context.Context, table domain.MetricTable) error {
	ddl := warehouse.CreateTableSQL(dialect, quoteIdent(table.Name), table)
	if _, err := w.db.ExecContext(ctx, ddl); err != nil {
		return errors.Wrapf(err, "sqlite: erro ao criar tabela %s", table.Name)
	}
	return nil
}

func (w *Warehouse) CreateTableSQL(table domain.MetricTable) string {
	return CreateTableSQL(table)
}

// CreateTableSQL retorna o DDL sem executá-lo
func CreateTableSQL(table domain.MetricTable) string {
	return warehouse.CreateTableSQL(dialect, quoteIdent(table.Name), table)
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
