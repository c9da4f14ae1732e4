package bigquery

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/linkedin-ads-ingestor/infrastructure/warehouse"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/config"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/domain"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const deleteRangeSQL = "DELETE FROM `%s.%s.%s` WHERE date >= @start_date AND date <= @end_date"

type Warehouse struct {
	client    *bigquery.Client
	projectID string
	dataset   string
}

func init() {
	warehouse.Register("bigquery", func(ctx context.Context, cfg *config.Config) (warehouse.Warehouse, error) {
		return New(ctx, cfg.GCP)
	})
}

func New(ctx context.Context, cfg config.GCP, opts ...option.ClientOption) (*Warehouse, error) {
	client, err := bigquery.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "bigquery: erro ao criar cliente")
	}
	if cfg.BigQueryLocation != "" {
		client.Location = cfg.BigQueryLocation
	}

	return &Warehouse{
		client:    client,
		projectID: cfg.ProjectID,
		dataset:   cfg.BigQueryDataset,
	}, nil
}

func (w *Warehouse) Name() string    { return "BigQuery" }
func (w *Warehouse) Dataset() string { return w.dataset }
func (w *Warehouse) Close() error    { return w.client.Close() }

func (w *Warehouse) DatasetExists(ctx context.Context) (bool, error) {
	_, err := w.client.Dataset(w.dataset).Metadata(ctx)
	if isNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "bigquery: erro ao consultar dataset %s", w.dataset)
	}
	return true, nil
}

func (w *Warehouse) TableExists(ctx context.Context, table string) (bool, error) {
	_, err := w.client.Dataset(w.dataset).Table(table).Metadata(ctx)
	if isNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "bigquery: erro ao consultar tabela %s", table)
	}
	return true, nil
}

// DeleteDateRange executa um DELETE DML parametrizado e aguarda o término do job
func (w *Warehouse) DeleteDateRange(ctx context.Context, table string, start, end time.Time) (int64, error) {
	q := w.client.Query(fmt.Sprintf(deleteRangeSQL, w.projectID, w.dataset, table))
	q.Parameters = []bigquery.QueryParameter{
		{Name: "start_date", Value: civil.DateOf(start)},
		{Name: "end_date", Value: civil.DateOf(end)},
	}

	job, err := q.Run(ctx)
	if err != nil {
		return 0, errors.Wrapf(err, "bigquery: erro ao iniciar DELETE em %s", table)
	}

	status, err := job.Wait(ctx)
	if err != nil {
		return 0, errors.Wrapf(err, "bigquery: erro ao aguardar DELETE em %s", table)
	}
	if err := status.Err(); err != nil {
		return 0, errors.Wrapf(err, "bigquery: DELETE em %s falhou", table)
	}

	var deleted int64
	if status.Statistics != nil {
		if stats, ok := status.Statistics.Details.(*bigquery.QueryStatistics); ok {
			deleted = stats.NumDMLAffectedRows
		}
	}

	return deleted, nil
}

// BulkInsert carrega as linhas com um único load job de JSON delimitado por linha
func (w *Warehouse) BulkInsert(ctx context.Context, table string, rows []domain.FlattenedRow) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	payload, err := EncodeNDJSON(rows)
	if err != nil {
		return 0, &domain.LoadError{Table: table, Expected: int64(len(rows)), Err: err}
	}

	source := bigquery.NewReaderSource(bytes.NewReader(payload))
	source.SourceFormat = bigquery.JSON

	loader := w.client.Dataset(w.dataset).Table(table).LoaderFrom(source)
	loader.WriteDisposition = bigquery.WriteAppend
	loader.CreateDisposition = bigquery.CreateNever

	job, err := loader.Run(ctx)
	if err != nil {
		return 0, &domain.LoadError{Table: table, Expected: int64(len(rows)), Err: err}
	}

	status, err := job.Wait(ctx)
	if err != nil {
		return 0, &domain.LoadError{Table: table, Expected: int64(len(rows)), Err: err}
	}

	if status.Err() != nil {
		details := make([]string, 0, len(status.Errors))
		for _, e := range status.Errors {
			if e != nil {
				details = append(details, e.Error())
			}
		}
		logrus.WithFields(logrus.Fields{"table": table, "errors": details}).Error("bigquery: load job falhou")
		return 0, &domain.LoadError{Table: table, Details: details, Expected: int64(len(rows)), Err: status.Err()}
	}

	var loaded int64
	if status.Statistics != nil {
		if stats, ok := status.Statistics.Details.(*bigquery.LoadStatistics); ok {
			loaded = stats.OutputRows
		}
	}

	return loaded, nil
}

// EncodeNDJSON serializa as linhas como JSON delimitado por linha
func EncodeNDJSON(rows []domain.FlattenedRow) ([]byte, error) {
	var buf bytes.Buffer
	for _, row := range rows {
		b, err := json.Marshal(row)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func isNotFound(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound
}
