package warehouse

import (
	"context"
	"strings"

	"github.com/vfg2006/linkedin-ads-ingestor/internal/domain"
)

// SchemaCreator é implementado pelos backends que permitem criar tabelas pela ferramenta de migração
type SchemaCreator interface {
	CreateTable(ctx context.Context, table domain.MetricTable) error
	CreateTableSQL(table domain.MetricTable) string
}

// Dialect descreve como um backend SQL nomeia tipos e identificadores
type Dialect struct {
	Quote       func(string) string
	DateType    string
	TextType    string
	NumericType string
}

// CreateTableSQL gera o DDL de uma tabela de métricas: colunas de identificação seguidas das métricas
func CreateTableSQL(d Dialect, qualifiedName string, table domain.MetricTable) string {
	columns := make([]string, 0, len(domain.IdentityColumns)+len(table.Metrics))
	for _, c := range domain.IdentityColumns {
		typ := d.TextType
		if c == domain.ColumnDate {
			typ = d.DateType + " NOT NULL"
		}
		columns = append(columns, d.Quote(c)+" "+typ)
	}

	seen := map[string]bool{}
	for _, m := range table.Metrics {
		if seen[m] {
			continue
		}
		seen[m] = true
		columns = append(columns, d.Quote(m)+" "+d.NumericType)
	}

	return "CREATE TABLE IF NOT EXISTS " + qualifiedName + " (\n\t" + strings.Join(columns, ",\n\t") + "\n)"
}
