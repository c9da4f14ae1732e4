package domain

import (
	"time"

	jsoniter "github.com/json-iterator/go"
)

// NotAvailable é o valor usado quando um metadado não pôde ser resolvido
const NotAvailable = "N/A"

// FlattenedRow é a linha gravada nas tabelas de destino: colunas de identificação
// seguidas de uma coluna por métrica solicitada
type FlattenedRow struct {
	Date              time.Time
	AccountName       string
	AccountID         string
	CampaignGroupName string
	CampaignGroupID   string
	CampaignName      string
	CampaignID        string
	CampaignType      string
	CampaignStatus    string

	// MetricNames preserva a ordem das métricas
	MetricNames []string
	Metrics     map[string]any
}

// Columns retorna os nomes das colunas na ordem de gravação
func (r FlattenedRow) Columns() []string {
	cols := make([]string, 0, len(IdentityColumns)+len(r.MetricNames))
	cols = append(cols, IdentityColumns...)
	return append(cols, r.MetricNames...)
}

// Values retorna os valores na mesma ordem de Columns
func (r FlattenedRow) Values() []any {
	values := []any{
		r.Date.Format(time.DateOnly),
		r.AccountName,
		r.AccountID,
		r.CampaignGroupName,
		r.CampaignGroupID,
		r.CampaignName,
		r.CampaignID,
		r.CampaignType,
		r.CampaignStatus,
	}
	for _, m := range r.MetricNames {
		values = append(values, r.Metrics[m])
	}
	return values
}

// Map retorna a linha como um mapa coluna -> valor
func (r FlattenedRow) Map() map[string]any {
	cols := r.Columns()
	values := r.Values()
	out := make(map[string]any, len(cols))
	for i, c := range cols {
		out[c] = values[i]
	}
	return out
}

func (r FlattenedRow) MarshalJSON() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(r.Map())
}
