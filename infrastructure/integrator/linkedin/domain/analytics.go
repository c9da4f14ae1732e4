package linkedindomain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
)

const (
	FieldPivotValues = "pivotValues"
	FieldImpressions = "impressions"
)

// AnalyticsQuery descreve uma consulta ao adAnalytics para um único dia
type AnalyticsQuery struct {
	AccountID string
	Date      time.Time
	Metrics   []string
	Pivots    []string
}

type AnalyticsResponse struct {
	Elements []AnalyticsElement `json:"elements"`
	Paging   Paging             `json:"paging"`

	// Metrics é a lista efetiva de métricas após o pós-processamento, na ordem das colunas
	Metrics []string `json:"-"`
}

// AnalyticsElement é uma linha crua do adAnalytics: URNs dos pivots e as métricas
type AnalyticsElement struct {
	PivotValues []string
	Metrics     map[string]any
}

func (e *AnalyticsElement) UnmarshalJSON(data []byte) error {
	var raw map[string]any

	dec := jsoniter.ConfigCompatibleWithStandardLibrary.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	e.PivotValues = nil
	if pv, ok := raw[FieldPivotValues].([]any); ok {
		for _, v := range pv {
			if s, ok := v.(string); ok {
				e.PivotValues = append(e.PivotValues, s)
			}
		}
	}
	delete(raw, FieldPivotValues)

	e.Metrics = make(map[string]any, len(raw))
	for k, v := range raw {
		e.Metrics[k] = NormalizeNumber(v)
	}

	return nil
}

// NormalizeNumber converte valores numéricos vindos da API (json.Number ou
// strings como costInUsd) em int64 ou float64. Nulos viram 0.
func NormalizeNumber(v any) any {
	switch n := v.(type) {
	case nil:
		return int64(0)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i
		}
		if f, err := n.Float64(); err == nil {
			return f
		}
		return n.String()
	case string:
		if i, err := strconv.ParseInt(n, 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f
		}
		return n
	case int:
		return int64(n)
	case float64:
		if n == float64(int64(n)) {
			return int64(n)
		}
		return n
	default:
		return v
	}
}
