package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequest(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		table    string
		validate func(t *testing.T, startSet, endSet bool, table string, err error)
	}{
		{
			name: "Sem flags - requisição padrão",
			validate: func(t *testing.T, startSet, endSet bool, table string, err error) {
				require.NoError(t, err)
				assert.False(t, startSet)
				assert.False(t, endSet)
				assert.Empty(t, table)
			},
		},
		{
			name:  "Intervalo e tabela",
			start: "2025-03-01",
			end:   "2025-03-02",
			table: "ad_cost_metrics",
			validate: func(t *testing.T, startSet, endSet bool, table string, err error) {
				require.NoError(t, err)
				assert.True(t, startSet)
				assert.True(t, endSet)
				assert.Equal(t, "ad_cost_metrics", table)
			},
		},
		{
			name:  "Data final em formato inválido",
			start: "2025-03-01",
			end:   "2025/03/02",
			validate: func(t *testing.T, startSet, endSet bool, table string, err error) {
				assert.EqualError(t, err, `--end-date inválida "2025/03/02", use YYYY-MM-DD`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := parseRequest(tt.start, tt.end, tt.table)
			tt.validate(t, req.StartDate != nil, req.EndDate != nil, req.Table, err)
		})
	}
}

func TestParseRequest_UTC(t *testing.T) {
	req, err := parseRequest("2025-03-01", "", "")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), *req.StartDate)
}
