package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateRange(t *testing.T) {
	start := time.Date(2024, 1, 30, 15, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 2, 1, 0, 0, 0, time.UTC)

	r, err := NewDateRange(start, end)
	require.NoError(t, err)

	days := r.Days()
	require.Len(t, days, 4)
	assert.Equal(t, "2024-01-30", days[0].Format(time.DateOnly))
	assert.Equal(t, "2024-02-02", days[3].Format(time.DateOnly))
	assert.Equal(t, "2024-01-30 a 2024-02-02", r.String())
}

func TestNewDateRange_InicioDepoisDoFim(t *testing.T) {
	_, err := NewDateRange(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestYesterday(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 30, 0, 0, time.FixedZone("BRT", -3*3600))

	// 00:30 BRT ainda é 03:30 UTC do dia 1, então ontem é 29/02
	assert.Equal(t, "2024-02-29", Yesterday(now).Format(time.DateOnly))
}

func TestFlattenedRow_ColumnsAndValues(t *testing.T) {
	row := FlattenedRow{
		Date:              time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		AccountName:       "Conta",
		AccountID:         "123",
		CampaignGroupName: "Grupo",
		CampaignGroupID:   "10",
		CampaignName:      "Campanha",
		CampaignID:        "20",
		CampaignType:      "SPONSORED_UPDATES",
		CampaignStatus:    "ACTIVE",
		MetricNames:       []string{"clicks", "impressions"},
		Metrics:           map[string]any{"clicks": int64(5), "impressions": int64(0)},
	}

	cols := row.Columns()
	values := row.Values()
	require.Len(t, values, len(cols))
	assert.Equal(t, "date", cols[0])
	assert.Equal(t, "impressions", cols[len(cols)-1])
	assert.Equal(t, "2024-01-01", values[0])

	data, err := row.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"date": "2024-01-01",
		"account_name": "Conta",
		"account_id": "123",
		"campaign_group_name": "Grupo",
		"campaign_group_id": "10",
		"campaign_name": "Campanha",
		"campaign_id": "20",
		"campaign_type": "SPONSORED_UPDATES",
		"campaign_status": "ACTIVE",
		"clicks": 5,
		"impressions": 0
	}`, string(data))
}
