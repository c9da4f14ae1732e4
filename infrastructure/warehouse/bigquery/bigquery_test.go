package bigquery

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/domain"
	"google.golang.org/api/googleapi"
)

func TestEncodeNDJSON(t *testing.T) {
	rows := []domain.FlattenedRow{
		{
			Date:        time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC),
			AccountName: "Acme",
			AccountID:   "123",
			CampaignID:  "1",
			MetricNames: []string{"clicks"},
			Metrics:     map[string]any{"clicks": int64(5)},
		},
		{
			Date:        time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC),
			AccountID:   "123",
			CampaignID:  "2",
			MetricNames: []string{"clicks"},
			Metrics:     map[string]any{"clicks": int64(0)},
		},
	}

	payload, err := EncodeNDJSON(rows)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(payload), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"date":"2025-03-07"`)
	assert.Contains(t, lines[0], `"clicks":5`)
	assert.Contains(t, lines[1], `"campaign_id":"2"`)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(&googleapi.Error{Code: http.StatusNotFound}))
	assert.True(t, isNotFound(fmt.Errorf("wrapped: %w", &googleapi.Error{Code: http.StatusNotFound})))
	assert.False(t, isNotFound(&googleapi.Error{Code: http.StatusForbidden}))
	assert.False(t, isNotFound(nil))
}

func TestDeleteRangeSQL(t *testing.T) {
	assert.Equal(t,
		"DELETE FROM `proj.linkedin.ad_analytics` WHERE date >= @start_date AND date <= @end_date",
		fmt.Sprintf(deleteRangeSQL, "proj", "linkedin", "ad_analytics"))
}
