package linkedinclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	linkedindomain "github.com/vfg2006/linkedin-ads-ingestor/infrastructure/integrator/linkedin/domain"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/config"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/domain"
)

func TestQueryFields(t *testing.T) {
	metrics := []string{"clicks", "impressions", "costInUsd", "clicks"}

	fields := QueryFields(metrics)

	assert.Equal(t, []string{"pivotValues", "impressions", "clicks", "costInUsd"}, fields)
	assert.Equal(t, []string{"clicks", "impressions", "costInUsd", "clicks"}, metrics)
}

func TestBuildAnalyticsURL(t *testing.T) {
	date := time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)
	prefix := "https://api.linkedin.com/rest/adAnalytics?q="
	window := "&timeGranularity=DAILY&accounts=List(urn%3Ali%3AsponsoredAccount%3A123)" +
		"&dateRange=(start:(day:7,month:3,year:2025),end:(day:7,month:3,year:2025))"

	tests := []struct {
		name     string
		pivots   []string
		expected string
	}{
		{
			name:     "Sem pivots - usa CAMPAIGN e CAMPAIGN_GROUP",
			pivots:   nil,
			expected: prefix + "statistics" + window + "&pivots=List(CAMPAIGN,CAMPAIGN_GROUP)&fields=pivotValues,impressions,clicks",
		},
		{
			name:     "Um pivot - finder analytics",
			pivots:   []string{"CAMPAIGN"},
			expected: prefix + "analytics" + window + "&pivot=CAMPAIGN&fields=pivotValues,impressions,clicks",
		},
		{
			name:     "Vários pivots - mantém a ordem",
			pivots:   []string{"CAMPAIGN_GROUP", "CAMPAIGN", "CREATIVE"},
			expected: prefix + "statistics" + window + "&pivots=List(CAMPAIGN_GROUP,CAMPAIGN,CREATIVE)&fields=pivotValues,impressions,clicks",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url := BuildAnalyticsURL("https://api.linkedin.com", linkedindomain.AnalyticsQuery{
				AccountID: "123",
				Date:      date,
				Metrics:   []string{"clicks"},
				Pivots:    tt.pivots,
			})
			assert.Equal(t, tt.expected, url)
		})
	}
}

func TestGetAdAnalytics(t *testing.T) {
	var headers http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers = r.Header.Clone()
		if r.URL.Query().Get("start") == "1" {
			_, _ = w.Write([]byte(`{"elements":[{"pivotValues":["urn:li:sponsoredCampaign:2"],"clicks":3,"costInUsd":"1.5"}],"paging":{"start":1,"count":1,"links":[]}}`))
			return
		}
		_, _ = w.Write([]byte(`{"elements":[{"pivotValues":["urn:li:sponsoredCampaign:1","urn:li:sponsoredCampaignGroup:9"],"clicks":5,"impressions":100}],` +
			`"paging":{"start":0,"count":1,"links":[{"rel":"next","href":"/rest/adAnalytics?q=statistics&start=1"}]}}`))
	}))
	defer server.Close()

	client := NewClient(config.LinkedIn{APIURL: server.URL, Version: "202510"})

	resp, err := client.GetAdAnalytics(context.Background(), "token", linkedindomain.AnalyticsQuery{
		AccountID: "123",
		Date:      time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC),
		Metrics:   []string{"clicks", "costInUsd"},
	})
	require.NoError(t, err)

	require.Len(t, resp.Elements, 2)
	assert.Equal(t, []string{"urn:li:sponsoredCampaign:1", "urn:li:sponsoredCampaignGroup:9"}, resp.Elements[0].PivotValues)
	assert.Equal(t, int64(5), resp.Elements[0].Metrics["clicks"])
	assert.Equal(t, 1.5, resp.Elements[1].Metrics["costInUsd"])

	assert.Equal(t, "Bearer token", headers.Get("Authorization"))
	assert.Equal(t, "202510", headers.Get("LinkedIn-Version"))
	assert.Equal(t, "2.0.0", headers.Get("X-Restli-Protocol-Version"))
	assert.Equal(t, "application/json", headers.Get("Content-Type"))
}

func TestGetAdAnalytics_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"status":403,"serviceErrorCode":100,"code":"ACCESS_DENIED","message":"Not enough permissions"}`))
	}))
	defer server.Close()

	client := NewClient(config.LinkedIn{APIURL: server.URL})

	resp, err := client.GetAdAnalytics(context.Background(), "token", linkedindomain.AnalyticsQuery{
		AccountID: "123",
		Date:      time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC),
	})

	assert.Nil(t, resp)
	var apiErr *domain.UpstreamAPIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, 100, apiErr.ServiceErrorCode)
	assert.Equal(t, "/rest/adAnalytics", apiErr.Endpoint)
	assert.True(t, strings.Contains(apiErr.Error(), "Not enough permissions"))
}

func TestGetAdCampaign(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rest/adAccounts/123/adCampaigns/1":
			_, _ = w.Write([]byte(`{"id":1,"name":"Campanha","type":"SPONSORED_UPDATES","status":"ACTIVE"}`))
		case "/rest/adAccounts/123/adCampaignGroups/9":
			_, _ = w.Write([]byte(`{"id":9,"name":"Grupo","status":"ACTIVE"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient(config.LinkedIn{APIURL: server.URL})

	campaign, err := client.GetAdCampaign(context.Background(), "token", "123", "1")
	require.NoError(t, err)
	assert.Equal(t, "Campanha", campaign.Name)
	assert.Equal(t, "SPONSORED_UPDATES", campaign.Type)

	group, err := client.GetAdCampaignGroup(context.Background(), "token", "123", "9")
	require.NoError(t, err)
	assert.Equal(t, "Grupo", group.Name)

	_, err = client.GetAdCampaign(context.Background(), "token", "123", "404")
	assert.Error(t, err)
}
