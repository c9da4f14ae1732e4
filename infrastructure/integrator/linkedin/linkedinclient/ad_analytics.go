package linkedinclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	linkedindomain "github.com/vfg2006/linkedin-ads-ingestor/infrastructure/integrator/linkedin/domain"
)

var defaultPivots = []string{"CAMPAIGN", "CAMPAIGN_GROUP"}

// QueryFields monta a lista de campos da consulta em um novo slice:
// pivotValues e impressions sempre primeiro, seguidos das métricas sem repetição
func QueryFields(metrics []string) []string {
	fields := make([]string, 0, len(metrics)+2)
	fields = append(fields, linkedindomain.FieldPivotValues, linkedindomain.FieldImpressions)

	seen := map[string]bool{
		linkedindomain.FieldPivotValues: true,
		linkedindomain.FieldImpressions: true,
	}
	for _, m := range metrics {
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		fields = append(fields, m)
	}

	return fields
}

// pivotParams retorna o finder e o parâmetro de pivot conforme a quantidade de pivots
func pivotParams(pivots []string) (string, string) {
	switch len(pivots) {
	case 0:
		return "statistics", "&pivots=List(" + strings.Join(defaultPivots, ",") + ")"
	case 1:
		return "analytics", "&pivot=" + pivots[0]
	default:
		return "statistics", "&pivots=List(" + strings.Join(pivots, ",") + ")"
	}
}

// BuildAnalyticsURL monta a URL do adAnalytics para um único dia. A sintaxe
// Rest.li (List(...), (day:..)) não pode passar pelo url.Values.
func BuildAnalyticsURL(apiURL string, query linkedindomain.AnalyticsQuery) string {
	q, pivots := pivotParams(query.Pivots)
	d := query.Date

	dateRange := fmt.Sprintf("(start:(day:%d,month:%d,year:%d),end:(day:%d,month:%d,year:%d))",
		d.Day(), int(d.Month()), d.Year(), d.Day(), int(d.Month()), d.Year())

	return apiURL + "/rest/adAnalytics" +
		"?q=" + q +
		"&timeGranularity=DAILY" +
		"&accounts=List(urn%3Ali%3AsponsoredAccount%3A" + query.AccountID + ")" +
		"&dateRange=" + dateRange +
		pivots +
		"&fields=" + strings.Join(QueryFields(query.Metrics), ",")
}

// GetAdAnalytics busca as métricas do dia e segue os links de paginação
func (c *LinkedInClient) GetAdAnalytics(ctx context.Context, token string, query linkedindomain.AnalyticsQuery) (*linkedindomain.AnalyticsResponse, error) {
	result := &linkedindomain.AnalyticsResponse{}
	visited := map[string]bool{}

	next := BuildAnalyticsURL(c.Cfg.APIURL, query)
	for next != "" && !visited[next] {
		visited[next] = true

		body, err := c.get(ctx, token, next)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": query.AccountID,
				"date":       query.Date.Format("2006-01-02"),
			}).WithError(err).Error("analytics: falha ao buscar métricas na API")
			return nil, err
		}

		var page linkedindomain.AnalyticsResponse
		if err := json.Unmarshal(body, &page); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON")
			return nil, fmt.Errorf("erro ao decodificar resposta do adAnalytics: %w", err)
		}

		result.Elements = append(result.Elements, page.Elements...)
		result.Paging = page.Paging

		next = c.resolveLink(page.Paging.Next())
	}

	return result, nil
}

// resolveLink converte links relativos da paginação em URLs absolutas
func (c *LinkedInClient) resolveLink(href string) string {
	if href == "" || strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if !strings.HasPrefix(href, "/") {
		href = "/" + href
	}
	return c.Cfg.APIURL + href
}
