package linkedin

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	linkedindomain "github.com/vfg2006/linkedin-ads-ingestor/infrastructure/integrator/linkedin/domain"
	"github.com/vfg2006/linkedin-ads-ingestor/infrastructure/integrator/linkedin/linkedinclient"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/domain"
)

type entityInfo struct {
	Name   string
	Type   string
	Status string
}

// Flattener transforma elementos do adAnalytics em linhas planas. Os metadados
// de campanhas e grupos são memorizados por instância, uma por execução.
type Flattener struct {
	client linkedinclient.Client
	mu     sync.Mutex
	cache  map[string]entityInfo
}

func NewFlattener(client linkedinclient.Client) *Flattener {
	return &Flattener{
		client: client,
		cache:  make(map[string]entityInfo),
	}
}

// Flatten gera uma linha por elemento, na mesma ordem da resposta
func (f *Flattener) Flatten(ctx context.Context, token string, resp *linkedindomain.AnalyticsResponse, date time.Time, accountName, accountID string) []domain.FlattenedRow {
	if resp == nil {
		return nil
	}

	rows := make([]domain.FlattenedRow, 0, len(resp.Elements))
	for _, element := range resp.Elements {
		row := domain.FlattenedRow{
			Date:              domain.TruncateDay(date),
			AccountName:       accountName,
			AccountID:         accountID,
			CampaignGroupName: domain.NotAvailable,
			CampaignGroupID:   domain.NotAvailable,
			CampaignName:      domain.NotAvailable,
			CampaignID:        domain.NotAvailable,
			CampaignType:      domain.NotAvailable,
			CampaignStatus:    domain.NotAvailable,
		}

		for _, urn := range element.PivotValues {
			kind, id := ClassifyURN(urn)
			switch kind {
			case KindCampaignGroup:
				info := f.lookup(ctx, token, accountID, kind, id)
				row.CampaignGroupID = id
				row.CampaignGroupName = info.Name
			case KindCampaign:
				info := f.lookup(ctx, token, accountID, kind, id)
				row.CampaignID = id
				row.CampaignName = info.Name
				row.CampaignType = info.Type
				row.CampaignStatus = info.Status
			}
		}

		row.MetricNames = metricColumns(resp.Metrics, element.Metrics)
		row.Metrics = make(map[string]any, len(row.MetricNames))
		for _, m := range row.MetricNames {
			row.Metrics[m] = element.Metrics[m]
		}

		rows = append(rows, row)
	}

	return rows
}

// metricColumns usa a lista efetiva quando conhecida; caso contrário as chaves do elemento em ordem alfabética
func metricColumns(effective []string, metrics map[string]any) []string {
	if len(effective) > 0 {
		return effective
	}

	keys := make([]string, 0, len(metrics))
	for k := range metrics {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (f *Flattener) lookup(ctx context.Context, token, accountID string, kind EntityKind, id string) entityInfo {
	key := string(kind) + ":" + id

	f.mu.Lock()
	defer f.mu.Unlock()

	if info, ok := f.cache[key]; ok {
		return info
	}

	info := entityInfo{Name: domain.NotAvailable, Type: domain.NotAvailable, Status: domain.NotAvailable}

	switch kind {
	case KindCampaignGroup:
		group, err := f.client.GetAdCampaignGroup(ctx, token, accountID, id)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_group_id": id,
				"account_id":        accountID,
			}).WithError(err).Warn("flatten: falha ao buscar grupo de campanhas, usando N/A")
			break
		}
		info.Name = orNotAvailable(group.Name)
	case KindCampaign:
		campaign, err := f.client.GetAdCampaign(ctx, token, accountID, id)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": id,
				"account_id":  accountID,
			}).WithError(err).Warn("flatten: falha ao buscar campanha, usando N/A")
			break
		}
		info.Name = orNotAvailable(campaign.Name)
		info.Type = orNotAvailable(campaign.Type)
		info.Status = orNotAvailable(campaign.Status)
	}

	f.cache[key] = info
	return info
}

func orNotAvailable(s string) string {
	if s == "" {
		return domain.NotAvailable
	}
	return s
}
