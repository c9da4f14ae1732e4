package linkedinclient

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	linkedindomain "github.com/vfg2006/linkedin-ads-ingestor/infrastructure/integrator/linkedin/domain"
)

func (c *LinkedInClient) GetAdCampaign(ctx context.Context, token, accountID, campaignID string) (*linkedindomain.Campaign, error) {
	url := fmt.Sprintf("%s/rest/adAccounts/%s/adCampaigns/%s", c.Cfg.APIURL, accountID, campaignID)

	body, err := c.get(ctx, token, url)
	if err != nil {
		return nil, err
	}

	var campaign linkedindomain.Campaign
	if err := json.Unmarshal(body, &campaign); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &campaign, nil
}

func (c *LinkedInClient) GetAdCampaignGroup(ctx context.Context, token, accountID, campaignGroupID string) (*linkedindomain.CampaignGroup, error) {
	url := fmt.Sprintf("%s/rest/adAccounts/%s/adCampaignGroups/%s", c.Cfg.APIURL, accountID, campaignGroupID)

	body, err := c.get(ctx, token, url)
	if err != nil {
		return nil, err
	}

	var group linkedindomain.CampaignGroup
	if err := json.Unmarshal(body, &group); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &group, nil
}
