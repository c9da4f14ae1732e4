package linkedinclient

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	linkedindomain "github.com/vfg2006/linkedin-ads-ingestor/infrastructure/integrator/linkedin/domain"
)

func (c *LinkedInClient) GetAdAccount(ctx context.Context, token, accountID string) (*linkedindomain.AdAccount, error) {
	url := fmt.Sprintf("%s/rest/adAccounts/%s", c.Cfg.APIURL, accountID)

	body, err := c.get(ctx, token, url)
	if err != nil {
		return nil, err
	}

	var account linkedindomain.AdAccount
	if err := json.Unmarshal(body, &account); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &account, nil
}

// SearchAdAccounts lista as contas de anúncio acessíveis pelo token
func (c *LinkedInClient) SearchAdAccounts(ctx context.Context, token string) ([]linkedindomain.AdAccount, error) {
	var accounts []linkedindomain.AdAccount
	visited := map[string]bool{}

	next := c.Cfg.APIURL + "/rest/adAccounts?q=search"
	for next != "" && !visited[next] {
		visited[next] = true

		body, err := c.get(ctx, token, next)
		if err != nil {
			return nil, err
		}

		var response linkedindomain.AdAccountSearchResponse
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON")
			return nil, err
		}

		accounts = append(accounts, response.Elements...)
		next = c.resolveLink(response.Paging.Next())
	}

	return accounts, nil
}
