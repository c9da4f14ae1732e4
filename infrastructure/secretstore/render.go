package secretstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const renderAPIURL = "https://api.render.com/v1"

type AddOrUpdateSecretRequest struct {
	Content string `json:"content"`
}

// RenderStore usa os secret files de um serviço do Render. O Render não
// versiona os arquivos: cada escrita substitui o conteúdo anterior.
type RenderStore struct {
	APIKey     string
	ServiceID  string
	BaseURL    string
	HTTPClient *http.Client
}

func NewRenderStore(apiKey, serviceID string) *RenderStore {
	return &RenderStore{
		APIKey:     apiKey,
		ServiceID:  serviceID,
		BaseURL:    renderAPIURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *RenderStore) ReadLatest(ctx context.Context, name string) (string, error) {
	secrets, err := c.ListSecrets(ctx)
	if err != nil {
		return "", err
	}

	content, ok := secrets[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrSecretNotFound, name)
	}

	return content, nil
}

func (c *RenderStore) WriteNewVersion(ctx context.Context, name, value string) error {
	return c.AddOrUpdateSecret(ctx, name, value)
}

func (c *RenderStore) ListSecrets(ctx context.Context) (map[string]string, error) {
	url := fmt.Sprintf("%s/services/%s/secret-files?limit=100", c.BaseURL, c.ServiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar segredos do Render: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("erro ao listar segredos do Render. Status: %d, Corpo: %s", resp.StatusCode, body)
	}

	var response []struct {
		SecretFile struct {
			Content string `json:"content"`
			Name    string `json:"name"`
		} `json:"secretFile"`
		Cursor string `json:"cursor"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar segredos do Render: %w", err)
	}

	secretsMap := make(map[string]string, len(response))
	for _, sf := range response {
		secretsMap[sf.SecretFile.Name] = sf.SecretFile.Content
	}

	return secretsMap, nil
}

func (c *RenderStore) AddOrUpdateSecret(ctx context.Context, secretName, secretContent string) error {
	url := fmt.Sprintf("%s/services/%s/secret-files/%s", c.BaseURL, c.ServiceID, secretName)

	jsonData, err := json.Marshal(AddOrUpdateSecretRequest{Content: secretContent})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao atualizar segredo %s no Render: %w", secretName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("erro ao atualizar segredo %s no Render. Status: %d, Corpo: %s", secretName, resp.StatusCode, body)
	}
	return nil
}
