package notifier

import (
	"context"
	"fmt"
	"net/http"

	"github.com/slack-go/slack"
)

type SlackChannel struct {
	webhookURL string
	httpClient *http.Client
}

func NewSlackChannel(webhookURL string) *SlackChannel {
	return &SlackChannel{webhookURL: webhookURL, httpClient: http.DefaultClient}
}

func (c *SlackChannel) Name() string { return "slack" }

func (c *SlackChannel) Send(ctx context.Context, msg Message) error {
	payload := &slack.WebhookMessage{
		Text: fmt.Sprintf("*%s*\n```%s```", msg.Subject, msg.Body),
	}

	if err := slack.PostWebhookCustomHTTPContext(ctx, c.webhookURL, c.httpClient, payload); err != nil {
		return fmt.Errorf("erro ao enviar mensagem ao slack: %w", err)
	}

	return nil
}
