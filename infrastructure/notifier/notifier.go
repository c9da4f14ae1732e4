package notifier

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/config"
)

//go:generate mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks

type Message struct {
	Subject string
	Body    string
}

// Channel é um destino de notificação (email, slack)
type Channel interface {
	Name() string
	Send(ctx context.Context, msg Message) error
}

// Dispatcher envia a mensagem para todos os canais configurados.
// Falhas são registradas e nunca propagadas.
type Dispatcher struct {
	channels []Channel
}

func NewDispatcher(channels ...Channel) *Dispatcher {
	return &Dispatcher{channels: channels}
}

// FromConfig monta o Dispatcher com os canais que têm configuração completa
func FromConfig(cfg *config.Config) *Dispatcher {
	var channels []Channel

	if cfg.Email.SMTPServer != "" && cfg.Email.Recipient != "" {
		channels = append(channels, NewEmailChannel(cfg.Email))
	}
	if cfg.Slack.WebhookURL != "" {
		channels = append(channels, NewSlackChannel(cfg.Slack.WebhookURL))
	}

	if len(channels) == 0 {
		logrus.Warn("Nenhum canal de notificação configurado")
	}

	return NewDispatcher(channels...)
}

// Notify retorna quantos canais receberam a mensagem com sucesso
func (d *Dispatcher) Notify(ctx context.Context, msg Message) int {
	sent := 0
	for _, ch := range d.channels {
		if err := ch.Send(ctx, msg); err != nil {
			logrus.WithFields(logrus.Fields{
				"channel": ch.Name(),
				"subject": msg.Subject,
			}).WithError(err).Error("Falha ao enviar notificação")
			continue
		}
		sent++
	}
	return sent
}

func (d *Dispatcher) Channels() []Channel {
	return d.channels
}
