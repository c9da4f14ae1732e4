package secretstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/vfg2006/linkedin-ads-ingestor/internal/config"
)

var ErrSecretNotFound = errors.New("secret not found")

// Store é um backend de segredos versionado: leituras retornam sempre a
// versão mais recente e escritas criam uma nova versão
type Store interface {
	ReadLatest(ctx context.Context, name string) (string, error)
	WriteNewVersion(ctx context.Context, name, value string) error
}

// New cria o backend configurado em SECRET_BACKEND
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.Secrets.Backend {
	case "gcp", "":
		return NewGCPStore(ctx, cfg.GCP.ProjectID)
	case "render":
		return NewRenderStore(cfg.Render.APIKey, cfg.Render.ServiceID), nil
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("backend de segredos desconhecido: %s", cfg.Secrets.Backend)
	}
}

// Close fecha o backend quando ele mantém conexões abertas
func Close(store Store) error {
	if c, ok := store.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
