package secretstore

import (
	"context"
	"fmt"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GCPStore usa o Google Secret Manager. Cada escrita adiciona uma versão e as
// versões antigas nunca são removidas.
type GCPStore struct {
	client    *secretmanager.Client
	projectID string
}

func NewGCPStore(ctx context.Context, projectID string, opts ...option.ClientOption) (*GCPStore, error) {
	if projectID == "" {
		return nil, fmt.Errorf("GCP_PROJECT_ID é obrigatório para o Secret Manager")
	}

	client, err := secretmanager.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente do Secret Manager: %w", err)
	}

	return &GCPStore{client: client, projectID: projectID}, nil
}

func (s *GCPStore) ReadLatest(ctx context.Context, name string) (string, error) {
	resp, err := s.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: fmt.Sprintf("projects/%s/secrets/%s/versions/latest", s.projectID, name),
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return "", fmt.Errorf("%w: %s", ErrSecretNotFound, name)
		}
		return "", fmt.Errorf("erro ao acessar segredo %s: %w", name, err)
	}

	return string(resp.GetPayload().GetData()), nil
}

func (s *GCPStore) WriteNewVersion(ctx context.Context, name, value string) error {
	version, err := s.client.AddSecretVersion(ctx, &secretmanagerpb.AddSecretVersionRequest{
		Parent: s.secretPath(name),
		Payload: &secretmanagerpb.SecretPayload{
			Data: []byte(value),
		},
	})
	if err != nil {
		return fmt.Errorf("erro ao adicionar versão do segredo %s: %w", name, err)
	}

	logrus.WithField("version", version.GetName()).Info("Nova versão de segredo criada")
	return nil
}

// EnsureSecret cria o segredo com replicação automática se ele ainda não existir
func (s *GCPStore) EnsureSecret(ctx context.Context, name string) error {
	_, err := s.client.CreateSecret(ctx, &secretmanagerpb.CreateSecretRequest{
		Parent:   "projects/" + s.projectID,
		SecretId: name,
		Secret: &secretmanagerpb.Secret{
			Replication: &secretmanagerpb.Replication{
				Replication: &secretmanagerpb.Replication_Automatic_{
					Automatic: &secretmanagerpb.Replication_Automatic{},
				},
			},
		},
	})
	if err != nil && status.Code(err) != codes.AlreadyExists {
		return fmt.Errorf("erro ao criar segredo %s: %w", name, err)
	}
	return nil
}

func (s *GCPStore) Close() error {
	return s.client.Close()
}

func (s *GCPStore) secretPath(name string) string {
	return fmt.Sprintf("projects/%s/secrets/%s", s.projectID, name)
}
