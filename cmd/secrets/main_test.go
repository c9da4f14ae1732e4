package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/linkedin-ads-ingestor/infrastructure/secretstore"
)

type ensuringStore struct {
	*secretstore.MemoryStore
	ensured []string
}

func (s *ensuringStore) EnsureSecret(_ context.Context, name string) error {
	s.ensured = append(s.ensured, name)
	return nil
}

func TestSeed(t *testing.T) {
	tests := []struct {
		name     string
		values   map[string]string
		validate func(t *testing.T, store *ensuringStore, written int, err error)
	}{
		{
			name: "Os dois tokens - duas versões novas",
			values: map[string]string{
				"LINKEDIN_ACCESS_TOKEN":  "acesso",
				"LINKEDIN_REFRESH_TOKEN": "refresh",
			},
			validate: func(t *testing.T, store *ensuringStore, written int, err error) {
				require.NoError(t, err)
				assert.Equal(t, 2, written)
				assert.ElementsMatch(t, []string{"LINKEDIN_ACCESS_TOKEN", "LINKEDIN_REFRESH_TOKEN"}, store.ensured)

				value, err := store.ReadLatest(context.Background(), "LINKEDIN_REFRESH_TOKEN")
				require.NoError(t, err)
				assert.Equal(t, "refresh", value)
			},
		},
		{
			name: "Apenas refresh token",
			values: map[string]string{
				"LINKEDIN_ACCESS_TOKEN":  "",
				"LINKEDIN_REFRESH_TOKEN": "refresh",
			},
			validate: func(t *testing.T, store *ensuringStore, written int, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, written)
				assert.Empty(t, store.Versions("LINKEDIN_ACCESS_TOKEN"))
			},
		},
		{
			name:   "Nenhum token - erro",
			values: map[string]string{"LINKEDIN_ACCESS_TOKEN": ""},
			validate: func(t *testing.T, store *ensuringStore, written int, err error) {
				assert.Error(t, err)
				assert.Zero(t, written)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &ensuringStore{MemoryStore: secretstore.NewMemoryStore()}
			written, err := seed(context.Background(), store, tt.values)
			tt.validate(t, store, written, err)
		})
	}
}
