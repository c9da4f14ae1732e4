package secretstore

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/config"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.ReadLatest(ctx, "LINKEDIN_ACCESS_TOKEN")
	assert.ErrorIs(t, err, ErrSecretNotFound)

	require.NoError(t, store.WriteNewVersion(ctx, "LINKEDIN_ACCESS_TOKEN", "v1"))
	require.NoError(t, store.WriteNewVersion(ctx, "LINKEDIN_ACCESS_TOKEN", "v2"))

	latest, err := store.ReadLatest(ctx, "LINKEDIN_ACCESS_TOKEN")
	require.NoError(t, err)
	assert.Equal(t, "v2", latest)
	assert.Equal(t, []string{"v1", "v2"}, store.Versions("LINKEDIN_ACCESS_TOKEN"))
}

func TestRenderStore(t *testing.T) {
	var putBody string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer render-key", r.Header.Get("Authorization"))

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/services/srv-1/secret-files":
			_, _ = w.Write([]byte(`[{"secretFile":{"name":"LINKEDIN_ACCESS_TOKEN","content":"token-atual"},"cursor":"c1"}]`))
		case r.Method == http.MethodPut && r.URL.Path == "/services/srv-1/secret-files/LINKEDIN_ACCESS_TOKEN":
			body, _ := io.ReadAll(r.Body)
			putBody = string(body)
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	store := NewRenderStore("render-key", "srv-1")
	store.BaseURL = server.URL
	ctx := context.Background()

	value, err := store.ReadLatest(ctx, "LINKEDIN_ACCESS_TOKEN")
	require.NoError(t, err)
	assert.Equal(t, "token-atual", value)

	_, err = store.ReadLatest(ctx, "LINKEDIN_REFRESH_TOKEN")
	assert.ErrorIs(t, err, ErrSecretNotFound)

	require.NoError(t, store.WriteNewVersion(ctx, "LINKEDIN_ACCESS_TOKEN", "novo-token"))
	assert.JSONEq(t, `{"content":"novo-token"}`, putBody)
}

func TestRenderStore_ErroHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	store := NewRenderStore("bad", "srv-1")
	store.BaseURL = server.URL

	_, err := store.ReadLatest(context.Background(), "X")
	assert.ErrorContains(t, err, "Status: 401")
	assert.NotErrorIs(t, err, ErrSecretNotFound)
}

func TestNew_BackendDesconhecido(t *testing.T) {
	cfg := &config.Config{Secrets: config.Secrets{Backend: "vault"}}

	_, err := New(context.Background(), cfg)
	assert.ErrorContains(t, err, "vault")
}

func TestNew_Memory(t *testing.T) {
	cfg := &config.Config{Secrets: config.Secrets{Backend: "memory"}}

	store, err := New(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)
	assert.NoError(t, Close(store))
}
