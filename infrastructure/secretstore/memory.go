package secretstore

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore guarda as versões em memória. Usado em execuções locais e testes.
type MemoryStore struct {
	mu       sync.RWMutex
	versions map[string][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{versions: make(map[string][]string)}
}

func (s *MemoryStore) ReadLatest(_ context.Context, name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	versions := s.versions[name]
	if len(versions) == 0 {
		return "", fmt.Errorf("%w: %s", ErrSecretNotFound, name)
	}
	return versions[len(versions)-1], nil
}

func (s *MemoryStore) WriteNewVersion(_ context.Context, name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.versions[name] = append(s.versions[name], value)
	return nil
}

// Versions retorna todas as versões gravadas de um segredo, da mais antiga para a mais nova
func (s *MemoryStore) Versions(name string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]string(nil), s.versions[name]...)
}
