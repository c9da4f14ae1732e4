package warehouse

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vfg2006/linkedin-ads-ingestor/internal/config"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/domain"
)

//go:generate mockgen -source=warehouse.go -destination=mocks/mock_warehouse.go -package=mocks

// Warehouse é o destino analítico das linhas planas
type Warehouse interface {
	// Name identifica o backend nas mensagens, por exemplo "BigQuery"
	Name() string
	Dataset() string
	DatasetExists(ctx context.Context) (bool, error)
	TableExists(ctx context.Context, table string) (bool, error)
	// DeleteDateRange remove as linhas com date entre start e end, inclusive
	DeleteDateRange(ctx context.Context, table string, start, end time.Time) (int64, error)
	// BulkInsert grava as linhas em um único job e retorna a quantidade confirmada pelo backend
	BulkInsert(ctx context.Context, table string, rows []domain.FlattenedRow) (int64, error)
	Close() error
}

type Factory func(ctx context.Context, cfg *config.Config) (Warehouse, error)

var (
	mu        sync.RWMutex
	factories = map[string]Factory{}
)

// Register registra um backend. Deve ser chamado no init do pacote do backend.
func Register(kind string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if kind == "" {
		panic("warehouse: Register chamado com kind vazio")
	}
	if f == nil {
		panic("warehouse: Register chamado com factory nula")
	}
	if _, exists := factories[kind]; exists {
		panic(fmt.Sprintf("warehouse: backend já registrado: %q", kind))
	}

	factories[kind] = f
}

// New cria o backend configurado em WAREHOUSE_BACKEND
func New(ctx context.Context, cfg *config.Config) (Warehouse, error) {
	kind := cfg.Warehouse.Backend
	if kind == "" {
		return nil, fmt.Errorf("warehouse: WAREHOUSE_BACKEND não informado")
	}

	mu.RLock()
	f := factories[kind]
	mu.RUnlock()

	if f == nil {
		return nil, fmt.Errorf("warehouse: backend não suportado: %s (disponíveis: %v)", kind, Kinds())
	}

	return f(ctx, cfg)
}

// Kinds lista os backends registrados
func Kinds() []string {
	mu.RLock()
	defer mu.RUnlock()

	kinds := make([]string, 0, len(factories))
	for k := range factories {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
