package warehouse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/config"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/domain"
)

func TestRegistry(t *testing.T) {
	Register("registry-test", func(ctx context.Context, cfg *config.Config) (Warehouse, error) {
		return nil, nil
	})

	assert.Contains(t, Kinds(), "registry-test")

	assert.Panics(t, func() {
		Register("registry-test", func(ctx context.Context, cfg *config.Config) (Warehouse, error) { return nil, nil })
	})
	assert.Panics(t, func() { Register("", nil) })

	_, err := New(context.Background(), &config.Config{Warehouse: config.Warehouse{Backend: "registry-test"}})
	require.NoError(t, err)

	_, err = New(context.Background(), &config.Config{Warehouse: config.Warehouse{Backend: "desconhecido"}})
	assert.ErrorContains(t, err, "backend não suportado")

	_, err = New(context.Background(), &config.Config{})
	assert.Error(t, err)
}

func TestCreateTableSQL(t *testing.T) {
	d := Dialect{
		Quote:       func(s string) string { return "[" + s + "]" },
		DateType:    "DATE",
		TextType:    "VARCHAR",
		NumericType: "DECIMAL",
	}

	ddl := CreateTableSQL(d, "[t]", domain.MetricTable{Name: "t", Metrics: []string{"clicks"}})

	assert.Equal(t, "CREATE TABLE IF NOT EXISTS [t] (\n"+
		"\t[date] DATE NOT NULL,\n"+
		"\t[account_name] VARCHAR,\n"+
		"\t[account_id] VARCHAR,\n"+
		"\t[campaign_group_name] VARCHAR,\n"+
		"\t[campaign_group_id] VARCHAR,\n"+
		"\t[campaign_name] VARCHAR,\n"+
		"\t[campaign_id] VARCHAR,\n"+
		"\t[campaign_type] VARCHAR,\n"+
		"\t[campaign_status] VARCHAR,\n"+
		"\t[clicks] DECIMAL\n"+
		")", ddl)
}
