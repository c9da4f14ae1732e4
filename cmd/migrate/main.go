package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vfg2006/linkedin-ads-ingestor/infrastructure/warehouse"
	_ "github.com/vfg2006/linkedin-ads-ingestor/infrastructure/warehouse/postgres"
	_ "github.com/vfg2006/linkedin-ads-ingestor/infrastructure/warehouse/sqlite"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/config"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/domain"
	"github.com/vfg2006/linkedin-ads-ingestor/pkg/log"
)

func main() {
	apply := pflag.Bool("apply", false, "Executa o DDL no destino em vez de apenas imprimir")
	table := pflag.String("table", "", "Tabela específica. Padrão: todas as configuradas")
	pflag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)

	tables := cfg.Tables
	if *table != "" {
		t, ok := domain.FindTable(cfg.Tables, *table)
		if !ok {
			logrus.Fatalf("Tabela desconhecida: %s", *table)
		}
		tables = []domain.MetricTable{t}
	}

	ctx := context.Background()

	wh, err := warehouse.New(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao destino")
	}
	defer wh.Close()

	creator, ok := wh.(warehouse.SchemaCreator)
	if !ok {
		logrus.Fatalf("O destino %s não suporta migração, crie as tabelas manualmente", wh.Name())
	}

	if err := migrate(ctx, os.Stdout, creator, tables, *apply); err != nil {
		logrus.WithError(err).Error("Migração interrompida")
		os.Exit(1)
	}
}

// migrate imprime o DDL de cada tabela e, com apply, executa no destino
func migrate(ctx context.Context, out io.Writer, creator warehouse.SchemaCreator, tables []domain.MetricTable, apply bool) error {
	for _, t := range tables {
		fmt.Fprintf(out, "%s;\n\n", creator.CreateTableSQL(t))

		if !apply {
			continue
		}

		if err := creator.CreateTable(ctx, t); err != nil {
			return err
		}
		logrus.WithField("table", t.Name).Info("Tabela criada")
	}
	return nil
}
