package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/app"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/usecases/ingesting"
	"github.com/vfg2006/linkedin-ads-ingestor/pkg/utils"
)

func main() {
	startDate := pflag.String("start-date", "", "Data inicial (YYYY-MM-DD). Padrão: ontem (UTC)")
	endDate := pflag.String("end-date", "", "Data final (YYYY-MM-DD). Padrão: a data inicial")
	table := pflag.String("table", "", "Tabela a processar. Padrão: todas as configuradas")
	pflag.Parse()

	os.Exit(run(*startDate, *endDate, *table))
}

func run(startDate, endDate, table string) int {
	req, err := parseRequest(startDate, endDate, table)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	cfg, flush, err := app.LoadConfig()
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar configuração")
		return 1
	}
	defer flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Error("Erro ao inicializar a aplicação")
		return 1
	}
	defer application.Close()

	result := application.Ingestion.Run(ctx, req)
	fmt.Println(result.Message)

	if result.Err != nil {
		return 1
	}
	return 0
}

func parseRequest(startDate, endDate, table string) (ingesting.RunRequest, error) {
	start, err := utils.ParseDate(startDate)
	if err != nil {
		return ingesting.RunRequest{}, fmt.Errorf("--start-date inválida %q, use YYYY-MM-DD", startDate)
	}

	end, err := utils.ParseDate(endDate)
	if err != nil {
		return ingesting.RunRequest{}, fmt.Errorf("--end-date inválida %q, use YYYY-MM-DD", endDate)
	}

	return ingesting.RunRequest{StartDate: start, EndDate: end, Table: table}, nil
}
