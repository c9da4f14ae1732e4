package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/app"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/domain"
)

func main() {
	activeOnly := pflag.Bool("active", false, "Lista apenas contas ativas")
	pflag.Parse()

	cfg, flush, err := app.LoadConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	defer flush()

	ctx := context.Background()

	li, err := app.NewLinkedIn(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar cliente LinkedIn")
	}
	defer li.Close()

	token, err := li.Tokens.GetValidToken(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao obter token válido")
	}

	accounts, err := li.Integrator.ListAdAccounts(ctx, token)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao listar contas de anúncio")
	}

	printAccounts(os.Stdout, accounts, *activeOnly)
}

func printAccounts(out io.Writer, accounts []domain.AdAccount, activeOnly bool) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSTATUS\tTYPE\tCURRENCY")

	for _, a := range accounts {
		if activeOnly && !a.IsActive() {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", a.ID, a.Name, a.Status, a.Type, a.Currency)
	}

	w.Flush()
}
