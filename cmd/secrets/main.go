package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/vfg2006/linkedin-ads-ingestor/infrastructure/secretstore"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/config"
	"github.com/vfg2006/linkedin-ads-ingestor/pkg/log"
)

// secretEnsurer é implementado pelos backends que exigem criar o segredo antes da primeira versão
type secretEnsurer interface {
	EnsureSecret(ctx context.Context, name string) error
}

func main() {
	pflag.String("access-token", "", "Access token inicial (ou INITIAL_ACCESS_TOKEN)")
	pflag.String("refresh-token", "", "Refresh token inicial (ou INITIAL_REFRESH_TOKEN)")
	pflag.Parse()

	_ = viper.BindPFlag("initial_access_token", pflag.Lookup("access-token"))
	_ = viper.BindPFlag("initial_refresh_token", pflag.Lookup("refresh-token"))

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)

	ctx := context.Background()

	store, err := secretstore.New(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar secret store")
	}
	defer secretstore.Close(store)

	values := map[string]string{
		cfg.Secrets.AccessTokenName:  viper.GetString("initial_access_token"),
		cfg.Secrets.RefreshTokenName: viper.GetString("initial_refresh_token"),
	}

	written, err := seed(ctx, store, values)
	if err != nil {
		logrus.WithError(err).Error("Erro ao gravar segredos")
		os.Exit(1)
	}

	fmt.Printf("%d segredo(s) gravado(s) no backend %s\n", written, cfg.Secrets.Backend)
}

// seed grava uma nova versão para cada valor não vazio
func seed(ctx context.Context, store secretstore.Store, values map[string]string) (int, error) {
	written := 0
	for name, value := range values {
		if value == "" {
			continue
		}

		if e, ok := store.(secretEnsurer); ok {
			if err := e.EnsureSecret(ctx, name); err != nil {
				return written, err
			}
		}

		if err := store.WriteNewVersion(ctx, name, value); err != nil {
			return written, fmt.Errorf("erro ao gravar segredo %s: %w", name, err)
		}

		logrus.WithField("secret", name).Info("Segredo gravado")
		written++
	}

	if written == 0 {
		return 0, errors.New("nenhum token informado, use --access-token e/ou --refresh-token")
	}

	return written, nil
}
