package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/domain"
)

type Config struct {
	App           App                  `mapstructure:",squash"`
	Server        Server               `mapstructure:",squash"`
	Auth          Auth                 `mapstructure:",squash"`
	GCP           GCP                  `mapstructure:",squash"`
	LinkedIn      LinkedIn             `mapstructure:",squash"`
	Secrets       Secrets              `mapstructure:",squash"`
	Render        Render               `mapstructure:",squash"`
	Warehouse     Warehouse            `mapstructure:",squash"`
	Email         Email                `mapstructure:",squash"`
	Slack         Slack                `mapstructure:",squash"`
	IngestionSync IngestionSync        `mapstructure:",squash"`
	Tables        []domain.MetricTable `mapstructure:"-"`
}

type App struct {
	LogLevel         string `mapstructure:"log_level"`
	SentryDSN        string `mapstructure:"sentry_dsn"`
	Environment      string `mapstructure:"app_env"`
	TablesConfigFile string `mapstructure:"tables_config_file"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type GCP struct {
	ProjectID        string `mapstructure:"gcp_project_id"`
	BigQueryDataset  string `mapstructure:"bigquery_dataset"`
	BigQueryLocation string `mapstructure:"bigquery_location"`
}

type LinkedIn struct {
	AccountID         string        `mapstructure:"linkedin_account_id"`
	ClientID          string        `mapstructure:"linkedin_client_id"`
	ClientSecret      string        `mapstructure:"linkedin_client_secret"`
	APIURL            string        `mapstructure:"linkedin_api_url"`
	TokenURL          string        `mapstructure:"linkedin_token_url"`
	Version           string        `mapstructure:"linkedin_version"`
	HTTPTimeout       time.Duration `mapstructure:"linkedin_http_timeout"`
	RequestsPerSecond float64       `mapstructure:"linkedin_requests_per_second"`
	Pivots            []string      `mapstructure:"pivots"`
}

// Secrets guarda os nomes (não os valores) dos segredos no Secret Store
type Secrets struct {
	Backend          string `mapstructure:"secret_backend"`
	AccessTokenName  string `mapstructure:"linkedin_access_token"`
	RefreshTokenName string `mapstructure:"linkedin_refresh_token"`
}

type Render struct {
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
}

type Warehouse struct {
	Backend string `mapstructure:"warehouse_backend"`
	DSN     string `mapstructure:"warehouse_dsn"`
}

type Email struct {
	User       string `mapstructure:"email_user"`
	Password   string `mapstructure:"email_pass"`
	SMTPServer string `mapstructure:"smtp_server"`
	SMTPPort   int    `mapstructure:"smtp_port"`
	Recipient  string `mapstructure:"email_recipient"`
}

type Slack struct {
	WebhookURL string `mapstructure:"slack_webhook_url"`
}

type IngestionSync struct {
	CronSchedule string `mapstructure:"ingestion_sync_cron"`
	Enabled      bool   `mapstructure:"ingestion_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("AUTH_SECRET", "")

	viper.SetDefault("GCP_PROJECT_ID", "")
	viper.SetDefault("BIGQUERY_DATASET", "linkedin")
	viper.SetDefault("BIGQUERY_LOCATION", "")

	viper.SetDefault("LINKEDIN_ACCOUNT_ID", "")
	viper.SetDefault("LINKEDIN_CLIENT_ID", "")
	viper.SetDefault("LINKEDIN_CLIENT_SECRET", "")
	viper.SetDefault("LINKEDIN_API_URL", "https://api.linkedin.com")
	viper.SetDefault("LINKEDIN_TOKEN_URL", "https://www.linkedin.com/oauth/v2/accessToken")
	viper.SetDefault("LINKEDIN_VERSION", "202510")
	viper.SetDefault("LINKEDIN_HTTP_TIMEOUT", "60s")
	viper.SetDefault("LINKEDIN_REQUESTS_PER_SECOND", 5) // limite local, não é política de retry
	viper.SetDefault("PIVOTS", "CAMPAIGN,CAMPAIGN_GROUP")

	// Os valores padrão dos nomes dos segredos são os próprios nomes das chaves
	viper.SetDefault("SECRET_BACKEND", "gcp")
	viper.SetDefault("LINKEDIN_ACCESS_TOKEN", "LINKEDIN_ACCESS_TOKEN")
	viper.SetDefault("LINKEDIN_REFRESH_TOKEN", "LINKEDIN_REFRESH_TOKEN")

	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")

	viper.SetDefault("WAREHOUSE_BACKEND", "bigquery")
	viper.SetDefault("WAREHOUSE_DSN", "")

	viper.SetDefault("EMAIL_USER", "")
	viper.SetDefault("EMAIL_PASS", "")
	viper.SetDefault("SMTP_SERVER", "")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("EMAIL_RECIPIENT", "")

	viper.SetDefault("SLACK_WEBHOOK_URL", "")

	viper.SetDefault("INGESTION_SYNC_CRON", "0 6 * * *") // Todos os dias às 6h (UTC)
	viper.SetDefault("INGESTION_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SENTRY_DSN", "")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("TABLES_CONFIG_FILE", "")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, fmt.Errorf("erro ao decodificar configuração: %w", err)
	}

	config.LinkedIn.Pivots = normalizePivots(config.LinkedIn.Pivots)

	config.Tables, err = LoadTables(config.App.TablesConfigFile)
	if err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica as chaves obrigatórias para executar uma ingestão
func (c *Config) Validate() error {
	var missing []string

	if c.LinkedIn.AccountID == "" {
		missing = append(missing, "LINKEDIN_ACCOUNT_ID")
	}
	if c.LinkedIn.ClientID == "" {
		missing = append(missing, "LINKEDIN_CLIENT_ID")
	}
	if c.LinkedIn.ClientSecret == "" {
		missing = append(missing, "LINKEDIN_CLIENT_SECRET")
	}
	if c.GCP.ProjectID == "" && (c.Secrets.Backend == "gcp" || c.Warehouse.Backend == "bigquery") {
		missing = append(missing, "GCP_PROJECT_ID")
	}
	if c.Secrets.Backend == "render" && (c.Render.APIKey == "" || c.Render.ServiceID == "") {
		missing = append(missing, "RENDER_API_KEY/RENDER_SERVICE_ID")
	}

	if len(missing) > 0 {
		return errors.New("configuração incompleta, variáveis ausentes: " + strings.Join(missing, ", "))
	}

	return nil
}

// ListenAddr retorna o endereço do servidor HTTP
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

func normalizePivots(pivots []string) []string {
	out := make([]string, 0, len(pivots))
	for _, p := range pivots {
		p = strings.ToUpper(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
