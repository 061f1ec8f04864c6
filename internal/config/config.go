package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Warehouse Warehouse `mapstructure:",squash"`
	Auth      Auth      `mapstructure:",squash"`
	Reporting Reporting `mapstructure:",squash"`
	RatesSync RatesSync `mapstructure:",squash"`
	SecretKey string    `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Warehouse configura o acesso ao BigQuery, onde vivem as views
// materializadas de vendas e marketing de cada cliente
type Warehouse struct {
	ProjectID       string `mapstructure:"warehouse_project_id"`
	Location        string `mapstructure:"warehouse_location"`
	CredentialsFile string `mapstructure:"warehouse_credentials_file"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Reporting struct {
	// LegacyStoreFallback mantém o comportamento antigo de tratar um
	// website_id desconhecido como se fosse um store_id literal. Mascara
	// erros de configuração; desligado por padrão.
	LegacyStoreFallback bool `mapstructure:"reporting_legacy_store_fallback"`
	QueryTimeoutSeconds int  `mapstructure:"reporting_query_timeout_seconds"`
}

type RatesSync struct {
	CronSchedule string `mapstructure:"rates_sync_cron"`
	Enabled      bool   `mapstructure:"rates_sync_enabled"`
	BaseURL      string `mapstructure:"rates_sync_base_url"`
	APIKey       string `mapstructure:"rates_sync_api_key"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("WAREHOUSE_PROJECT_ID", "your_project_id")
	viper.SetDefault("WAREHOUSE_LOCATION", "US")
	viper.SetDefault("WAREHOUSE_CREDENTIALS_FILE", "")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("REPORTING_LEGACY_STORE_FALLBACK", false)
	viper.SetDefault("REPORTING_QUERY_TIMEOUT_SECONDS", 30)

	// Defaults da sincronização de taxas de câmbio
	viper.SetDefault("RATES_SYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("RATES_SYNC_ENABLED", false)
	viper.SetDefault("RATES_SYNC_BASE_URL", "https://api.exchangeratesapi.io/v1")
	viper.SetDefault("RATES_SYNC_API_KEY", "")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
