package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	Migrations         Migrations         `mapstructure:",squash"`
	Backend            Backend            `mapstructure:",squash"`
	Auth               Auth               `mapstructure:",squash"`
	Dashboard          Dashboard          `mapstructure:",squash"`
	ProductRankingSync ProductRankingSync `mapstructure:",squash"`
	MonthlyRevenueSync MonthlyRevenueSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Locale   string `mapstructure:"app_locale"`
	Timezone string `mapstructure:"app_timezone"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Migrations struct {
	Enabled bool `mapstructure:"migrations_enabled"`
}

// Backend é a API de tabelas hospedada onde ficam vendas, serviços, faturas e produtos
type Backend struct {
	URL               string        `mapstructure:"backend_url"`
	APIKey            string        `mapstructure:"backend_api_key"`
	Timeout           time.Duration `mapstructure:"backend_timeout"`
	RequestsPerSecond float64       `mapstructure:"backend_requests_per_second"`
	Burst             int           `mapstructure:"backend_burst"`
	PageLimit         int           `mapstructure:"backend_page_limit"`
}

type Auth struct {
	JWTSecret string `mapstructure:"auth_jwt_secret"`
	Issuer    string `mapstructure:"auth_issuer"`
}

type Dashboard struct {
	TopLimit            int `mapstructure:"dashboard_top_limit"`
	MonthlySeriesMonths int `mapstructure:"dashboard_monthly_series_months"`
	GrowthWindowDays    int `mapstructure:"dashboard_growth_window_days"`
}

type ProductRankingSync struct {
	CronSchedule string `mapstructure:"product_ranking_sync_cron"`
	Enabled      bool   `mapstructure:"product_ranking_sync_enabled"`
	Limit        int    `mapstructure:"product_ranking_sync_limit"`
}

type MonthlyRevenueSync struct {
	CronSchedule  string `mapstructure:"monthly_revenue_sync_cron"`
	Enabled       bool   `mapstructure:"monthly_revenue_sync_enabled"`
	MonthLookBack int    `mapstructure:"monthly_revenue_sync_month_lookback"`
}

// Location devolve o fuso usado para interpretar datas sem fuso e montar as janelas
func (a App) Location() *time.Location {
	if a.Timezone == "" {
		return time.Local
	}

	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		logrus.Warnf("Fuso horário inválido: %s, usando o fuso local", a.Timezone)
		return time.Local
	}

	return loc
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("MIGRATIONS_ENABLED", true)

	viper.SetDefault("BACKEND_URL", "http://localhost:54321")
	viper.SetDefault("BACKEND_API_KEY", "") // ONLY LOCAL
	viper.SetDefault("BACKEND_TIMEOUT", "30s")
	viper.SetDefault("BACKEND_REQUESTS_PER_SECOND", 10)
	viper.SetDefault("BACKEND_BURST", 5)
	viper.SetDefault("BACKEND_PAGE_LIMIT", 1000)

	viper.SetDefault("AUTH_JWT_SECRET", "")
	viper.SetDefault("AUTH_ISSUER", "")

	viper.SetDefault("DASHBOARD_TOP_LIMIT", 5)
	viper.SetDefault("DASHBOARD_MONTHLY_SERIES_MONTHS", 6)
	viper.SetDefault("DASHBOARD_GROWTH_WINDOW_DAYS", 30)

	viper.SetDefault("PRODUCT_RANKING_SYNC_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("PRODUCT_RANKING_SYNC_ENABLED", false)
	viper.SetDefault("PRODUCT_RANKING_SYNC_LIMIT", 20)

	viper.SetDefault("MONTHLY_REVENUE_SYNC_CRON", "0 5 1 * *") // No primeiro dia de cada mês às 5h da manhã
	viper.SetDefault("MONTHLY_REVENUE_SYNC_ENABLED", false)
	viper.SetDefault("MONTHLY_REVENUE_SYNC_MONTH_LOOKBACK", 1) // 1 mês para buscar dados

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_LOCALE", "es-MX")
	viper.SetDefault("APP_TIMEZONE", "America/Mexico_City")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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

	if config.Backend.URL == "" {
		return nil, fmt.Errorf("BACKEND_URL não configurada")
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
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
