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
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Cache     Cache     `mapstructure:",squash"`
	Upstream  Upstream  `mapstructure:",squash"`
	Dashboard Dashboard `mapstructure:",squash"`
	Warmup    Warmup    `mapstructure:",squash"`
}

type App struct {
	LogLevel       string   `mapstructure:"log_level"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
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
	SSLMode  string `mapstructure:"database_sslmode"`
}

// Cache configura o backend de cache do dashboard (redis, bolt ou none)
type Cache struct {
	Driver        string        `mapstructure:"cache_driver"`
	TTL           time.Duration `mapstructure:"cache_ttl"`
	Timeout       time.Duration `mapstructure:"cache_timeout"`
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	BoltPath      string        `mapstructure:"cache_bolt_path"`
}

// Upstream configura a fonte da consulta de agregação
type Upstream struct {
	Source       string        `mapstructure:"data_source"`
	Timeout      time.Duration `mapstructure:"upstream_timeout"`
	RateLimit    float64       `mapstructure:"upstream_rate_limit"`
	RateBurst    int           `mapstructure:"upstream_rate_burst"`
	WorkbookPath string        `mapstructure:"workbook_path"`
}

type Dashboard struct {
	DomesticCountry         string `mapstructure:"domestic_country"`
	RegionalFallbackEnabled bool   `mapstructure:"regional_fallback_enabled"`
	ForecastHorizon         int    `mapstructure:"forecast_horizon"`
}

type Warmup struct {
	CronSchedule string   `mapstructure:"warmup_cron"`
	Enabled      bool     `mapstructure:"warmup_enabled"`
	DatasetSizes []string `mapstructure:"warmup_dataset_sizes"`
}

const (
	SourcePostgres = "postgres"
	SourceWorkbook = "workbook"

	CacheDriverRedis = "redis"
	CacheDriverBolt  = "bolt"
	CacheDriverNone  = "none"
)

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/retail")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSLMODE", "disable")

	viper.SetDefault("CACHE_DRIVER", CacheDriverBolt)
	viper.SetDefault("CACHE_TTL", "300s") // resultado do dashboard expira em 5 minutos
	viper.SetDefault("CACHE_TIMEOUT", "2s")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("CACHE_BOLT_PATH", filepath.Join(os.TempDir(), "retail-dashboard", "cache.db"))

	viper.SetDefault("DATA_SOURCE", SourcePostgres)
	viper.SetDefault("UPSTREAM_TIMEOUT", "15s")
	viper.SetDefault("UPSTREAM_RATE_LIMIT", 10) // chamadas por segundo
	viper.SetDefault("UPSTREAM_RATE_BURST", 5)
	viper.SetDefault("WORKBOOK_PATH", "dataset/Online Retail.xlsx")

	viper.SetDefault("DOMESTIC_COUNTRY", "United Kingdom")
	viper.SetDefault("REGIONAL_FALLBACK_ENABLED", true)
	viper.SetDefault("FORECAST_HORIZON", 3)

	viper.SetDefault("WARMUP_CRON", "*/5 * * * *") // a cada 5 minutos, casando com o TTL
	viper.SetDefault("WARMUP_ENABLED", false)
	viper.SetDefault("WARMUP_DATASET_SIZES", "medium")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("viper não conseguiu ler o .env, usando só variáveis de ambiente: ", err)
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
		"%s://%s:%s@%s?sslmode=%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
		config.Database.SSLMode,
	)

	return config, nil
}

// loadEnvFile procura um .env no diretório atual e nos diretórios acima
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("não foi possível obter o diretório atual: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env carregado de: ", location)
			return
		}
	}

	logrus.Debug("nenhum .env encontrado, usando variáveis de ambiente")
}
