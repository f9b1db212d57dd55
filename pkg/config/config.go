package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Log      LogConfig
	Catalog  CatalogConfig
}

type AppConfig struct {
	Name string
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig for read-side caches (options lists, category tree).
// Empty URL disables caching.
type RedisConfig struct {
	URL      string // redis://localhost:6379
	Password string
	DB       int
}

// NATSConfig for catalog event publishing. Empty URL disables events.
type NATSConfig struct {
	URL string // nats://localhost:4222
}

type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, file, both
	FilePath   string // logs/app.log
	MaxSize    int    // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

type CatalogConfig struct {
	PageSize    int    // default page size for product listings
	MaxPageSize int    // hard cap a caller can request
	ReindexCron string // schedule for the taxonomy reindex job
	CacheTTL    int    // seconds, for redis-backed lookups
}

func LoadConfig() (*Config, error) {
	// Missing .env is fine, plain environment variables still apply.
	_ = godotenv.Load()

	logMaxSize, _ := strconv.Atoi(getEnv("LOG_MAX_SIZE", "100"))
	logMaxBackups, _ := strconv.Atoi(getEnv("LOG_MAX_BACKUPS", "5"))
	logMaxAge, _ := strconv.Atoi(getEnv("LOG_MAX_AGE", "30"))
	logCompress := getEnv("LOG_COMPRESS", "true") == "true"

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	pageSize, _ := strconv.Atoi(getEnv("CATALOG_PAGE_SIZE", "12"))
	maxPageSize, _ := strconv.Atoi(getEnv("CATALOG_MAX_PAGE_SIZE", "100"))
	cacheTTL, _ := strconv.Atoi(getEnv("CATALOG_CACHE_TTL", "300"))

	config := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "Catalog API"),
			Port: getEnv("APP_PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "catalog"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		NATS: NATSConfig{
			URL: getEnv("NATS_URL", ""),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "both"),
			FilePath:   getEnv("LOG_FILE", "logs/app.log"),
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAge,
			Compress:   logCompress,
		},
		Catalog: CatalogConfig{
			PageSize:    pageSize,
			MaxPageSize: maxPageSize,
			ReindexCron: getEnv("CATALOG_REINDEX_CRON", "0 4 * * *"),
			CacheTTL:    cacheTTL,
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
