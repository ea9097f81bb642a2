package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Session  SessionConfig
	Admin    AdminConfig
	Quotes   QuotesConfig
	App      AppConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SessionConfig struct {
	Secret       string
	Duration     time.Duration
	IdleDuration time.Duration
}

type AdminConfig struct {
	UserName string
	Password string
}

type QuotesConfig struct {
	BaseURL string
}

type AppConfig struct {
	Environment   string
	LogLevel      string
	Version       string
	CatalogDriver string // "static" or "postgres"
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "solutions"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Session: SessionConfig{
			Secret:       getEnv("SESSION_SECRET", ""),
			Duration:     getEnvAsDuration("SESSION_DURATION", 24*time.Hour),
			IdleDuration: getEnvAsDuration("SESSION_IDLE_DURATION", 20*time.Minute),
		},
		Admin: AdminConfig{
			UserName: getEnv("ADMIN_USER", ""),
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
		Quotes: QuotesConfig{
			BaseURL: getEnv("QUOTE_API_URL", "https://dummyjson.com"),
		},
		App: AppConfig{
			Environment:   getEnv("APP_ENV", "development"),
			LogLevel:      getEnv("LOG_LEVEL", "info"),
			Version:       getEnv("APP_VERSION", "1.0.0"),
			CatalogDriver: getEnv("CATALOG_DRIVER", "static"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.App.CatalogDriver != "static" && c.App.CatalogDriver != "postgres" {
		return fmt.Errorf("CATALOG_DRIVER must be \"static\" or \"postgres\", got %q", c.App.CatalogDriver)
	}

	if c.App.CatalogDriver == "postgres" && c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}

	if c.Session.Secret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}

	if c.Session.IdleDuration > c.Session.Duration {
		return fmt.Errorf("SESSION_IDLE_DURATION must not exceed SESSION_DURATION")
	}

	if c.Admin.UserName == "" || c.Admin.Password == "" {
		return fmt.Errorf("ADMIN_USER and ADMIN_PASSWORD are required")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}
