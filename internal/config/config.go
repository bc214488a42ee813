// Package config loads runtime configuration for the netmend binaries
// from the environment, with an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the server and CLI.
type Config struct {
	App      AppConfig
	Store    StoreConfig
	Database DatabaseConfig
}

// AppConfig covers the HTTP server and logging.
type AppConfig struct {
	ListenAddr     string
	LogLevel       string
	RequestTimeout time.Duration
}

// StoreConfig selects the persistence backend.
type StoreConfig struct {
	// Backend is one of "memory", "sqlite" or "postgres".
	Backend string
	// SQLitePath is the database file used by the sqlite backend.
	SQLitePath string
}

// DatabaseConfig configures the postgres backend.
type DatabaseConfig struct {
	Host           string
	Port           int
	Name           string
	User           string
	Password       string
	SSLMode        string
	MaxConnections int
}

// Load reads configuration from environment variables. A .env file in
// the working directory is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			ListenAddr:     getEnvWithDefault("NETMEND_ADDR", ":8080"),
			LogLevel:       getEnvWithDefault("NETMEND_LOG_LEVEL", "info"),
			RequestTimeout: getEnvDuration("NETMEND_REQUEST_TIMEOUT", 30*time.Second),
		},
		Store: StoreConfig{
			Backend:    getEnvWithDefault("NETMEND_STORE", "memory"),
			SQLitePath: getEnvWithDefault("NETMEND_SQLITE_PATH", "netmend.db"),
		},
		Database: DatabaseConfig{
			Host:           getEnvWithDefault("DB_HOST", "localhost"),
			Port:           getEnvInt("DB_PORT", 5432),
			Name:           getEnvWithDefault("DB_NAME", "netmend"),
			User:           getEnvWithDefault("DB_USER", "netmend"),
			Password:       os.Getenv("DB_PASSWORD"),
			SSLMode:        getEnvWithDefault("DB_SSLMODE", "disable"),
			MaxConnections: getEnvInt("DB_MAX_CONNECTIONS", 10),
		},
	}

	switch cfg.Store.Backend {
	case "memory", "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
	return cfg, nil
}

// DSN renders the postgres connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func getEnvWithDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
