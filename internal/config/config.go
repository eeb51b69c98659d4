// Package config reads runtime configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/haakonrs/kampplan/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	HTTPAddr           string
	DBPath             string
	AutoMigrate        bool
	SessionToken       string
	OwnerUserID        string
	CacheEnabled       bool
	CacheTTL           time.Duration
	CORSAllowedOrigins []string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	ExportWorkers      int
	LogLevel           logging.Level
}

// DemoMode reports whether the service runs on in-memory storage with
// seeded data, which happens when no database path is configured.
func (c Config) DemoMode() bool {
	return strings.TrimSpace(c.DBPath) == ""
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}

	cacheTTL, err := getEnvAsDuration("CACHE_TTL", 5*time.Minute)
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}

	autoMigrate, err := strconv.ParseBool(getEnv("AUTO_MIGRATE", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse AUTO_MIGRATE: %w", err)
	}

	readTimeout, err := getEnvAsDuration("HTTP_READ_TIMEOUT", 15*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := getEnvAsDuration("HTTP_WRITE_TIMEOUT", 30*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_WRITE_TIMEOUT: %w", err)
	}

	exportWorkers, err := getEnvAsInt("EXPORT_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse EXPORT_WORKERS: %w", err)
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("SERVICE_NAME", "kampplan"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		DBPath:             strings.TrimSpace(getEnv("DB_PATH", "")),
		AutoMigrate:        autoMigrate,
		SessionToken:       strings.TrimSpace(getEnv("SESSION_TOKEN", "")),
		OwnerUserID:        getEnv("OWNER_USER_ID", "owner"),
		CacheEnabled:       cacheEnabled,
		CacheTTL:           cacheTTL,
		CORSAllowedOrigins: splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		ExportWorkers:      exportWorkers,
		LogLevel:           parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}

	if cfg.AppEnv == EnvProd && cfg.SessionToken == "" {
		return Config{}, fmt.Errorf("SESSION_TOKEN is required when APP_ENV=%s", EnvProd)
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := time.ParseDuration(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitAndTrim(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}
