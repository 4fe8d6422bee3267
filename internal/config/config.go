package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the roster server.
type Config struct {
	App     AppConfig
	Roster  RosterConfig
	Seed    SeedConfig
	Logger  LoggerConfig
	Metrics MetricsConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Host                   string
	Port                   string
	ShutdownTimeoutSeconds int
}

// RosterConfig holds view defaults.
type RosterConfig struct {
	PageSize int
	Locale   string // BCP 47 tag used for sorting
}

// SeedConfig selects where the starting records come from. When both are
// empty the built-in demo roster is used.
type SeedConfig struct {
	File string // YAML or JSON list of employees
	DB   string // SQLite database with an employees table
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level  string
	Output string // zap output path, stdout by default
}

// MetricsConfig toggles the /metrics endpoint.
type MetricsConfig struct {
	Enabled bool
}

// Load reads configuration from .env (when present) and environment variables,
// applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Host:                   getEnv("HOST", ""),
			Port:                   getEnv("PORT", "8080"),
			ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 10),
		},
		Roster: RosterConfig{
			PageSize: getEnvAsInt("ROSTER_PAGE_SIZE", 10),
			Locale:   getEnv("ROSTER_LOCALE", "en"),
		},
		Seed: SeedConfig{
			File: os.Getenv("SEED_FILE"),
			DB:   os.Getenv("SEED_DB"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Output: getEnv("LOG_OUTPUT", "stdout"),
		},
		Metrics: MetricsConfig{
			Enabled: getEnvAsBool("METRICS_ENABLED", true),
		},
	}

	if cfg.Roster.PageSize <= 0 {
		return nil, fmt.Errorf("invalid ROSTER_PAGE_SIZE %d: must be positive", cfg.Roster.PageSize)
	}
	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// ShutdownTimeout returns how long graceful shutdown may take.
func (a AppConfig) ShutdownTimeout() time.Duration {
	if a.ShutdownTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(a.ShutdownTimeoutSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
