// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
	GetMigrationsDir() string
	IsDatabaseEnabled() bool
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
	GetRateLimitRPS() float64
	GetRateLimitBurst() int
	IsMetricsEnabled() bool
}

// RedisConfig provides settings for the redis-backed search history.
type RedisConfig interface {
	GetRedisURL() string
	GetRedisTLSInsecure() bool
	IsRedisEnabled() bool
}

// SchedulerConfig provides settings for the asynq task queue.
type SchedulerConfig interface {
	RedisConfig
	GetAsynqQueueName() string
	GetAsynqConcurrency() int
}

// PredictorConfig provides settings for the remote ML price predictor.
type PredictorConfig interface {
	GetMLAPIURL() string
	GetMLAPITimeout() time.Duration
	IsRemotePredictorEnabled() bool
}

// DatasetConfig provides the optional market dataset override.
type DatasetConfig interface {
	GetDatasetPath() string
}

// HistoryConfig provides settings for the search history log.
type HistoryConfig interface {
	GetHistoryLimit() int
	GetPublicBaseURL() string
}

// LogConfig provides settings for log output.
type LogConfig interface {
	GetEnv() string
	GetLogFile() string
	GetLogLevel() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env              string
	HTTPAddr         string
	CORSAllowAll     bool
	CORSOrigins      []string
	CORSAllowCreds   bool
	RateLimitRPS     float64
	RateLimitBurst   int
	MetricsEnabled   bool
	DatabaseURL      string
	MigrationsDir    string
	RedisURL         string
	RedisTLSInsecure bool
	AsynqQueueName   string
	AsynqConcurrency int
	MLAPIURL         string
	MLAPITimeout     time.Duration
	DatasetPath      string
	HistoryLimit     int
	PublicBaseURL    string
	LogFile          string
	LogLevel         string
}

// =============================================================================
// Interface Implementations
// =============================================================================

// DatabaseConfig implementation
func (c *Config) GetDatabaseURL() string   { return c.DatabaseURL }
func (c *Config) GetMigrationsDir() string { return c.MigrationsDir }
func (c *Config) IsDatabaseEnabled() bool  { return c.DatabaseURL != "" }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }
func (c *Config) GetRateLimitRPS() float64 { return c.RateLimitRPS }
func (c *Config) GetRateLimitBurst() int   { return c.RateLimitBurst }
func (c *Config) IsMetricsEnabled() bool   { return c.MetricsEnabled }

// RedisConfig implementation
func (c *Config) GetRedisURL() string       { return c.RedisURL }
func (c *Config) GetRedisTLSInsecure() bool { return c.RedisTLSInsecure }
func (c *Config) IsRedisEnabled() bool      { return c.RedisURL != "" }
func (c *Config) GetAsynqQueueName() string { return c.AsynqQueueName }
func (c *Config) GetAsynqConcurrency() int  { return c.AsynqConcurrency }

// PredictorConfig implementation
func (c *Config) GetMLAPIURL() string            { return c.MLAPIURL }
func (c *Config) GetMLAPITimeout() time.Duration { return c.MLAPITimeout }
func (c *Config) IsRemotePredictorEnabled() bool { return c.MLAPIURL != "" }

// DatasetConfig implementation
func (c *Config) GetDatasetPath() string { return c.DatasetPath }

// HistoryConfig implementation
func (c *Config) GetHistoryLimit() int     { return c.HistoryLimit }
func (c *Config) GetPublicBaseURL() string { return c.PublicBaseURL }

// LogConfig implementation
func (c *Config) GetEnv() string     { return c.Env }
func (c *Config) GetLogFile() string  { return c.LogFile }
func (c *Config) GetLogLevel() string { return c.LogLevel }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:              getEnv("APP_ENV", "development"),
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:     corsAllowAll,
		CORSOrigins:      corsOrigins,
		CORSAllowCreds:   strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "false"), "true"),
		RateLimitRPS:     mustFloat(getEnv("RATE_LIMIT_RPS", "10")),
		RateLimitBurst:   mustInt(getEnv("RATE_LIMIT_BURST", "20")),
		MetricsEnabled:   strings.EqualFold(getEnv("METRICS_ENABLED", "true"), "true"),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		MigrationsDir:    getEnv("MIGRATIONS_DIR", "migrations"),
		RedisURL:         getEnv("REDIS_URL", ""),
		RedisTLSInsecure: strings.EqualFold(getEnv("REDIS_TLS_INSECURE", "false"), "true"),
		AsynqQueueName:   getEnv("ASYNQ_QUEUE", "default"),
		AsynqConcurrency: mustInt(getEnv("ASYNQ_CONCURRENCY", "4")),
		MLAPIURL:         strings.TrimRight(getEnv("ML_API_URL", ""), "/"),
		MLAPITimeout:     mustDuration(getEnv("ML_API_TIMEOUT", "10s")),
		DatasetPath:      getEnv("DATASET_PATH", ""),
		HistoryLimit:     mustInt(getEnv("HISTORY_LIMIT", "10")),
		PublicBaseURL:    strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
		LogFile:          getEnv("LOG_FILE", ""),
		LogLevel:         getEnv("LOG_LEVEL", ""),
	}

	if cfg.HistoryLimit <= 0 {
		return nil, fmt.Errorf("HISTORY_LIMIT must be positive")
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	if cfg.MLAPITimeout <= 0 {
		cfg.MLAPITimeout = 10 * time.Second
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return result
}

func mustFloat(value string) float64 {
	result, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
