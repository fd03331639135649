package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"bszip-backend/internal/infrastructure/database"
)

// LoadDatabaseConfig đọc Postgres config từ env.
// Unlike getEnvInt, a malformed value here is an error rather than a silent default.
func LoadDatabaseConfig() (*database.DBConfig, error) {
	p := &strictParser{}

	cfg := &database.DBConfig{
		Host:              getEnv("DB_HOST", "localhost"),
		Port:              p.int("DB_PORT", 5432),
		Username:          getEnv("DB_USER", "bszip"),
		Password:          getEnv("DB_PASSWORD", ""),
		DBName:            getEnv("DB_NAME", "bszip"),
		SSLMode:           getEnv("DB_SSLMODE", "disable"),
		MaxConns:          int32(p.int("DB_MAX_CONNECTIONS", 25)),
		MinConns:          int32(p.int("DB_MIN_CONNECTIONS", 5)),
		MaxConnLifetime:   p.duration("DB_MAX_CONN_LIFETIME", 5*time.Minute),
		MaxConnIdleTime:   p.duration("DB_MAX_CONN_IDLE_TIME", time.Minute),
		HealthCheckPeriod: p.duration("DB_HEALTH_CHECK_PERIOD", time.Minute),
		MaxRetries:        p.int("DB_MAX_RETRIES", 5),
		RetryDelay:        p.duration("DB_RETRY_DELAY", time.Second),
		ConnectTimeout:    p.duration("DB_CONNECT_TIMEOUT", 10*time.Second),
	}
	if p.err != nil {
		return nil, p.err
	}

	if cfg.MinConns > cfg.MaxConns {
		return nil, fmt.Errorf("DB_MIN_CONNECTIONS (%d) exceeds DB_MAX_CONNECTIONS (%d)", cfg.MinConns, cfg.MaxConns)
	}
	return cfg, nil
}

// strictParser keeps the first parse error.
type strictParser struct {
	err error
}

func (p *strictParser) int(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" || p.err != nil {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.err = fmt.Errorf("invalid %s: %w", key, err)
		return def
	}
	return v
}

func (p *strictParser) duration(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" || p.err != nil {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		p.err = fmt.Errorf("invalid %s: %w", key, err)
		return def
	}
	return v
}
