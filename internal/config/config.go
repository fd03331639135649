package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"bszip-backend/internal/infrastructure/database"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Postgres  *database.DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Kakao     KakaoConfig
	BookCache BookCacheConfig
	Bookstore BookstoreConfig
}

type AppConfig struct {
	Name           string
	Environment    string // development, staging, production
	Port           string
	Version        string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Driver     string // postgres, sqlite
	SQLitePath string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret            string
	AccessTokenExpiry int // minutes
}

func (j JWTConfig) AccessTTL() time.Duration {
	return time.Duration(j.AccessTokenExpiry) * time.Minute
}

// KakaoConfig - Kakao Daum book search API
type KakaoConfig struct {
	APIKey     string
	BaseURL    string
	PageSize   int
	RPS        int
	MaxRetries int
	Timeout    time.Duration
}

type BookCacheConfig struct {
	TTL time.Duration // 0 disables caching
}

type BookstoreConfig struct {
	SearchRadiusKm float64 // 0 = unlimited
}

func (b BookstoreConfig) SearchRadiusMeters() float64 {
	return b.SearchRadiusKm * 1000
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	postgres, err := LoadDatabaseConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Name:           getEnv("APP_NAME", "Bszip API"),
			Environment:    getEnv("APP_ENV", "development"),
			Port:           getEnv("APP_PORT", "8080"),
			Version:        getEnv("APP_VERSION", "1.0.0"),
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Database: DatabaseConfig{
			Driver:     strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
			SQLitePath: getEnv("SQLITE_PATH", "bszip.db"),
		},
		Postgres: postgres,
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:            getEnv("JWT_SECRET", defaultJWTSecret),
			AccessTokenExpiry: getEnvInt("JWT_ACCESS_EXPIRY", 60), // minutes
		},
		Kakao: KakaoConfig{
			APIKey:     getEnv("KAKAO_API_KEY", ""),
			BaseURL:    getEnv("KAKAO_BASE_URL", "https://dapi.kakao.com"),
			PageSize:   getEnvInt("KAKAO_PAGE_SIZE", 10),
			RPS:        getEnvInt("KAKAO_RPS", 10),
			MaxRetries: getEnvInt("KAKAO_MAX_RETRIES", 2),
			Timeout:    getEnvDuration("KAKAO_TIMEOUT", 5*time.Second),
		},
		BookCache: BookCacheConfig{
			TTL: getEnvDuration("BOOK_SEARCH_CACHE_TTL", 10*time.Minute),
		},
		Bookstore: BookstoreConfig{
			SearchRadiusKm: getEnvFloat("BOOKSTORE_SEARCH_RADIUS_KM", 0),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, c.Database.Driver)
	}
	if c.Bookstore.SearchRadiusKm < 0 {
		return fmt.Errorf("BOOKSTORE_SEARCH_RADIUS_KM must not be negative")
	}
	if c.JWT.AccessTokenExpiry <= 0 {
		return fmt.Errorf("JWT_ACCESS_EXPIRY must be positive")
	}

	// Production environment phải có secrets
	if c.IsProduction() {
		if c.JWT.Secret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Database.Driver == DriverPostgres && c.Postgres.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
		if c.Kakao.APIKey == "" {
			return fmt.Errorf("KAKAO_API_KEY must be set in production")
		}
	} else if c.Kakao.APIKey == "" {
		log.Warn().Msg("KAKAO_API_KEY not set - book search will fail upstream")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvList splits a comma separated value
func getEnvList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
