package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, "disable", cfg.Postgres.SSLMode)
	assert.Equal(t, 10*time.Minute, cfg.BookCache.TTL)
	assert.Equal(t, 0.0, cfg.Bookstore.SearchRadiusMeters())
	assert.Equal(t, time.Hour, cfg.JWT.AccessTTL())
	assert.Equal(t, []string{"*"}, cfg.App.AllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/test.db")
	t.Setenv("BOOK_SEARCH_CACHE_TTL", "30s")
	t.Setenv("BOOKSTORE_SEARCH_RADIUS_KM", "2.5")
	t.Setenv("KAKAO_MAX_RETRIES", "4")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/test.db", cfg.Database.SQLitePath)
	assert.Equal(t, 30*time.Second, cfg.BookCache.TTL)
	assert.Equal(t, 2500.0, cfg.Bookstore.SearchRadiusMeters())
	assert.Equal(t, 4, cfg.Kakao.MaxRetries)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.App.AllowedOrigins)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DRIVER")
}

func TestLoad_MalformedDatabaseValue(t *testing.T) {
	t.Setenv("DB_PORT", "five")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PORT")
}

func TestValidate_Production(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("KAKAO_API_KEY", "key")

	_, err := Load()
	require.Error(t, err, "default JWT secret must be rejected")
	assert.Contains(t, err.Error(), "JWT_SECRET")

	t.Setenv("JWT_SECRET", "a-real-secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestValidate_ProductionRequiresKakaoKey(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("JWT_SECRET", "a-real-secret")
	t.Setenv("KAKAO_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KAKAO_API_KEY")
}
