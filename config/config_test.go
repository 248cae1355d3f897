package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/farhanadit/go-user-api/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, "go-user-api", cfg.AppName)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "3306", cfg.DBPort)
	assert.Equal(t, 10, cfg.DBMaxOpenConns)
	assert.Equal(t, time.Hour, cfg.DBConnMaxLifetime)
	assert.Equal(t, "db/migrations", cfg.MigrationsDir)
	assert.True(t, cfg.DebugMetricsEnabled)
	assert.False(t, cfg.HTTPLogEnabled)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_NAME", "users-svc")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("DB_CONN_MAX_LIFETIME", "30m")
	t.Setenv("DEBUG_METRICS_ENABLED", "false")

	cfg := config.Load()

	assert.Equal(t, "users-svc", cfg.AppName)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, 25, cfg.DBMaxOpenConns)
	assert.Equal(t, 30*time.Minute, cfg.DBConnMaxLifetime)
	assert.False(t, cfg.DebugMetricsEnabled)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "lots")
	t.Setenv("DB_CONN_MAX_LIFETIME", "soon")
	t.Setenv("DEBUG_METRICS_ENABLED", "yes please")

	cfg := config.Load()

	assert.Equal(t, 10, cfg.DBMaxOpenConns)
	assert.Equal(t, time.Hour, cfg.DBConnMaxLifetime)
	assert.True(t, cfg.DebugMetricsEnabled)
}

func TestMySQLDSN(t *testing.T) {
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_NAME", "users")

	cfg := config.Load()
	assert.Equal(t, "app:secret@tcp(db.internal:3307)/users?charset=utf8mb4&parseTime=true", cfg.MySQLDSN())

	t.Setenv("DB_PARAMS", "tls=skip-verify")
	cfg = config.Load()
	assert.Equal(t, "app:secret@tcp(db.internal:3307)/users?charset=utf8mb4&parseTime=true&tls=skip-verify", cfg.MySQLDSN())
}

func TestCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, https://b.example.com ,")

	cfg := config.Load()
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins())
}
