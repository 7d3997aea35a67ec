package config_test

import (
	"testing"
	"time"

	"go-dinas/internal/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("DINAS_INT", "42")
	t.Setenv("DINAS_BAD_INT", "x")
	t.Setenv("DINAS_BOOL", "false")
	t.Setenv("DINAS_DUR", "5m")

	assert.Equal(t, 42, config.GetEnvAsInt("DINAS_INT", 1))
	assert.Equal(t, 1, config.GetEnvAsInt("DINAS_BAD_INT", 1))
	assert.False(t, config.GetEnvAsBool("DINAS_BOOL", true))
	assert.True(t, config.GetEnvAsBool("DINAS_MISSING_BOOL", true))
	assert.Equal(t, 5*time.Minute, config.GetEnvAsDuration("DINAS_DUR", time.Second))
	assert.Equal(t, "fallback", config.GetEnv("DINAS_MISSING", "fallback"))
}

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("PORT", "9090")
	t.Setenv("SNAPSHOT_INTERVAL", "1m")
	t.Setenv("APP_ENV", "production")

	cfg := config.Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.False(t, cfg.DB.Enabled())
	assert.Equal(t, time.Minute, cfg.SnapshotInterval)
	assert.True(t, cfg.IsProduction())
}

func TestNewLogger(t *testing.T) {
	logger, err := config.NewLogger(config.Config{AppEnv: "production"})
	assert.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = config.NewLogger(config.Config{AppEnv: "development"})
	assert.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}
