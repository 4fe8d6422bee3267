package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csg33k/roster/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"HOST", "PORT", "ROSTER_PAGE_SIZE", "ROSTER_LOCALE", "SEED_FILE", "SEED_DB", "LOG_LEVEL", "LOG_OUTPUT", "METRICS_ENABLED", "SHUTDOWN_TIMEOUT_SECONDS"} {
		t.Setenv(k, "")
	}

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.App.Addr())
	assert.Equal(t, 10, cfg.Roster.PageSize)
	assert.Equal(t, "en", cfg.Roster.Locale)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "stdout", cfg.Logger.Output)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 10*time.Second, cfg.App.ShutdownTimeout())
	assert.Empty(t, cfg.Seed.File)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9090")
	t.Setenv("ROSTER_PAGE_SIZE", "20")
	t.Setenv("ROSTER_LOCALE", "fr")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("SEED_FILE", "people.yaml")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.App.Addr())
	assert.Equal(t, 20, cfg.Roster.PageSize)
	assert.Equal(t, "fr", cfg.Roster.Locale)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "people.yaml", cfg.Seed.File)
}

func TestLoad_MalformedIntFallsBack(t *testing.T) {
	t.Setenv("ROSTER_PAGE_SIZE", "lots")
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Roster.PageSize)
}

func TestLoad_RejectsNonPositivePageSize(t *testing.T) {
	t.Setenv("ROSTER_PAGE_SIZE", "-3")
	_, err := config.Load()
	assert.Error(t, err)
}
