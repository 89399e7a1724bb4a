package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "file", cfg.Storage.Driver)
	assert.Equal(t, "demo", cfg.Insights.Provider)
	assert.Equal(t, 500*time.Millisecond, cfg.Faults.LatencyMin)
	assert.Equal(t, 500*time.Millisecond, cfg.Faults.LatencyMax)
	assert.False(t, cfg.Export.LegacyCSV)
	assert.Equal(t, 1000, cfg.Sessions.MaxSessions)
	assert.Equal(t, 30*time.Minute, cfg.Sessions.IdleTTL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("FAULT_LATENCY_MIN", "0s")
	t.Setenv("FAULT_LATENCY_MAX", "10ms")
	t.Setenv("FAULT_FAILURE_RATE", "0.25")
	t.Setenv("EXPORT_LEGACY_CSV", "TRUE")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, 10*time.Millisecond, cfg.Faults.LatencyMax)
	assert.Equal(t, 0.25, cfg.Faults.FailureRate)
	assert.True(t, cfg.Export.LegacyCSV)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Frontend.AllowedOrigins)
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Setenv("INSIGHTS_PROVIDER", "oracle")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("INSIGHTS_PROVIDER", "demo")
	t.Setenv("FAULT_FAILURE_RATE", "1.5")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("FAULT_FAILURE_RATE", "0")
	t.Setenv("FAULT_LATENCY_MIN", "2s")
	t.Setenv("FAULT_LATENCY_MAX", "1s")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("FAULT_LATENCY_MIN", "0s")
	t.Setenv("SESSION_MAX", "-1")
	_, err = Load()
	assert.Error(t, err)
}
