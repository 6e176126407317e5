package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("DATA_DIR", "/srv/maint")
	t.Setenv("NOTIFY_WEBHOOK_URL", "")

	assert.Equal(t, "/srv/maint", getEnvOrDefault("DATA_DIR", "data"))
	assert.Equal(t, "none", getEnvOrDefault("NOTIFY_WEBHOOK_URL", "none"))
	assert.Equal(t, "7", getEnvOrDefault("NOTIFY_HORIZON_DAYS_UNSET", "7"))
}

func TestGetAsString(t *testing.T) {
	t.Setenv("JWT_SIGNING_KEY", "")

	assert.Equal(t, "", GetAsString("JWT_SIGNING_KEY", "fallback"))
	assert.Equal(t, "fallback", GetAsString("MAINTRACKER_MISSING_KEY", "fallback"))
}

func TestParseFlagsDefaults(t *testing.T) {
	t.Setenv("RUN_ADDRESS", ":9090")
	t.Setenv("DATABASE_URI", "")

	o := NewOptions()
	o.ParseFlags()

	assert.Equal(t, ":9090", o.RunAddr())
	assert.Equal(t, "", o.DataBaseDSN())
	assert.Equal(t, "data", o.DataDir())
	assert.Equal(t, "7", o.NotifyHorizonDays())
	assert.Equal(t, "5", o.Concurrency())
}
