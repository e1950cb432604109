package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Setenv("PGSQL_URL", "postgres://localhost/crm")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/crm", cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, time.Hour, cfg.NotificationCheckInterval)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, "permissive", cfg.StageTransitionPolicy)
	assert.False(t, cfg.IsProduction)
}

func TestLoadConfig_InvalidDurationFallsBack(t *testing.T) {
	viper.Reset()
	t.Setenv("NOTIFICATION_CHECK_INTERVAL", "soon")
	t.Setenv("JWT_EXPIRY_DURATION", "90m")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, time.Hour, cfg.NotificationCheckInterval)
	assert.Equal(t, 90*time.Minute, cfg.JWTExpiryDuration)
}

func TestLoadConfig_CORSOrigins(t *testing.T) {
	viper.Reset()
	t.Setenv("FRONTEND_BASE_URL", "https://crm.example.mn")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://crm.example.mn"}, cfg.CORSAllowedOrigins)

	viper.Reset()
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.mn, ,https://b.mn ")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.mn", "https://b.mn"}, cfg.CORSAllowedOrigins)
}
