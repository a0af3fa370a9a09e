package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, "hypernum", cfg.ServiceName)
		assert.Equal(t, "dev", cfg.Version)
		assert.Equal(t, "configs/tiers.json", cfg.TiersPath)
		assert.Empty(t, cfg.APIKey)
		assert.Empty(t, cfg.TrustedProxies)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv("PORT", "3000")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("SERVICE_NAME", "calc")
		t.Setenv("VERSION", "1.2.3")
		t.Setenv("TIERS_PATH", "/etc/hypernum/tiers.json")
		t.Setenv("API_KEY", "custom-api-key")
		t.Setenv("TRUSTED_PROXIES", "10.0.0.1, ,10.0.0.2")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "production", cfg.Environment)
		assert.Equal(t, "calc", cfg.ServiceName)
		assert.Equal(t, "1.2.3", cfg.Version)
		assert.Equal(t, "/etc/hypernum/tiers.json", cfg.TiersPath)
		assert.Equal(t, "custom-api-key", cfg.APIKey)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
	})

	t.Run("returns error for invalid PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "not-a-number")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid PORT value")
	})

	t.Run("empty values are kept as set", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("LOG_LEVEL", "")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Empty(t, cfg.LogLevel)
	})
}

func TestConfig_TowerThreshold(t *testing.T) {
	cfg := &Config{FormatTowerThreshold: DefaultTowerThreshold}
	threshold := cfg.TowerThreshold()

	assert.Equal(t, 5, threshold.Layer())
	assert.Equal(t, 1000.0, threshold.Mag())
}

// clearEnvVars unsets every variable Load reads and restores them after the test
func clearEnvVars(t *testing.T) {
	t.Helper()

	envVars := []string{
		EnvPort, EnvLogLevel, EnvLogFormat, EnvEnvironment, EnvServiceName, EnvVersion,
		EnvTiersPath, EnvFormatPrecision, EnvFormatPlacesUnder1000, EnvFormatTowerThreshold,
		EnvPluralCacheSize, EnvShutdownTimeout, EnvAPIKey, EnvTrustedProxies,
	}

	for _, key := range envVars {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
