package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetForTest(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestValidateEnv_MissingVersion(t *testing.T) {
	unsetForTest(t, EnvSchemaVersion)

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
}

func TestValidateEnv_VersionMismatch(t *testing.T) {
	t.Setenv(EnvSchemaVersion, "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnv_MissingRequired(t *testing.T) {
	t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)
	unsetForTest(t, EnvTiersPath)

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required environment variables")
	assert.Contains(t, err.Error(), EnvTiersPath)
}

func TestValidateEnvWithWarnings(t *testing.T) {
	t.Run("unreadable tier table and text logs in prod", func(t *testing.T) {
		t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)
		t.Setenv(EnvTiersPath, filepath.Join(t.TempDir(), "missing.json"))
		t.Setenv(EnvEnvironment, "prod")
		t.Setenv(EnvLogFormat, "text")

		warnings, err := ValidateEnvWithWarnings()
		require.NoError(t, err)
		require.Len(t, warnings, 2)
		assert.Contains(t, warnings[0], "TIERS_PATH")
		assert.Contains(t, warnings[1], "LOG_FORMAT")
	})

	t.Run("clean environment", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tiers.json")
		require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))
		t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)
		t.Setenv(EnvTiersPath, path)
		t.Setenv(EnvEnvironment, "dev")

		warnings, err := ValidateEnvWithWarnings()
		require.NoError(t, err)
		assert.Empty(t, warnings)
	})

	t.Run("propagates validation errors", func(t *testing.T) {
		unsetForTest(t, EnvSchemaVersion)

		warnings, err := ValidateEnvWithWarnings()
		assert.Error(t, err)
		assert.Nil(t, warnings)
	})
}
