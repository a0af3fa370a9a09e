package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/osse101/hypernum/internal/logger"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists all environment variables that must be set
var RequiredEnvVars = []string{
	EnvSchemaVersion,
	EnvTiersPath,
}

// ValidateEnv checks that all required environment variables are set
// and that the schema version matches expectations
func ValidateEnv() error {
	schemaVersion := os.Getenv(EnvSchemaVersion)
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for settings that work but are probably unintended
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if _, err := os.Stat(os.Getenv(EnvTiersPath)); err != nil {
		warnings = append(warnings, fmt.Sprintf("TIERS_PATH %q is not readable - tier endpoints will be disabled", os.Getenv(EnvTiersPath)))
	}

	if os.Getenv(EnvEnvironment) == logger.EnvironmentProduction && os.Getenv(EnvLogFormat) != logger.LogFormatJSON {
		warnings = append(warnings, "LOG_FORMAT should be json in production")
	}

	return warnings, nil
}
