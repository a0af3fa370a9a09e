package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/hypernum/internal/bignum"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	// TiersPath is the growth tier table loaded at startup
	TiersPath string

	// Formatter defaults for requests that leave them out
	FormatPrecision       int
	FormatPlacesUnder1000 int
	FormatTowerThreshold  string
	PluralCacheSize       int

	// APIKey guards the endpoints that change tier state. Empty leaves them open.
	APIKey         string
	TrustedProxies []string

	ShutdownTimeout time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:              getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:             getEnv(EnvLogFormat, DefaultLogFormat),
		Environment:           getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:           getEnv(EnvServiceName, DefaultServiceName),
		Version:               getEnv(EnvVersion, DefaultVersion),
		TiersPath:             getEnv(EnvTiersPath, DefaultTiersPath),
		FormatPrecision:       getEnvAsInt(EnvFormatPrecision, DefaultFormatPrecision),
		FormatPlacesUnder1000: getEnvAsInt(EnvFormatPlacesUnder1000, DefaultPlacesUnder1000),
		FormatTowerThreshold:  getEnv(EnvFormatTowerThreshold, DefaultTowerThreshold),
		PluralCacheSize:       getEnvAsInt(EnvPluralCacheSize, DefaultPluralCacheSize),
		APIKey:                getEnv(EnvAPIKey, ""),
		TrustedProxies:        getEnvAsList(EnvTrustedProxies),
		ShutdownTimeout:       getEnvAsDuration(EnvShutdownTimeout, DefaultShutdownTimeout),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.FormatPrecision < 0 || c.FormatPrecision > MaxFormatPrecision {
		return fmt.Errorf("%s must be between 0 and %d, got %d", EnvFormatPrecision, MaxFormatPrecision, c.FormatPrecision)
	}
	if c.FormatPlacesUnder1000 < 0 || c.FormatPlacesUnder1000 > MaxFormatPrecision {
		return fmt.Errorf("%s must be between 0 and %d, got %d", EnvFormatPlacesUnder1000, MaxFormatPrecision, c.FormatPlacesUnder1000)
	}
	if c.PluralCacheSize <= 0 {
		return fmt.Errorf("%s must be positive, got %d", EnvPluralCacheSize, c.PluralCacheSize)
	}
	if _, err := bignum.Parse(c.FormatTowerThreshold); err != nil {
		return fmt.Errorf("invalid %s: %w", EnvFormatTowerThreshold, err)
	}
	return nil
}

// TowerThreshold parses FormatTowerThreshold
func (c *Config) TowerThreshold() bignum.Number {
	return bignum.FromString(c.FormatTowerThreshold)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or malformed
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a duration variable, falling back to the default when unset or malformed
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
