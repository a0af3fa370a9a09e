package config

import "time"

// Environment variable names
const (
	EnvPort                  = "PORT"
	EnvLogLevel              = "LOG_LEVEL"
	EnvLogFormat             = "LOG_FORMAT"
	EnvEnvironment           = "ENVIRONMENT"
	EnvServiceName           = "SERVICE_NAME"
	EnvVersion               = "VERSION"
	EnvTiersPath             = "TIERS_PATH"
	EnvFormatPrecision       = "FORMAT_PRECISION"
	EnvFormatPlacesUnder1000 = "FORMAT_PLACES_UNDER_1000"
	EnvFormatTowerThreshold  = "FORMAT_TOWER_THRESHOLD"
	EnvPluralCacheSize       = "PLURAL_CACHE_SIZE"
	EnvShutdownTimeout       = "SHUTDOWN_TIMEOUT"
	EnvSchemaVersion         = "ENV_SCHEMA_VERSION"
	EnvAPIKey                = "API_KEY"
	EnvTrustedProxies        = "TRUSTED_PROXIES"
)

// Defaults
const (
	DefaultPort            = "8080"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultEnvironment     = "dev"
	DefaultServiceName     = "hypernum"
	DefaultVersion         = "dev"
	DefaultTiersPath       = "configs/tiers.json"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultTowerThreshold  = "eeeee1000"
	DefaultFormatPrecision = 2
	DefaultPlacesUnder1000 = 2
	DefaultPluralCacheSize = 256
	MaxFormatPrecision     = 16
)

