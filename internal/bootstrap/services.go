package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/hypernum/internal/config"
	"github.com/osse101/hypernum/internal/format"
	"github.com/osse101/hypernum/internal/growth"
	"github.com/osse101/hypernum/internal/handler"
	"github.com/osse101/hypernum/internal/metrics"
)

// InitializeFormatter builds the shared formatter from configuration.
func InitializeFormatter(cfg *config.Config) (*format.Formatter, error) {
	f, err := format.NewFormatter(format.Config{
		TowerThreshold:  cfg.TowerThreshold(),
		PluralCacheSize: cfg.PluralCacheSize,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidFormatter, err)
	}
	slog.Info(LogMsgFormatterReady, "tower_threshold", cfg.FormatTowerThreshold)
	return f, nil
}

// InitializeTiers loads the tier table. A table that fails to load is logged
// and reported as a nil service so the server runs without tier routes.
func InitializeTiers(cfg *config.Config) handler.TierService {
	table, err := growth.LoadTable(cfg.TiersPath)
	if err != nil {
		slog.Error(LogMsgTierTableFailed, "path", cfg.TiersPath, "error", err)
		metrics.TierTableTiers.Set(0)
		return nil
	}

	tiers := len(table.Summaries())
	metrics.TierTableTiers.Set(float64(tiers))
	slog.Info(LogMsgTierTableLoaded, "path", cfg.TiersPath, "tiers", tiers)
	return table
}

// DefaultFormatOptions are the options used when a request leaves them unset.
func DefaultFormatOptions(cfg *config.Config) format.Options {
	o := format.DefaultOptions()
	o.Precision = cfg.FormatPrecision
	o.PlacesUnder1000 = cfg.FormatPlacesUnder1000
	return o
}
