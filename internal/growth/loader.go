package growth

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/osse101/hypernum/internal/bignum"
	"github.com/osse101/hypernum/internal/domain"
	"github.com/osse101/hypernum/internal/validation"
)

// TableConfig represents the JSON configuration of a tier table
type TableConfig struct {
	Version     string       `json:"version"`
	Description string       `json:"description"`
	Tiers       []TierConfig `json:"tiers" validate:"required,min=1,dive"`
}

// TierConfig represents a single tier in the table JSON. Large values are
// strings in any form bignum.Parse reads, "1e6000" or "e2350".
type TierConfig struct {
	Tier           int                `json:"tier" validate:"required,min=1"`
	Name           string             `json:"name" validate:"required,max=100"`
	BaseCost       string             `json:"base_cost" validate:"required,number"`
	CostMultiplier string             `json:"cost_multiplier" validate:"required,number"`
	Breakpoints    []BreakpointConfig `json:"breakpoints" validate:"required,min=1,dive"`

	// Exponent growth past the last breakpoint; 0 means DefaultScalingRate
	PostThresholdScalingRate float64 `json:"post_threshold_scaling_rate" validate:"omitempty,gte=1"`
}

// BreakpointConfig represents one breakpoint of a tier
type BreakpointConfig struct {
	Threshold string  `json:"threshold" validate:"required,number"`
	Scale     float64 `json:"scale" validate:"gte=1"`
}

// TableLoader handles loading and validating tier table configuration
type TableLoader interface {
	Load(path string) (*TableConfig, error)
	Validate(config *TableConfig) error
	Build(config *TableConfig) (*Table, error)
}

type tableLoader struct {
	schemas validation.SchemaValidator
}

// NewTableLoader creates a new TableLoader instance
func NewTableLoader() TableLoader {
	return &tableLoader{schemas: validation.NewSchemaValidator()}
}

// LoadTable reads, validates and builds the tier table at path
func LoadTable(path string) (*Table, error) {
	loader := NewTableLoader()
	config, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	if err := loader.Validate(config); err != nil {
		return nil, err
	}
	return loader.Build(config)
}

// Load reads a tier table JSON file and checks it against the table schema
func (l *tableLoader) Load(path string) (*TableConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tier config file: %w", err)
	}

	if err := l.schemas.ValidateBytes(data, validation.TierTableSchema); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidTier, err)
	}

	var config TableConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse tier config: %w", err)
	}

	return &config, nil
}

// Validate checks the struct rules and that tier numbers are unique. Curve
// shape rules are checked by Build.
func (l *tableLoader) Validate(config *TableConfig) error {
	if config == nil {
		return fmt.Errorf("%w: config is nil", domain.ErrInvalidTier)
	}

	if err := validation.Struct().Struct(config); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidTier, err)
	}

	seen := make(map[int]bool, len(config.Tiers))
	for _, tier := range config.Tiers {
		if seen[tier.Tier] {
			return fmt.Errorf("%w: %s %d", domain.ErrInvalidTier, msgDuplicateTier, tier.Tier)
		}
		seen[tier.Tier] = true
	}

	return nil
}

// Build turns a validated config into a table with nothing bought
func (l *tableLoader) Build(config *TableConfig) (*Table, error) {
	tiers := make([]*Tier, 0, len(config.Tiers))
	for _, tc := range config.Tiers {
		curve, err := tc.Curve()
		if err != nil {
			return nil, fmt.Errorf("tier %d: %w", tc.Tier, err)
		}
		tiers = append(tiers, NewTier(tc.Tier, tc.Name, curve))
	}
	return NewTable(tiers...)
}

// Curve parses the numeric fields and builds the cost curve
func (tc TierConfig) Curve() (*Curve, error) {
	base, err := bignum.Parse(tc.BaseCost)
	if err != nil {
		return nil, fmt.Errorf("%w: base cost: %v", domain.ErrInvalidTier, err)
	}
	mult, err := bignum.Parse(tc.CostMultiplier)
	if err != nil {
		return nil, fmt.Errorf("%w: cost multiplier: %v", domain.ErrInvalidTier, err)
	}

	breakpoints := make([]Breakpoint, 0, len(tc.Breakpoints))
	for i, bc := range tc.Breakpoints {
		threshold, err := bignum.Parse(bc.Threshold)
		if err != nil {
			return nil, fmt.Errorf("%w: breakpoint %d: %v", domain.ErrInvalidTier, i, err)
		}
		breakpoints = append(breakpoints, Breakpoint{Threshold: threshold, Scale: bc.Scale})
	}

	return NewCurve(base, mult, breakpoints, tc.PostThresholdScalingRate)
}
