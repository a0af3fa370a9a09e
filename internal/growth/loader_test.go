package growth

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/hypernum/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tiers.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestTableLoader_Load(t *testing.T) {
	loader := NewTableLoader()

	config, err := loader.Load(tierTablePath)
	require.NoError(t, err)
	require.Len(t, config.Tiers, 8)
	assert.Equal(t, "1e6000", config.Tiers[0].Breakpoints[2].Threshold)
	assert.Equal(t, 2.2, config.Tiers[0].Breakpoints[2].Scale)
	assert.Equal(t, 4.0, config.Tiers[7].PostThresholdScalingRate)

	require.NoError(t, loader.Validate(config))
}

func TestTableLoader_Load_MissingFile(t *testing.T) {
	_, err := NewTableLoader().Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrInvalidTier))
	assert.Contains(t, err.Error(), "failed to read tier config file")
}

func TestLoadTable_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "schema violation",
			content: `{"tiers": [{"tier": 1, "name": "x", "base_cost": "1", "cost_multiplier": "3"}]}`,
		},
		{
			name:    "not a number",
			content: `{"tiers": [{"tier": 1, "name": "x", "base_cost": "banana", "cost_multiplier": "3", "breakpoints": [{"threshold": "1e10", "scale": 1}]}]}`,
		},
		{
			name: "duplicate tier",
			content: `{"tiers": [
				{"tier": 1, "name": "x", "base_cost": "1", "cost_multiplier": "3", "breakpoints": [{"threshold": "1e10", "scale": 1}]},
				{"tier": 1, "name": "y", "base_cost": "1", "cost_multiplier": "3", "breakpoints": [{"threshold": "1e10", "scale": 1}]}
			]}`,
		},
		{
			name:    "threshold below base cost",
			content: `{"tiers": [{"tier": 1, "name": "x", "base_cost": "1e20", "cost_multiplier": "3", "breakpoints": [{"threshold": "1e10", "scale": 1}]}]}`,
		},
		{
			name:    "multiplier of one",
			content: `{"tiers": [{"tier": 1, "name": "x", "base_cost": "1", "cost_multiplier": "1", "breakpoints": [{"threshold": "1e10", "scale": 1}]}]}`,
		},
		{
			name: "decreasing scale",
			content: `{"tiers": [{"tier": 1, "name": "x", "base_cost": "1", "cost_multiplier": "3", "breakpoints": [
				{"threshold": "1e10", "scale": 2}, {"threshold": "1e20", "scale": 1.5}
			]}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTable(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidTier), "got %v", err)
		})
	}
}

func TestTableLoader_Validate_Nil(t *testing.T) {
	err := NewTableLoader().Validate(nil)
	assert.True(t, errors.Is(err, domain.ErrInvalidTier))
}

func TestTierConfig_Curve_DefaultRate(t *testing.T) {
	tc := TierConfig{
		Tier:           1,
		Name:           "x",
		BaseCost:       "1",
		CostMultiplier: "10",
		Breakpoints:    []BreakpointConfig{{Threshold: "1e10", Scale: 1}},
	}
	curve, err := tc.Curve()
	require.NoError(t, err)
	assert.Equal(t, DefaultScalingRate, curve.ScalingRate())
	assertNumber(t, 10, curve.ScalingAmount())
}
