package format

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/hypernum/internal/bignum"
	"github.com/osse101/hypernum/internal/domain"
)

func TestFormat_Regimes(t *testing.T) {
	tests := []struct {
		name       string
		input      bignum.Number
		expected   string
		wantRegime string
	}{
		{name: "NaN", input: bignum.NaN(), expected: "NaN", wantRegime: "NaN"},
		{name: "zero without small flag", input: bignum.Zero, expected: "0.00", wantRegime: "regular"},
		{name: "fraction", input: bignum.FromFloat(0.5), expected: "0.50", wantRegime: "regular"},
		{name: "below 0.1 widens places", input: bignum.FromFloat(0.05), expected: "0.0500", wantRegime: "regular"},
		{name: "tiny rounds to zero", input: bignum.FromFloat(0.00001), expected: "0.00", wantRegime: "regular"},
		{name: "under 1000", input: bignum.FromFloat(123.456), expected: "123.46", wantRegime: "regular"},
		{name: "just under 1000", input: bignum.FromFloat(999.994), expected: "999.99", wantRegime: "regular"},
		{name: "exactly 1000", input: bignum.FromFloat(1000), expected: "1,000", wantRegime: "grouped"},
		{name: "grouped rounds", input: bignum.FromFloat(1234567.89), expected: "1,234,568", wantRegime: "grouped"},
		{name: "just under 1e9", input: bignum.FromFloat(999999999), expected: "999,999,999", wantRegime: "grouped"},
		{name: "exactly 1e9", input: bignum.FromFloat(1e9), expected: "1.00e9", wantRegime: "exponential"},
		{name: "exponential", input: bignum.FromFloat(1.2345e10), expected: "1.23e10", wantRegime: "exponential"},
		{name: "grouped exponent", input: bignum.FromComponents(1, 1, 999999.5), expected: "3.16e999,999", wantRegime: "exponential"},
		{name: "exactly 1e1000000", input: bignum.MustParse("1e1000000"), expected: "1e1,000,000", wantRegime: "rounded mantissa"},
		{name: "exactly e1e9", input: bignum.MustParse("e1e9"), expected: "e1.000e9", wantRegime: "exponent only"},
		{name: "layer 2", input: bignum.FromComponents(1, 2, 20), expected: "e1.000e20", wantRegime: "exponent only"},
		{name: "just under tower threshold", input: bignum.FromComponents(1, 5, 999), expected: "eeee1.000e999", wantRegime: "exponent only"},
		{name: "exactly tower threshold", input: bignum.MustParse("eeeee1000"), expected: "3.000F6", wantRegime: "tower"},
		{name: "tall tower", input: bignum.FromComponents(1, 2000000, 5), expected: "F2,000,000", wantRegime: "tower"},
		{name: "negative", input: bignum.FromFloat(-1234), expected: "-1,234", wantRegime: "grouped"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.input, DefaultOptions()))
			assert.Equal(t, tt.wantRegime, Default().Regime(tt.input, DefaultOptions()))
		})
	}
}

func TestFormat_Small(t *testing.T) {
	small := Options{Precision: 2, PlacesUnder1000: 2, Small: true}

	tests := []struct {
		name     string
		input    bignum.Number
		expected string
	}{
		{name: "zero", input: bignum.Zero, expected: "0.00"},
		{name: "above 0.0001 stays regular", input: bignum.FromFloat(0.001), expected: "0.0010"},
		{name: "negative exponent", input: bignum.FromFloat(5e-5), expected: "5.00e-5"},
		{name: "deep negative exponent uses inverse suffix", input: bignum.FromComponents(1, 1, -2000.5), expected: "3.16e2001⁻¹"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.input, small))
		})
	}

	assert.Equal(t, "inverted", Default().Regime(bignum.FromFloat(5e-5), small))
	assert.Equal(t, "zero", Default().Regime(bignum.Zero, small))
}

func TestFormat_MantissaRoundsUpToTen(t *testing.T) {
	for precision := 0; precision <= 6; precision++ {
		t.Run(fmt.Sprintf("precision %d", precision), func(t *testing.T) {
			o := Options{Precision: precision, PlacesUnder1000: 2}
			one := fmt.Sprintf("%.*f", precision, 1.0)

			assert.Equal(t, one+"e21", Format(bignum.FromFloat(9.9999999e20), o))
			assert.Equal(t, one+"e10", Format(bignum.FromFloat(9.9999999e9), o))
			assert.Equal(t, one+"e21", Format(bignum.FromFloat(1e21), o))
		})
	}

	assert.Equal(t, "9.99e9", Format(bignum.FromFloat(9.994e9), DefaultOptions()))
}

func TestFormat_InvertedMantissaRounding(t *testing.T) {
	tests := []struct {
		input    float64
		expected []string
	}{
		{input: 9.9999e-7, expected: []string{"1e-6", "1.0e-6", "1.00e-6", "1.000e-6", "9.9999e-7", "9.99990e-7", "9.999900e-7"}},
		{input: 9.6e-7, expected: []string{"1e-6", "9.6e-7", "9.60e-7", "9.600e-7", "9.6000e-7", "9.60000e-7", "9.600000e-7"}},
		{input: 9.99999e-5, expected: []string{"1e-4", "1.0e-4", "1.00e-4", "1.000e-4", "1.0000e-4", "9.99999e-5", "9.999990e-5"}},
	}

	for _, tt := range tests {
		for precision, expected := range tt.expected {
			t.Run(fmt.Sprintf("%g precision %d", tt.input, precision), func(t *testing.T) {
				o := Options{Precision: precision, PlacesUnder1000: 2, Small: true}
				assert.Equal(t, expected, Format(bignum.FromFloat(tt.input), o))
			})
		}
	}

	small := Options{Precision: 2, PlacesUnder1000: 2, Small: true}
	assert.Equal(t, "1.00e1999⁻¹", Format(bignum.FromComponents(1, 1, -2000+math.Log10(9.99999)), small))
	assert.Equal(t, "1.00e5000⁻¹", Format(bignum.MustParse("1e-5000"), small))
	assert.Equal(t, "-1.00e-6", Format(bignum.FromFloat(-9.9999e-7), small))
}

func TestRegime_TowerBoundary(t *testing.T) {
	o := DefaultOptions()
	threshold := bignum.MustParse(DefaultTowerThreshold)

	assert.Equal(t, "exponent only", Default().Regime(bignum.MustParse("10^^5"), o))
	assert.Equal(t, "tower", Default().Regime(threshold, o))
	assert.Equal(t, "3.000F6", Format(threshold, o))
	assert.True(t, bignum.MustParse("10^^5").Lt(threshold))
}

func TestNewFormatter(t *testing.T) {
	t.Run("custom tower threshold", func(t *testing.T) {
		f, err := NewFormatter(Config{TowerThreshold: bignum.FromComponents(1, 3, 20), PluralCacheSize: 8})
		require.NoError(t, err)
		assert.Equal(t, "1.301F5", f.Format(bignum.FromComponents(1, 3, 20), DefaultOptions()))
	})

	t.Run("threshold must exceed exponent-only regime", func(t *testing.T) {
		_, err := NewFormatter(Config{TowerThreshold: bignum.FromFloat(1e10), PluralCacheSize: 8})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, err = NewFormatter(Config{TowerThreshold: bignum.NaN(), PluralCacheSize: 8})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("plural cache must be positive", func(t *testing.T) {
		_, err := NewFormatter(Config{TowerThreshold: bignum.MustParse(DefaultTowerThreshold)})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestFormat_Concurrent(t *testing.T) {
	values := []bignum.Number{
		bignum.FromFloat(1234567),
		bignum.FromComponents(1, 1, 500),
		bignum.MustParse("eeeee1000"),
	}
	want := make([]string, len(values))
	for i, v := range values {
		want[i] = Format(v, DefaultOptions())
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, v := range values {
				assert.Equal(t, want[i], Format(v, DefaultOptions()))
			}
		}()
	}
	wg.Wait()
}
