package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/hypernum/internal/bignum"
	"github.com/osse101/hypernum/internal/domain"
)

func TestPluralize(t *testing.T) {
	tests := []struct {
		name     string
		word     string
		count    bignum.Number
		expected string
	}{
		{name: "singular at exactly one", word: "Galaxy", count: bignum.One, expected: "Galaxy"},
		{name: "y becomes ies", word: "Galaxy", count: bignum.Two, expected: "Galaxies"},
		{name: "x becomes xes", word: "Box", count: bignum.Zero, expected: "Boxes"},
		{name: "default appends s", word: "Tachyon Particle", count: bignum.Ten, expected: "Tachyon Particles"},
		{name: "override wins over rules", word: "Antimatter", count: bignum.Ten, expected: "Antimatter"},
		{name: "invariant override", word: "Dilated Time", count: bignum.Zero, expected: "Dilated Time"},
		{name: "near one is plural", word: "Galaxy", count: bignum.FromFloat(1.0000001), expected: "Galaxies"},
		{name: "NaN count is plural", word: "Galaxy", count: bignum.NaN(), expected: "Galaxies"},
		{name: "huge count", word: "Replicanti", count: bignum.FromComponents(1, 3, 20), expected: "Replicantis"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Pluralize(tt.word, tt.count))
		})
	}
}

func TestPluralizer_Memoizes(t *testing.T) {
	p, err := NewPluralizer(2)
	require.NoError(t, err)

	assert.Equal(t, "Eternities", p.Pluralize("Eternity", bignum.Two))
	assert.Equal(t, "Eternities", p.Pluralize("Eternity", bignum.Ten))
	assert.Equal(t, 1, p.Cached())

	p.Pluralize("Antimatter", bignum.Two)
	assert.Equal(t, 1, p.Cached(), "overrides are not cached")

	p.Pluralize("Eternity", bignum.One)
	assert.Equal(t, 1, p.Cached(), "singulars are not cached")

	p.Pluralize("Box", bignum.Two)
	p.Pluralize("Reality", bignum.Two)
	assert.Equal(t, 2, p.Cached(), "cache is bounded")
}

func TestNewPluralizer_InvalidSize(t *testing.T) {
	_, err := NewPluralizer(0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPluralize_PanicsOnMissingWord(t *testing.T) {
	assert.PanicsWithValue(t, panicMissingWord, func() { Pluralize("", bignum.Two) })
}

func TestQuantify(t *testing.T) {
	f := Default()
	assert.Equal(t, "3.00 Galaxies", f.Quantify("Galaxy", bignum.FromFloat(3), DefaultOptions()))
	assert.Equal(t, "1 Galaxy", f.QuantifyInt("Galaxy", bignum.One))
	assert.Equal(t, "1,234 Boxes", f.QuantifyInt("Box", bignum.FromFloat(1234)))
	assert.Equal(t, "1.00e400 Infinities", f.Quantify("Infinity", bignum.FromComponents(1, 1, 400), DefaultOptions()))

	assert.PanicsWithValue(t, panicMissingName, func() { f.Quantify("", bignum.One, DefaultOptions()) })
	assert.PanicsWithValue(t, panicMissingName, func() { f.QuantifyInt("", bignum.One) })
}

func TestMakeEnumeration(t *testing.T) {
	tests := []struct {
		name     string
		items    []string
		expected string
	}{
		{name: "empty", items: []string{}, expected: ""},
		{name: "one", items: []string{"a"}, expected: "a"},
		{name: "two", items: []string{"a", "b"}, expected: "a and b"},
		{name: "three", items: []string{"a", "b", "c"}, expected: "a, b, and c"},
		{name: "four", items: []string{"Time", "Space", "Power", "Reality"}, expected: "Time, Space, Power, and Reality"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MakeEnumeration(tt.items))
		})
	}

	assert.PanicsWithValue(t, panicNilItems, func() { MakeEnumeration(nil) })
}
