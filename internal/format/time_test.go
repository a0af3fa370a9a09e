package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/hypernum/internal/bignum"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		name     string
		seconds  float64
		hms      bool
		expected string
	}{
		{name: "zero", seconds: 0, hms: true, expected: "0.00 s"},
		{name: "planck times", seconds: 1e-31, hms: true, expected: "5.39e13 tP"},
		{name: "nanoseconds", seconds: 2.5e-7, hms: true, expected: "250.00 ns"},
		{name: "milliseconds", seconds: 0.5, hms: true, expected: "500.00 ms"},
		{name: "seconds", seconds: 45, hms: true, expected: "45.00 s"},
		{name: "minutes hms", seconds: 125, hms: true, expected: "2:05"},
		{name: "minutes verbose", seconds: 125, hms: false, expected: "2.08 minutes"},
		{name: "hours hms", seconds: 3725, hms: true, expected: "1:02:05"},
		{name: "hours verbose", seconds: 3725, hms: false, expected: "1 hour, 2 minutes"},
		{name: "days", seconds: 90061, hms: true, expected: "1 day, 1 hour, 1 minute"},
		{name: "days with zero minutes", seconds: 183600, hms: true, expected: "2 days, 3 hours, 0 minutes"},
		{name: "years", seconds: 95472000, hms: true, expected: "3 years, 10 days"},
		{name: "universe ages", seconds: 8.703936e17, hms: true, expected: "2.00 unis"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Default().FormatTime(bignum.FromFloat(tt.seconds), tt.hms))
		})
	}
}

func TestFormatTime_Boundaries(t *testing.T) {
	f := Default()
	assert.Equal(t, "1:00", f.FormatTime(bignum.FromFloat(60), true))
	assert.Equal(t, "59:59", f.FormatTime(bignum.FromFloat(3599.9), true), "seconds are floored, not rounded")
	assert.Equal(t, "1:00:00", f.FormatTime(bignum.FromFloat(3600), true))
	assert.Equal(t, "1.00 s", f.FormatTime(bignum.One, true))
	assert.Equal(t, "NaN", f.FormatTime(bignum.NaN(), true))
}

func TestFormatTime_BeyondFloat(t *testing.T) {
	assert.Equal(t, "e1.000e20 unis", Default().FormatTime(bignum.FromComponents(1, 2, 20), true))
}
