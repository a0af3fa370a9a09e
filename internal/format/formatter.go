// Package format renders extended-range numbers, durations and counted nouns
// for display.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/hypernum/internal/bignum"
	"github.com/osse101/hypernum/internal/domain"
)

// Options control how a single value is rendered.
type Options struct {
	// Precision is the number of mantissa digits in exponential notation.
	Precision int
	// PlacesUnder1000 is the number of decimal places for values below 1000.
	PlacesUnder1000 int
	// Small enables rendering of values below 0.0001 instead of rounding
	// them to zero.
	Small bool
}

// DefaultOptions returns two mantissa digits and two decimal places.
func DefaultOptions() Options {
	return Options{Precision: DefaultPrecision, PlacesUnder1000: DefaultPlacesUnder1000}
}

// Config configures a Formatter.
type Config struct {
	// TowerThreshold is the smallest value rendered in F notation.
	TowerThreshold bignum.Number
	// PluralCacheSize bounds the number of generated plurals kept in memory.
	PluralCacheSize int
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		TowerThreshold:  bignum.MustParse(DefaultTowerThreshold),
		PluralCacheSize: DefaultPluralCacheSize,
	}
}

// regime is one magnitude band. Regimes are tried in order and the first
// match renders the value.
type regime struct {
	name   string
	match  func(x bignum.Number, o Options) bool
	render func(x bignum.Number, o Options) string
}

// Formatter renders numbers through a fixed, ordered set of magnitude
// regimes. It is safe for concurrent use.
type Formatter struct {
	towerThreshold bignum.Number
	plurals        *Pluralizer
	regimes        []regime
}

// NewFormatter builds a Formatter from cfg.
func NewFormatter(cfg Config) (*Formatter, error) {
	if cfg.TowerThreshold.IsNaN() || cfg.TowerThreshold.Lte(thresholdExponentOnly) {
		return nil, errInvalidTowerThreshold(cfg.TowerThreshold)
	}
	plurals, err := NewPluralizer(cfg.PluralCacheSize)
	if err != nil {
		return nil, err
	}

	f := &Formatter{towerThreshold: cfg.TowerThreshold, plurals: plurals}
	f.regimes = []regime{
		{name: "tower", match: atLeast(f.towerThreshold), render: f.formatTower},
		{name: "exponent only", match: atLeast(thresholdExponentOnly), render: func(x bignum.Number, _ Options) string {
			return f.exponential(x, 0, false)
		}},
		{name: "rounded mantissa", match: atLeast(thresholdRoundedMantissa), render: func(x bignum.Number, _ Options) string {
			return f.exponential(x, 0, true)
		}},
		{name: "exponential", match: atLeast(thresholdExponential), render: func(x bignum.Number, o Options) string {
			return f.exponential(x, o.Precision, true)
		}},
		{name: "grouped", match: atLeast(thresholdGrouped), render: func(x bignum.Number, _ Options) string {
			return groupDigits(x.ToFloat(), 0)
		}},
		{name: "regular", match: func(x bignum.Number, o Options) bool {
			return x.Gte(thresholdSmall) || !o.Small
		}, render: func(x bignum.Number, o Options) string {
			return regularFormat(x, o.PlacesUnder1000)
		}},
		{name: "zero", match: func(x bignum.Number, _ Options) bool {
			return x.IsZero()
		}, render: func(_ bignum.Number, o Options) string {
			return strconv.FormatFloat(0, 'f', o.PlacesUnder1000, 64)
		}},
		{name: "inverted", match: func(bignum.Number, Options) bool { return true }, render: f.formatInverted},
	}
	return f, nil
}

// Format renders x. NaN renders as "NaN" and negative values carry a
// leading minus sign.
func (f *Formatter) Format(x bignum.Number, o Options) string {
	if x.IsNaN() {
		return symbolNaN
	}
	if x.Sign() < 0 {
		return "-" + f.Format(x.Neg(), o)
	}
	for _, r := range f.regimes {
		if r.match(x, o) {
			return r.render(x, o)
		}
	}
	return symbolNaN
}

// Regime names the regime that renders x under o.
func (f *Formatter) Regime(x bignum.Number, o Options) string {
	if x.IsNaN() {
		return symbolNaN
	}
	for _, r := range f.regimes {
		if r.match(x.Abs(), o) {
			return r.name
		}
	}
	return ""
}

func errInvalidTowerThreshold(t bignum.Number) error {
	return fmt.Errorf("%w: tower threshold %s must exceed %s", domain.ErrInvalidInput, t, thresholdExponentOnly)
}

func atLeast(threshold bignum.Number) func(bignum.Number, Options) bool {
	return func(x bignum.Number, _ Options) bool {
		return x.Gte(threshold)
	}
}

func (f *Formatter) formatTower(x bignum.Number, _ Options) string {
	slog := x.Slog(bignum.Ten)
	height := slog.Floor()
	if slog.Gte(towerMantissaCutoff) {
		return symbolTower + f.Format(height, DefaultOptions())
	}
	lead := math.Pow(10, slog.Sub(height).ToFloat())
	return strconv.FormatFloat(lead, 'f', towerMantissaPlaces, 64) + symbolTower + groupDigits(height.ToFloat(), 0)
}

// exponential renders x as mantissa "e" exponent. A mantissa that rounds up
// to 10 at the requested precision becomes 1 with the exponent bumped.
func (f *Formatter) exponential(x bignum.Number, precision int, withMantissa bool) string {
	m, e := splitExponent(x)
	mantissa, carried := roundMantissa(m, precision)
	if carried {
		e = e.Add(bignum.One)
	}

	exponent := f.exponentString(e)
	if !withMantissa {
		return "e" + exponent
	}
	return mantissa + "e" + exponent
}

// roundMantissa renders m with precision decimals and reports whether it
// rounded up to 10, in which case the result is 1.
func roundMantissa(m float64, precision int) (string, bool) {
	mantissa := strconv.FormatFloat(m, 'f', precision, 64)
	if rounded, _ := strconv.ParseFloat(mantissa, 64); rounded >= 10 {
		return strconv.FormatFloat(1, 'f', precision, 64), true
	}
	return mantissa, false
}

// splitExponent returns the leading digits and the power of ten of x. Beyond
// layer 1 the mantissa carries no information and is reported as 1.
func splitExponent(x bignum.Number) (float64, bignum.Number) {
	if x.Layer() <= 1 {
		return x.Mantissa(), bignum.FromFloat(x.Exponent())
	}
	return 1, x.Log10().Floor()
}

func (f *Formatter) exponentString(e bignum.Number) string {
	switch {
	case e.Gte(thresholdExponential):
		return f.Format(e, Options{Precision: exponentPrecision, PlacesUnder1000: DefaultPlacesUnder1000})
	case e.Gte(bignum.FromFloat(groupedExponent)):
		return groupDigits(e.ToFloat(), 0)
	default:
		return strconv.FormatFloat(e.ToFloat(), 'f', 0, 64)
	}
}

func regularFormat(x bignum.Number, places int) string {
	v := x.ToFloat()
	if v < thresholdSmall.ToFloat() {
		return strconv.FormatFloat(0, 'f', places, 64)
	}
	if v < 0.1 && places != 0 {
		places = max(places, minSmallPlaces)
	}
	return strconv.FormatFloat(v, 'f', places, 64)
}

// formatInverted renders a value below 0.0001 through its order of
// magnitude. Moderate results read as a negative exponent, deeper ones as the
// reciprocal magnitude with an inverse suffix. A mantissa that rounds up to 10
// moves the exponent toward zero.
func (f *Formatter) formatInverted(x bignum.Number, o Options) string {
	m, e := splitExponent(x)
	magnitude := e.Neg()

	precision := o.Precision
	if magnitude.Gte(roundedMantissaExponent) {
		precision = 0
	}
	mantissa, carried := roundMantissa(m, precision)
	if carried {
		m = 1
		magnitude = magnitude.Sub(bignum.One)
	}

	if magnitude.Lt(invertedSuffixExponent) {
		return mantissa + "e-" + f.exponentString(magnitude)
	}
	inverted := bignum.FromFloat(m).Mul(magnitude.Pow10())
	return f.Format(inverted, Options{Precision: o.Precision, PlacesUnder1000: o.PlacesUnder1000}) + symbolInverse
}

// groupDigits renders v with the given number of decimals and thousands
// separators in the integer part.
func groupDigits(v float64, decimals int) string {
	s := strconv.FormatFloat(math.Abs(v), 'f', decimals, 64)
	whole, frac, hasFrac := strings.Cut(s, ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return strconv.FormatFloat(v, 'f', decimals, 64)
	}

	out := message.NewPrinter(language.English).Sprintf("%d", n)
	if hasFrac {
		out += "." + frac
	}
	if v < 0 {
		out = "-" + out
	}
	return out
}
