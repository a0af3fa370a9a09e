package format

import (
	"math"

	"github.com/dustin/go-humanize"

	"github.com/osse101/hypernum/internal/bignum"
)

var std = mustFormatter(DefaultConfig())

func mustFormatter(cfg Config) *Formatter {
	f, err := NewFormatter(cfg)
	if err != nil {
		panic(err)
	}
	return f
}

// Default returns the shared Formatter built from DefaultConfig.
func Default() *Formatter {
	return std
}

// Format renders x with the shared Formatter.
func Format(x bignum.Number, o Options) string {
	return std.Format(x, o)
}

// FormatInt renders x as an exact comma-grouped integer when |x| is below 1e9
// and falls back to Format above.
func (f *Formatter) FormatInt(x bignum.Number) string {
	if x.IsNaN() {
		return symbolNaN
	}
	if x.Abs().Lt(thresholdExponential) {
		return groupDigits(x.ToFloat(), 0)
	}
	return f.Format(x, DefaultOptions())
}

// FormatFloat renders x with a fixed number of decimals and grouped thousands
// below 1e9.
func (f *Formatter) FormatFloat(x bignum.Number, digits int) string {
	if x.IsNaN() {
		return symbolNaN
	}
	if x.Abs().Lt(thresholdExponential) {
		return groupDigits(x.ToFloat(), digits)
	}
	return f.Format(x, Options{Precision: max(DefaultPrecision, digits), PlacesUnder1000: digits})
}

// FormatWhole renders counts: integral values without decimals, fractions
// and large values with two digits.
func (f *Formatter) FormatWhole(x bignum.Number) string {
	abs := x.Abs()
	if abs.Gte(thresholdExponential) || (abs.Lte(bignum.FromFloat(0.99)) && !x.IsZero()) {
		return f.Format(x, DefaultOptions())
	}
	return f.Format(x, Options{})
}

// FormatSmall renders x without rounding tiny values to zero.
func (f *Formatter) FormatSmall(x bignum.Number, precision int) string {
	return f.Format(x, Options{Precision: precision, PlacesUnder1000: precision, Small: true})
}

// FormatX renders a multiplier, "×1.50".
func (f *Formatter) FormatX(x bignum.Number, o Options) string {
	return symbolTimes + f.Format(x, o)
}

// FormatPow renders an exponent, "^1.50".
func (f *Formatter) FormatPow(x bignum.Number, o Options) string {
	return symbolPow + f.Format(x, o)
}

// FormatTet renders a tetration height, "^^1.50".
func (f *Formatter) FormatTet(x bignum.Number, o Options) string {
	return symbolTet + f.Format(x, o)
}

// FormatPercents renders a fraction as a percentage with the given decimals.
func (f *Formatter) FormatPercents(x bignum.Number, places int) string {
	return f.Format(x.Mul(percentScale), Options{Precision: DefaultPrecision, PlacesUnder1000: places}) + symbolPercent
}

// FormatRarity renders a percentage that is integral or carries one decimal.
func (f *Formatter) FormatRarity(x bignum.Number) string {
	places := 1
	if x.Mod(bignum.One).IsZero() {
		places = 0
	}
	return f.Format(x, Options{Precision: DefaultPrecision, PlacesUnder1000: places}) + symbolPercent
}

// FormatOverflow describes how a value was tempered: "rooted by" for a
// softening power, "raised by" when the power was inverted.
func (f *Formatter) FormatOverflow(x bignum.Number, inverted bool) string {
	if inverted {
		return overflowRaised + f.Format(x, DefaultOptions())
	}
	return overflowRooted + f.Format(x, DefaultOptions())
}

// FormatEffect renders a modifier on the value it affects, picking the
// positive form for boosts above one and the reduction form otherwise.
func (f *Formatter) FormatEffect(effect, affected bignum.Number, tower bool) string {
	if effect.Gte(bignum.One) {
		return f.FormatEffectPos(effect, affected, tower)
	}
	return f.FormatEffectNeg(effect, affected)
}

// FormatEffectPos renders a boost. Small boosts read as a percentage, larger
// ones as a multiplier, then an exponent, then a tetration height. Without
// tower rendering the deepest boosts read as "Nth Expo ^x" where N is the
// exponent-tower depth.
func (f *Formatter) FormatEffectPos(effect, affected bignum.Number, tower bool) string {
	if effect.IsNaN() {
		return symbolNaN
	}
	two := Options{Precision: 2, PlacesUnder1000: 2}
	switch {
	case effect.Lt(effectPercentLimit):
		return "+" + f.FormatPercents(effect.Sub(bignum.One), 2)
	case effect.Lt(effectTimesLimit) || affected.Lt(effectedTimesLimit):
		return f.FormatX(effect, two)
	case (tower && effect.Lt(effectTowerLimit)) || effect.Lt(effectShortTower) || affected.Lt(effectedPowLimit):
		return f.FormatPow(effect.Log10(), two)
	case tower:
		return f.FormatTet(effect.Slog(bignum.Ten), two)
	}
	return f.expoDepth(effect) + symbolPow + f.Format(residual(effect), two)
}

// FormatEffectNeg renders a reduction, effect in (0, 1].
func (f *Formatter) FormatEffectNeg(effect, affected bignum.Number) string {
	if effect.IsNaN() || effect.Sign() <= 0 {
		return symbolNaN
	}
	two := Options{Precision: 2, PlacesUnder1000: 2}
	recip := effect.Recip()
	switch {
	case effect.Gt(effectReductionMin):
		return "-" + f.FormatPercents(bignum.One.Sub(effect), 2)
	case recip.Lt(effectTimesLimit) || affected.Lt(effectedTimesLimit):
		return symbolDivide + f.Format(recip, two)
	case recip.Lt(effectShortTower) || affected.Lt(effectedPowLimit):
		return f.FormatPow(effect.Log10(), two)
	}
	return f.expoDepth(recip) + symbolPow + "-" + f.Format(residual(recip), two)
}

// expoDepth names the exponent-tower depth of x as an ordinal, "3rd Expo".
func (f *Formatter) expoDepth(x bignum.Number) string {
	depth := math.Floor(x.Slog(bignum.Ten).ToFloat() - 1)
	return humanize.Ordinal(int(depth)) + symbolExpoOrdinal
}

// residual keeps the top of the tower of x as a single exponential.
func residual(x bignum.Number) bignum.Number {
	return bignum.FromComponents(1, 1, x.Mag())
}
