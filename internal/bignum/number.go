// Package bignum implements an extended-range number that can represent
// values far beyond float64, up to towers of repeated exponentiation.
//
// A Number is stored as (sign, layer, mag). On layer 0 the value is
// sign*mag. On layer n > 0 the value is sign * 10^(s * T(n-1, |mag|)) where
// s is the sign of mag and T(n-1, x) is x lifted n-1 times through 10^x.
// A negative mag on layer 1 or above therefore encodes a value between
// zero and one.
//
// Invalid operations never panic. They produce a sticky NaN that every later
// operation propagates, so a long chain of modifiers does not abort on one bad
// input. Check IsNaN at display or persistence boundaries.
package bignum

import (
	"math"
)

// Number is an immutable extended-range value. The zero value is zero.
type Number struct {
	sign  int
	layer int
	mag   float64
}

var nan = Number{mag: math.NaN()}

// NaN returns the sticky invalid value.
func NaN() Number {
	return nan
}

// FromFloat converts a float64. NaN and infinities become NaN.
func FromFloat(f float64) Number {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nan
	}
	return fromComponents(int(signOf(f)), 0, math.Abs(f))
}

// FromInt converts an int64.
func FromInt(i int64) Number {
	return FromFloat(float64(i))
}

// FromComponents builds a Number from raw parts and normalizes it.
func FromComponents(sign, layer int, mag float64) Number {
	if layer < 0 {
		return nan
	}
	if sign > 1 {
		sign = 1
	} else if sign < -1 {
		sign = -1
	}
	return fromComponents(sign, layer, mag)
}

func fromComponents(sign, layer int, mag float64) Number {
	n := Number{sign: sign, layer: layer, mag: mag}
	n.normalize()
	return n
}

// normalize restores the invariant that layer is minimal for mag.
func (n *Number) normalize() {
	if math.IsNaN(n.mag) || math.IsInf(n.mag, 1) {
		*n = nan
		return
	}
	if n.sign == 0 || (n.mag == 0 && n.layer == 0) || (math.IsInf(n.mag, -1) && n.layer > 0) {
		*n = Number{}
		return
	}
	if math.IsInf(n.mag, -1) {
		*n = nan
		return
	}
	if n.layer == 0 && n.mag < 0 {
		n.mag = -n.mag
		n.sign = -n.sign
	}
	if n.layer == 0 && n.mag < firstNegLayer {
		n.layer = 1
		n.mag = math.Log10(n.mag)
		return
	}

	absmag := math.Abs(n.mag)
	signmag := signOf(n.mag)
	if absmag >= expLimit {
		n.layer++
		n.mag = signmag * math.Log10(absmag)
		return
	}
	for absmag < layerDown && n.layer > 0 {
		n.layer--
		if n.layer == 0 {
			n.mag = math.Pow(10, n.mag)
		} else {
			n.mag = signmag * math.Pow(10, absmag)
			absmag = math.Abs(n.mag)
			signmag = signOf(n.mag)
		}
	}
	if n.layer == 0 {
		if n.mag < 0 {
			n.mag = -n.mag
			n.sign = -n.sign
		} else if n.mag == 0 {
			*n = Number{}
		}
	}
}

// Sign returns -1, 0 or 1. NaN reports 0.
func (x Number) Sign() int {
	return x.sign
}

// Layer returns how many times log10 must be applied to reach Mag.
func (x Number) Layer() int {
	return x.layer
}

// Mag returns the magnitude on the current layer.
func (x Number) Mag() float64 {
	return x.mag
}

// IsNaN reports whether x is the sticky invalid value.
func (x Number) IsNaN() bool {
	return math.IsNaN(x.mag)
}

// IsZero reports whether x is exactly zero.
func (x Number) IsZero() bool {
	return x.sign == 0 && !x.IsNaN()
}

// IsInteger reports whether x has no fractional part. Values beyond layer 0
// are integers at float64 precision.
func (x Number) IsInteger() bool {
	if x.IsNaN() {
		return false
	}
	if x.layer == 0 {
		return x.mag == math.Trunc(x.mag)
	}
	return x.mag > 0
}

// ToFloat converts to float64, saturating to ±Inf or 0 out of range.
func (x Number) ToFloat() float64 {
	switch {
	case x.IsNaN():
		return math.NaN()
	case x.layer == 0:
		return float64(x.sign) * x.mag
	case x.layer == 1:
		return float64(x.sign) * math.Pow(10, x.mag)
	case x.mag > 0:
		return math.Inf(x.sign)
	default:
		return 0
	}
}

// Mantissa returns the leading digits m with 1 <= |m| < 10 for layer 0 and 1.
// Deeper layers report ±1.
func (x Number) Mantissa() float64 {
	switch {
	case x.IsNaN():
		return math.NaN()
	case x.sign == 0:
		return 0
	case x.layer == 0:
		e := math.Floor(math.Log10(x.mag))
		m := x.mag / math.Pow(10, e)
		if m >= 10 {
			m /= 10
		} else if m < 1 {
			m *= 10
		}
		return float64(x.sign) * m
	case x.layer == 1:
		return float64(x.sign) * math.Pow(10, x.mag-math.Floor(x.mag))
	default:
		return float64(x.sign)
	}
}

// Exponent returns floor(log10|x|) for layer 0 and 1. Deeper layers report
// ±Inf.
func (x Number) Exponent() float64 {
	switch {
	case x.IsNaN():
		return math.NaN()
	case x.sign == 0:
		return 0
	case x.layer == 0:
		e := math.Floor(math.Log10(x.mag))
		m := x.mag / math.Pow(10, e)
		if m >= 10 {
			e++
		} else if m < 1 {
			e--
		}
		return e
	case x.layer == 1:
		return math.Floor(x.mag)
	case x.mag > 0:
		return math.Inf(1)
	default:
		return math.Inf(-1)
	}
}

func signOf(f float64) float64 {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	default:
		return 0
	}
}
