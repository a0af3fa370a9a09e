package bignum

import "math"

// cmpAbs compares |x| and |y|.
func cmpAbs(x, y Number) int {
	layerA := x.layer
	if x.mag <= 0 {
		layerA = -layerA
	}
	layerB := y.layer
	if y.mag <= 0 {
		layerB = -layerB
	}
	switch {
	case layerA > layerB:
		return 1
	case layerA < layerB:
		return -1
	case x.mag > y.mag:
		return 1
	case x.mag < y.mag:
		return -1
	}
	return 0
}

func maxAbs(x, y Number) Number {
	if cmpAbs(x, y) < 0 {
		return y
	}
	return x
}

// Cmp returns -1, 0 or 1 comparing x to y. The ordering is by sign, then
// layer, then mag. Cmp reports 0 when either operand is NaN; callers that
// care should check IsNaN first.
func (x Number) Cmp(y Number) int {
	if x.IsNaN() || y.IsNaN() {
		return 0
	}
	if x.sign > y.sign {
		return 1
	}
	if x.sign < y.sign {
		return -1
	}
	return x.sign * cmpAbs(x, y)
}

// CmpAbs compares |x| with |y|.
func (x Number) CmpAbs(y Number) int {
	if x.IsNaN() || y.IsNaN() {
		return 0
	}
	return cmpAbs(x, y)
}

// Eq reports x == y. NaN equals nothing.
func (x Number) Eq(y Number) bool {
	if x.IsNaN() || y.IsNaN() {
		return false
	}
	return x.sign == y.sign && x.layer == y.layer && x.mag == y.mag
}

// Neq reports x != y.
func (x Number) Neq(y Number) bool {
	return !x.Eq(y)
}

// Lt reports x < y.
func (x Number) Lt(y Number) bool {
	return !x.IsNaN() && !y.IsNaN() && x.Cmp(y) < 0
}

// Lte reports x <= y.
func (x Number) Lte(y Number) bool {
	return !x.IsNaN() && !y.IsNaN() && x.Cmp(y) <= 0
}

// Gt reports x > y.
func (x Number) Gt(y Number) bool {
	return !x.IsNaN() && !y.IsNaN() && x.Cmp(y) > 0
}

// Gte reports x >= y.
func (x Number) Gte(y Number) bool {
	return !x.IsNaN() && !y.IsNaN() && x.Cmp(y) >= 0
}

// Max returns the larger of x and y.
func (x Number) Max(y Number) Number {
	if x.IsNaN() || y.IsNaN() {
		return nan
	}
	if x.Lt(y) {
		return y
	}
	return x
}

// Min returns the smaller of x and y.
func (x Number) Min(y Number) Number {
	if x.IsNaN() || y.IsNaN() {
		return nan
	}
	if x.Gt(y) {
		return y
	}
	return x
}

// ClampMin returns x raised to at least lo.
func (x Number) ClampMin(lo Number) Number {
	return x.Max(lo)
}

// ClampMax returns x lowered to at most hi.
func (x Number) ClampMax(hi Number) Number {
	return x.Min(hi)
}

// Clamp bounds x to [lo, hi].
func (x Number) Clamp(lo, hi Number) Number {
	return x.Max(lo).Min(hi)
}

// ApproxEq reports whether x and y agree within a relative tolerance on
// their magnitudes. Values one layer apart are compared after bringing the
// deeper one down a layer.
func (x Number) ApproxEq(y Number, epsilon float64) bool {
	if x.IsNaN() || y.IsNaN() {
		return false
	}
	if x.sign != y.sign {
		return false
	}
	if x.sign == 0 {
		return true
	}
	if diff := x.layer - y.layer; diff > 1 || diff < -1 {
		return false
	}
	magA, magB := x.mag, y.mag
	if x.layer > y.layer {
		magB = magLog10(magB)
	}
	if x.layer < y.layer {
		magA = magLog10(magA)
	}
	return math.Abs(magA-magB) <= epsilon*math.Max(math.Abs(magA), math.Abs(magB))
}

func magLog10(f float64) float64 {
	return signOf(f) * math.Log10(math.Abs(f))
}
