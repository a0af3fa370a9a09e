package bignum

import "math"

// Neg returns -x.
func (x Number) Neg() Number {
	if x.IsNaN() {
		return nan
	}
	return Number{sign: -x.sign, layer: x.layer, mag: x.mag}
}

// Abs returns |x|.
func (x Number) Abs() Number {
	if x.IsNaN() {
		return nan
	}
	if x.sign == 0 {
		return Zero
	}
	return Number{sign: 1, layer: x.layer, mag: x.mag}
}

// Add returns x+y. When the operands are far apart in magnitude the smaller
// one is absorbed.
func (x Number) Add(y Number) Number {
	if x.IsNaN() || y.IsNaN() {
		return nan
	}
	if x.sign == 0 {
		return y
	}
	if y.sign == 0 {
		return x
	}
	if x.sign == -y.sign && x.layer == y.layer && x.mag == y.mag {
		return Zero
	}
	if x.layer >= 2 || y.layer >= 2 {
		return maxAbs(x, y)
	}

	a, b := x, y
	if cmpAbs(x, y) <= 0 {
		a, b = y, x
	}
	if a.layer == 0 && b.layer == 0 {
		return FromFloat(float64(a.sign)*a.mag + float64(b.sign)*b.mag)
	}

	layerA := a.layer * int(signOf(a.mag))
	layerB := b.layer * int(signOf(b.mag))
	if layerA-layerB >= 2 {
		return a
	}

	switch {
	case layerA == 0 && layerB == -1:
		logA := math.Log10(a.mag)
		if math.Abs(b.mag-logA) > maxSignificantDigits {
			return a
		}
		mantissa := float64(b.sign) + float64(a.sign)*math.Pow(10, logA-b.mag)
		return fromComponents(int(signOf(mantissa)), 1, b.mag+math.Log10(math.Abs(mantissa)))
	case layerA == 1 && layerB == 0:
		logB := math.Log10(b.mag)
		if math.Abs(a.mag-logB) > maxSignificantDigits {
			return a
		}
		mantissa := float64(b.sign) + float64(a.sign)*math.Pow(10, a.mag-logB)
		return fromComponents(int(signOf(mantissa)), 1, logB+math.Log10(math.Abs(mantissa)))
	}

	if math.Abs(a.mag-b.mag) > maxSignificantDigits {
		return a
	}
	mantissa := float64(b.sign) + float64(a.sign)*math.Pow(10, a.mag-b.mag)
	return fromComponents(int(signOf(mantissa)), 1, b.mag+math.Log10(math.Abs(mantissa)))
}

// Sub returns x-y.
func (x Number) Sub(y Number) Number {
	return x.Add(y.Neg())
}

// Mul returns x*y.
func (x Number) Mul(y Number) Number {
	if x.IsNaN() || y.IsNaN() {
		return nan
	}
	if x.sign == 0 || y.sign == 0 {
		return Zero
	}
	if x.layer == y.layer && x.mag == -y.mag {
		return Number{sign: x.sign * y.sign, layer: 0, mag: 1}
	}

	a, b := x, y
	if y.layer > x.layer || (y.layer == x.layer && math.Abs(y.mag) > math.Abs(x.mag)) {
		a, b = y, x
	}
	sign := a.sign * b.sign

	switch {
	case a.layer == 0 && b.layer == 0:
		return FromFloat(float64(sign) * a.mag * b.mag)
	case a.layer >= 3 || a.layer-b.layer >= 2:
		return fromComponents(sign, a.layer, a.mag)
	case a.layer == 1 && b.layer == 0:
		return fromComponents(sign, 1, a.mag+math.Log10(b.mag))
	case a.layer == 1 && b.layer == 1:
		return fromComponents(sign, 1, a.mag+b.mag)
	case a.layer == 2 && (b.layer == 1 || b.layer == 2):
		exp := fromComponents(int(signOf(a.mag)), a.layer-1, math.Abs(a.mag)).
			Add(fromComponents(int(signOf(b.mag)), b.layer-1, math.Abs(b.mag)))
		return fromComponents(sign, exp.layer+1, float64(exp.sign)*exp.mag)
	}
	return nan
}

// Recip returns 1/x. The reciprocal of zero is NaN.
func (x Number) Recip() Number {
	if x.IsNaN() || x.sign == 0 {
		return nan
	}
	if x.layer == 0 {
		return fromComponents(x.sign, 0, 1/x.mag)
	}
	return fromComponents(x.sign, x.layer, -x.mag)
}

// Div returns x/y. Division by zero is NaN.
func (x Number) Div(y Number) Number {
	return x.Mul(y.Recip())
}

// Mod returns x modulo y with the sign of x. Values too large to carry a
// fractional part reduce to zero.
func (x Number) Mod(y Number) Number {
	if x.IsNaN() || y.IsNaN() || y.sign == 0 {
		return nan
	}
	if x.sign == 0 {
		return Zero
	}
	if x.layer == 0 && y.layer == 0 {
		return FromFloat(math.Mod(x.ToFloat(), y.ToFloat()))
	}
	if cmpAbs(x, y) < 0 {
		return x
	}
	return Zero
}

// Floor rounds toward negative infinity.
func (x Number) Floor() Number {
	return x.round(math.Floor)
}

// Ceil rounds toward positive infinity.
func (x Number) Ceil() Number {
	return x.round(math.Ceil)
}

// Round rounds half away from zero.
func (x Number) Round() Number {
	return x.round(math.Round)
}

// Trunc rounds toward zero.
func (x Number) Trunc() Number {
	return x.round(math.Trunc)
}

func (x Number) round(fn func(float64) float64) Number {
	if x.IsNaN() {
		return nan
	}
	if x.layer == 0 {
		return FromFloat(fn(float64(x.sign) * x.mag))
	}
	if x.mag < 0 {
		// |x| is below 1/9e15; only the rounding direction matters.
		return FromFloat(fn(float64(x.sign) * firstNegLayer))
	}
	return x
}
