package bignum

import "math"

// Log10 returns log10(x). Non-positive input is NaN.
func (x Number) Log10() Number {
	if x.IsNaN() || x.sign <= 0 {
		return nan
	}
	return x.absLog10()
}

// AbsLog10 returns log10(|x|). Zero is NaN.
func (x Number) AbsLog10() Number {
	if x.IsNaN() || x.sign == 0 {
		return nan
	}
	return x.absLog10()
}

func (x Number) absLog10() Number {
	if x.layer > 0 {
		return fromComponents(int(signOf(x.mag)), x.layer-1, math.Abs(x.mag))
	}
	return fromComponents(1, 0, math.Log10(x.mag))
}

// Ln returns the natural logarithm of x.
func (x Number) Ln() Number {
	if x.IsNaN() || x.sign <= 0 {
		return nan
	}
	s := int(signOf(x.mag))
	switch x.layer {
	case 0:
		return fromComponents(1, 0, math.Log(x.mag))
	case 1:
		return fromComponents(s, 0, math.Abs(x.mag)*math.Ln10)
	case 2:
		return fromComponents(s, 1, math.Abs(x.mag)+log10Ln10)
	default:
		return fromComponents(s, x.layer-1, math.Abs(x.mag))
	}
}

// Log2 returns log2(x).
func (x Number) Log2() Number {
	return x.Log(Two)
}

// Log returns the logarithm of x in the given base. A base of one or below
// zero is NaN.
func (x Number) Log(base Number) Number {
	if x.IsNaN() || base.IsNaN() || x.sign <= 0 || base.sign <= 0 || base.Eq(One) {
		return nan
	}
	if x.layer == 0 && base.layer == 0 {
		return FromFloat(math.Log(x.mag) / math.Log(base.mag))
	}
	return x.Log10().Div(base.Log10())
}

// Pow10 returns 10^x.
func (x Number) Pow10() Number {
	if x.IsNaN() {
		return nan
	}
	if x.layer == 0 {
		v := float64(x.sign) * x.mag
		if p := math.Pow(10, v); !math.IsInf(p, 0) && p >= 0.1 {
			return fromComponents(1, 0, p)
		}
		if x.sign == 0 {
			return One
		}
		// layer 1 holds exactly the exponent
		return fromComponents(1, 1, v)
	}
	if x.mag >= 0 {
		if x.sign > 0 {
			return fromComponents(1, x.layer+1, x.mag)
		}
		return fromComponents(1, x.layer+1, -x.mag)
	}
	// |x| is below 1/9e15
	return One
}

// Pow returns x^y. A negative base with a non-integer exponent is NaN, as is
// zero raised to a negative power.
func (x Number) Pow(y Number) Number {
	if x.IsNaN() || y.IsNaN() {
		return nan
	}
	if x.sign == 0 {
		switch {
		case y.sign == 0:
			return One
		case y.sign > 0:
			return Zero
		default:
			return nan
		}
	}
	if x.Eq(One) || y.Eq(One) {
		return x
	}
	if y.sign == 0 {
		return One
	}
	if x.layer == 0 && y.layer == 0 {
		r := math.Pow(float64(x.sign)*x.mag, float64(y.sign)*y.mag)
		if !math.IsNaN(r) && !math.IsInf(r, 0) && r != 0 {
			return FromFloat(r)
		}
	}

	result := x.absLog10().Mul(y).Pow10()
	if x.sign < 0 {
		if !y.IsInteger() {
			return nan
		}
		if math.Mod(math.Abs(y.ToFloat()), 2) == 1 {
			return result.Neg()
		}
	}
	return result
}

// PowF is Pow with a float64 exponent.
func (x Number) PowF(y float64) Number {
	return x.Pow(FromFloat(y))
}

// Sqrt returns the square root of x.
func (x Number) Sqrt() Number {
	return x.PowF(0.5)
}

// Tetrate raises base to itself height times on top of payload:
// base^base^...^payload. Fractional heights use the linear approximation
// base↑↑h = h+1 for -1 < h <= 0, which keeps Tetrate and Slog exact
// inverses. Negative heights take iterated logarithms of payload instead.
func (base Number) Tetrate(height float64, payload Number) Number {
	if base.IsNaN() || payload.IsNaN() || math.IsNaN(height) || math.IsInf(height, 0) {
		return nan
	}
	if height == 0 {
		return payload
	}
	if base.Eq(One) {
		return One
	}
	if height < 0 {
		if payload.Eq(One) && height > -1 {
			return FromFloat(height + 1)
		}
		return payload.IteratedLog(base, -height)
	}

	whole := math.Trunc(height)
	frac := height - whole
	if frac != 0 {
		if payload.Eq(One) {
			whole++
			payload = FromFloat(frac)
		} else {
			payload = payload.LayerAdd(frac, base)
		}
	}

	for i := 0.0; i < whole; i++ {
		payload = base.Pow(payload)
		if payload.IsNaN() {
			return payload
		}
		if payload.layer-base.layer > 3 && payload.mag > 0 {
			remaining := whole - i - 1
			if float64(payload.layer)+remaining > maxLayer {
				return nan
			}
			return Number{sign: payload.sign, layer: payload.layer + int(remaining), mag: payload.mag}
		}
		if i > maxTetrateIterations {
			return payload
		}
	}
	return payload
}

// IteratedExp applies x -> base^x to payload the given number of times.
// It is Tetrate with the base as an argument.
func IteratedExp(base Number, times float64, payload Number) Number {
	return base.Tetrate(times, payload)
}

// IteratedLog applies log_base to x the given number of times. Fractional
// times interpolate through LayerAdd. A logarithm of a non-positive
// intermediate is NaN.
func (x Number) IteratedLog(base Number, times float64) Number {
	if x.IsNaN() || base.IsNaN() || math.IsNaN(times) || math.IsInf(times, 0) {
		return nan
	}
	if times < 0 {
		return base.Tetrate(-times, x)
	}

	result := x
	whole := math.Trunc(times)
	frac := times - whole

	if result.sign > 0 && result.mag > 0 && result.layer-base.layer > 3 {
		loss := math.Min(whole, float64(result.layer-base.layer-3))
		whole -= loss
		result.layer -= int(loss)
	}
	for i := 0.0; i < whole; i++ {
		result = result.Log(base)
		if result.IsNaN() || i > maxTetrateIterations {
			return result
		}
	}
	if frac > 0 {
		result = result.LayerAdd(-frac, base)
	}
	return result
}

// Slog returns the super-logarithm of x: how many times base must be
// iteratedly exponentiated, starting from 1, to reach x. The base must be
// greater than one.
func (x Number) Slog(base Number) Number {
	if x.IsNaN() || base.IsNaN() || base.Lte(One) {
		return nan
	}
	if x.mag < 0 {
		return FromFloat(-1)
	}

	result := 0.0
	cp := x
	if cp.layer-base.layer > 3 {
		loss := cp.layer - base.layer - 3
		result += float64(loss)
		cp.layer -= loss
	}
	for i := 0; i < slogIterations; i++ {
		switch {
		case cp.sign < 0:
			cp = base.Pow(cp)
			result--
		case cp.Lte(One):
			return FromFloat(result + cp.ToFloat() - 1)
		default:
			result++
			cp = cp.Log(base)
		}
	}
	return FromFloat(result)
}

// LayerAdd moves x diff steps up (or down, for negative diff) the tower of
// the given base, measured in super-logarithm units.
func (x Number) LayerAdd(diff float64, base Number) Number {
	dest := x.Slog(base).ToFloat() + diff
	switch {
	case math.IsNaN(dest) || math.IsInf(dest, 0):
		return nan
	case dest >= 0:
		return base.Tetrate(dest, One)
	case dest >= -1:
		return base.Tetrate(dest+1, One).Log(base)
	default:
		return base.Tetrate(dest+2, One).Log(base).Log(base)
	}
}
