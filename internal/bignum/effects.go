package bignum

// Effect is a multiplier or exponent source. EffectValue returns the current
// value and whether the effect applies at all; inapplicable effects are
// skipped when folding.
type Effect interface {
	EffectValue() (Number, bool)
}

// EffectFunc adapts a function to Effect.
type EffectFunc func() (Number, bool)

// EffectValue calls f.
func (f EffectFunc) EffectValue() (Number, bool) {
	return f()
}

// Constant is an Effect that always applies with a fixed value.
type Constant Number

// EffectValue returns the constant.
func (c Constant) EffectValue() (Number, bool) {
	return Number(c), true
}

// TimesEffectsOf multiplies the applicable effects together, left to right,
// starting from one.
func TimesEffectsOf(effects ...Effect) Number {
	return One.TimesEffectsOf(effects...)
}

// TimesEffectsOf folds the applicable effects into x by multiplication in
// argument order.
func (x Number) TimesEffectsOf(effects ...Effect) Number {
	result := x
	for _, e := range effects {
		if v, ok := value(e); ok {
			result = result.Mul(v)
		}
	}
	return result
}

// PowEffectsOf raises base by each applicable effect in turn.
func PowEffectsOf(base Number, effects ...Effect) Number {
	result := base
	for _, e := range effects {
		if v, ok := value(e); ok {
			result = result.Pow(v)
		}
	}
	return result
}

// PowEffectOf raises x by a single effect, or returns x unchanged when the
// effect does not apply.
func (x Number) PowEffectOf(effect Effect) Number {
	return PowEffectsOf(x, effect)
}

func value(e Effect) (Number, bool) {
	if e == nil {
		return Number{}, false
	}
	return e.EffectValue()
}
