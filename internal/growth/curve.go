// Package growth prices repeated purchases of a resource tier. Each purchase
// costs more than the last by a constant multiplier, and the multiplier
// steepens once costs cross configured value thresholds. The inverse query,
// how many purchases a balance covers, is answered in closed form.
package growth

import (
	"fmt"
	"math"

	"github.com/osse101/hypernum/internal/bignum"
	"github.com/osse101/hypernum/internal/domain"
)

// Breakpoint steepens a curve. A purchase priced with the multiplier scaled
// by Scale belongs to this regime while that price stays below Threshold.
type Breakpoint struct {
	Threshold bignum.Number
	Scale     float64
}

// regime is one exponential piece of the curve. Purchase indices in
// [lo, end) are priced by it.
type regime struct {
	threshold bignum.Number
	mult      bignum.Number
	logMult   float64
	lo, end   float64
	entry     bignum.Number // cost of purchase index end
}

// Curve is an immutable piecewise-exponential cost function of the number of
// purchases already made.
type Curve struct {
	base       bignum.Number
	multiplier bignum.Number
	logBase    float64
	rate       float64
	regimes    []regime

	// scalingAmount is the first purchase index past every breakpoint.
	scalingAmount float64
}

// NewCurve validates the parameters and precomputes the regime boundaries.
// Breakpoints are ordered from least to most steep. A zero rate means
// DefaultScalingRate.
func NewCurve(base, multiplier bignum.Number, breakpoints []Breakpoint, rate float64) (*Curve, error) {
	if rate == 0 {
		rate = DefaultScalingRate
	}

	logBase := base.Log10().ToFloat()
	switch {
	case base.IsNaN() || !base.Gt(bignum.Zero) || math.IsNaN(logBase) || math.IsInf(logBase, 0):
		return nil, invalidTier(msgBaseCost)
	case multiplier.IsNaN() || !multiplier.Gt(bignum.One):
		return nil, invalidTier(msgMultiplier)
	case len(breakpoints) == 0:
		return nil, invalidTier(msgNoBreakpoints)
	case rate < 1 || math.IsNaN(rate) || math.IsInf(rate, 0):
		return nil, invalidTier(msgScalingRate)
	}

	c := &Curve{
		base:       base,
		multiplier: multiplier,
		logBase:    logBase,
		rate:       rate,
		regimes:    make([]regime, 0, len(breakpoints)),
	}

	prevScale, prevThreshold := 1.0, base
	for i, bp := range breakpoints {
		if !(bp.Scale >= prevScale) || math.IsInf(bp.Scale, 0) {
			return nil, invalidTier(fmt.Sprintf("%s (breakpoint %d)", msgScale, i))
		}
		logThreshold := bp.Threshold.Log10().ToFloat()
		if !bp.Threshold.Gt(prevThreshold) || math.IsInf(logThreshold, 0) {
			return nil, invalidTier(fmt.Sprintf("%s (breakpoint %d)", msgThreshold, i))
		}
		mult := multiplier.Mul(bignum.FromFloat(bp.Scale))
		c.regimes = append(c.regimes, regime{
			threshold: bp.Threshold,
			mult:      mult,
			logMult:   mult.Log10().ToFloat(),
		})
		prevScale, prevThreshold = bp.Scale, bp.Threshold
	}

	lo := 0.0
	for i := range c.regimes {
		r := &c.regimes[i]
		r.lo = lo
		r.end = math.Max(lo, c.regimeEnd(*r))
		lo = r.end
	}
	c.scalingAmount = lo

	for i := range c.regimes {
		c.regimes[i].entry = c.CostOf(bignum.FromFloat(c.regimes[i].end))
	}
	return c, nil
}

func invalidTier(msg string) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidTier, msg)
}

// raw prices a purchase with a fixed multiplier: base * mult^exponent.
func (c *Curve) raw(mult, exponent bignum.Number) bignum.Number {
	return mult.Pow(exponent).Mul(c.base)
}

// regimeEnd is the first purchase index whose raw price under r reaches its
// threshold. The logarithmic estimate is checked against the forward price so
// both directions agree on the boundary.
func (c *Curve) regimeEnd(r regime) float64 {
	logThreshold := r.threshold.Log10().ToFloat()
	n := math.Max(0, math.Ceil((logThreshold-c.logBase)/r.logMult))
	if n >= maxExactCount {
		return n
	}
	for i := 0; i < maxFixups && n > 0 && c.raw(r.mult, bignum.FromFloat(n-1)).Gte(r.threshold); i++ {
		n--
	}
	for i := 0; i < maxFixups && c.raw(r.mult, bignum.FromFloat(n)).Lt(r.threshold); i++ {
		n++
	}
	return n
}

// CostOf returns the price of the purchase made after bought purchases. The
// regimes are tried from least to most steep and the first whose price is
// still below its threshold wins. Past every threshold the exponent itself
// grows by the scaling rate: base * m^(S + (bought-S)*rate), where m is the
// steepest multiplier and S the scaling amount.
func (c *Curve) CostOf(bought bignum.Number) bignum.Number {
	if bought.IsNaN() {
		return bignum.NaN()
	}
	for _, r := range c.regimes {
		if cost := c.raw(r.mult, bought); cost.Lt(r.threshold) {
			return cost
		}
	}
	s := bignum.FromFloat(c.scalingAmount)
	exponent := bought.Sub(s).Mul(bignum.FromFloat(c.rate)).Add(s)
	return c.raw(c.regimes[len(c.regimes)-1].mult, exponent)
}

// MaxAffordable returns the largest purchase index whose price does not
// exceed balance, so CostOf(n) <= balance < CostOf(n+1). A balance below the
// first price yields zero and NaN yields NaN.
//
// The regime is chosen by comparing the balance against the price at each
// regime boundary, then the exponential is inverted with logarithms. Indices
// below 2^53 are settled against CostOf so float rounding in the logarithms
// never shifts the answer.
func (c *Curve) MaxAffordable(balance bignum.Number) bignum.Number {
	if balance.IsNaN() {
		return bignum.NaN()
	}
	if balance.Lt(c.base) {
		return bignum.Zero
	}

	x := balance.Log10().Sub(bignum.FromFloat(c.logBase))
	for _, r := range c.regimes {
		if r.end == r.lo || balance.Gte(r.entry) {
			continue
		}
		n := math.Floor(x.ToFloat() / r.logMult)
		n = math.Min(math.Max(n, r.lo), r.end-1)
		return c.settle(bignum.FromFloat(n), balance)
	}

	last := c.regimes[len(c.regimes)-1]
	s := bignum.FromFloat(c.scalingAmount)
	n := x.Div(bignum.FromFloat(last.logMult)).
		Sub(s).
		Div(bignum.FromFloat(c.rate)).
		Add(s).
		Floor().
		Max(s)
	return c.settle(n, balance)
}

// settle nudges a closed-form index onto the exact boundary.
func (c *Curve) settle(n, balance bignum.Number) bignum.Number {
	if n.Gte(bignum.FromFloat(maxExactCount)) {
		return n
	}
	for i := 0; i < maxFixups && c.CostOf(n.Add(bignum.One)).Lte(balance); i++ {
		n = n.Add(bignum.One)
	}
	for i := 0; i < maxFixups && n.Sign() > 0 && c.CostOf(n).Gt(balance); i++ {
		n = n.Sub(bignum.One)
	}
	return n
}

// BaseCost is the price of the first purchase.
func (c *Curve) BaseCost() bignum.Number {
	return c.base
}

// CostMultiplier is the unscaled growth per purchase.
func (c *Curve) CostMultiplier() bignum.Number {
	return c.multiplier
}

// ScalingRate is the exponent growth past the last breakpoint.
func (c *Curve) ScalingRate() float64 {
	return c.rate
}

// ScalingAmount is the first purchase index priced by the post-threshold
// regime.
func (c *Curve) ScalingAmount() bignum.Number {
	return bignum.FromFloat(c.scalingAmount)
}

// Boundaries returns, per breakpoint, the first purchase index past it.
func (c *Curve) Boundaries() []bignum.Number {
	out := make([]bignum.Number, len(c.regimes))
	for i, r := range c.regimes {
		out[i] = bignum.FromFloat(r.end)
	}
	return out
}
