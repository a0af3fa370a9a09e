// Package overflow softcaps runaway values. Below a start point a value passes
// through unchanged. Above it the value is lifted a few layers up the tower
// of tens, its ratio to the lifted start is raised to a power, and the result
// is lowered back. A power below one tempers growth while keeping the curve
// continuous at the start and increasing everywhere.
package overflow

import (
	"fmt"
	"math"

	"github.com/osse101/hypernum/internal/bignum"
	"github.com/osse101/hypernum/internal/domain"
)

// State records one application of the transform.
type State struct {
	Before bignum.Number
	After  bignum.Number

	// Start is the requested start. Tempering begins at the larger of Start
	// and the smallest value that survives Meta logarithms.
	Start bignum.Number
	Power float64
	Meta  float64
}

// Tempered reports whether the value was past the start and changed.
func (s State) Tempered() bool {
	return !s.Before.IsNaN() && s.Before.Neq(s.After)
}

// New tempers x past start. Meta is the number of layers the value is lifted
// before tempering, at least one; power must be positive.
func New(x, start bignum.Number, power, meta float64) (State, error) {
	if err := validate(start, power, meta); err != nil {
		return State{}, err
	}
	return State{
		Before: x,
		After:  apply(x, start, power, meta),
		Start:  start,
		Power:  power,
		Meta:   meta,
	}, nil
}

// Apply returns the tempered value of x. NaN passes through as NaN.
func Apply(x, start bignum.Number, power, meta float64) (bignum.Number, error) {
	s, err := New(x, start, power, meta)
	if err != nil {
		return bignum.NaN(), err
	}
	return s.After, nil
}

func validate(start bignum.Number, power, meta float64) error {
	switch {
	case start.IsNaN():
		return fmt.Errorf("%w: start is NaN", domain.ErrInvalidOverflow)
	case !(power > 0) || math.IsInf(power, 0):
		return fmt.Errorf("%w: power must be positive, got %v", domain.ErrInvalidOverflow, power)
	case !(meta >= minMeta) || meta > maxMeta:
		return fmt.Errorf("%w: meta must be between %v and %v, got %v", domain.ErrInvalidOverflow, minMeta, maxMeta, meta)
	}
	return nil
}

// EffectiveStart is where tempering begins for a requested start and meta.
func EffectiveStart(start bignum.Number, meta float64) bignum.Number {
	floor := bignum.IteratedExp(bignum.Ten, meta-1, bignum.FromFloat(startFloor))
	return floor.Max(start)
}

func apply(x, start bignum.Number, power, meta float64) bignum.Number {
	if x.IsNaN() {
		return x
	}
	start = EffectiveStart(start, meta)
	if x.Lt(start) {
		return x
	}
	lifted := start.IteratedLog(bignum.Ten, meta)
	ratio := x.IteratedLog(bignum.Ten, meta).Div(lifted)
	return bignum.IteratedExp(bignum.Ten, meta, ratio.PowF(power).Mul(lifted))
}

// Ratio measures how strongly y was tempered from x: the quotient of their
// logarithms taken height times. Values below start report one.
func Ratio(x, y, start bignum.Number, height float64) bignum.Number {
	if x.IsNaN() || y.IsNaN() {
		return bignum.NaN()
	}
	if x.Lt(start) {
		return bignum.One
	}
	return x.Max(bignum.One).IteratedLog(bignum.Ten, height).
		Div(y.Max(bignum.One).IteratedLog(bignum.Ten, height))
}
