package growth

import (
	"github.com/osse101/hypernum/internal/bignum"
)

// Tier is a purchasable resource level: a cost curve plus the number of
// purchases made so far. A Tier is not safe for concurrent use; Table
// serializes access to the tiers it owns.
type Tier struct {
	id     int
	name   string
	curve  *Curve
	bought bignum.Number
}

// NewTier creates a tier with nothing bought.
func NewTier(id int, name string, curve *Curve) *Tier {
	return &Tier{id: id, name: name, curve: curve}
}

// ID returns the tier number.
func (t *Tier) ID() int { return t.id }

// Name returns the display name.
func (t *Tier) Name() string { return t.name }

// Curve returns the cost curve.
func (t *Tier) Curve() *Curve { return t.curve }

// Bought returns the number of purchases made.
func (t *Tier) Bought() bignum.Number { return t.bought }

// NextCost is the price of the next purchase.
func (t *Tier) NextCost() bignum.Number {
	return t.curve.CostOf(t.bought)
}

// ApplyPurchase raises the purchase count to target and returns the price of
// the last unit bought, which dominates the geometric total. The count never
// decreases: a target at or below the current count, or NaN, changes nothing
// and reports false.
func (t *Tier) ApplyPurchase(target bignum.Number) (bignum.Number, bool) {
	resolved := target.Sub(t.bought)
	if resolved.IsNaN() || !resolved.Gt(bignum.Zero) {
		return bignum.Zero, false
	}
	cost := t.curve.CostOf(target.Sub(bignum.One))
	t.bought = target
	return cost, true
}

// BuyMax buys every purchase the balance covers and returns the price of the
// last one. It reports false when the balance does not cover the next cost.
func (t *Tier) BuyMax(balance bignum.Number) (bignum.Number, bool) {
	if balance.IsNaN() || balance.Lt(t.NextCost()) {
		return bignum.Zero, false
	}
	return t.ApplyPurchase(t.curve.MaxAffordable(balance).Add(bignum.One))
}

// Reset forgets every purchase.
func (t *Tier) Reset() {
	t.bought = bignum.Zero
}
