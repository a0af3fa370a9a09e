package growth

import (
	"fmt"
	"sort"
	"sync"

	"github.com/osse101/hypernum/internal/bignum"
	"github.com/osse101/hypernum/internal/domain"
)

// Purchase is the outcome of a buy request.
type Purchase struct {
	Tier      int
	Bought    bignum.Number
	Cost      bignum.Number
	Purchased bool
}

// TierSummary is a read-only view of one tier.
type TierSummary struct {
	Tier           int
	Name           string
	Bought         bignum.Number
	NextCost       bignum.Number
	BaseCost       bignum.Number
	CostMultiplier bignum.Number
	ScalingAmount  bignum.Number
}

// Table owns a set of tiers keyed by tier number. Every operation holds the
// table lock, so each tier has a single writer at a time.
type Table struct {
	mu    sync.Mutex
	tiers map[int]*Tier
	order []int
}

// NewTable builds a table. Tier numbers must be unique.
func NewTable(tiers ...*Tier) (*Table, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidTier, msgEmptyTierTable)
	}
	t := &Table{tiers: make(map[int]*Tier, len(tiers))}
	for _, tier := range tiers {
		if _, exists := t.tiers[tier.id]; exists {
			return nil, fmt.Errorf("%w: %s %d", domain.ErrInvalidTier, msgDuplicateTier, tier.id)
		}
		t.tiers[tier.id] = tier
		t.order = append(t.order, tier.id)
	}
	sort.Ints(t.order)
	return t, nil
}

// get must be called with the lock held.
func (t *Table) get(id int) (*Tier, error) {
	tier, ok := t.tiers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrTierNotFound, id)
	}
	return tier, nil
}

// Curve returns the cost curve of a tier. Curves are immutable.
func (t *Table) Curve(id int) (*Curve, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	tier, err := t.get(id)
	if err != nil {
		return nil, err
	}
	return tier.curve, nil
}

// Cost prices the purchase after bought purchases of a tier.
func (t *Table) Cost(id int, bought bignum.Number) (bignum.Number, error) {
	curve, err := t.Curve(id)
	if err != nil {
		return bignum.NaN(), err
	}
	return curve.CostOf(bought), nil
}

// MaxAffordable returns the largest purchase index of a tier that balance
// covers.
func (t *Table) MaxAffordable(id int, balance bignum.Number) (bignum.Number, error) {
	curve, err := t.Curve(id)
	if err != nil {
		return bignum.NaN(), err
	}
	return curve.MaxAffordable(balance), nil
}

// BuyMax spends balance on as many purchases of a tier as it covers.
func (t *Table) BuyMax(id int, balance bignum.Number) (Purchase, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	tier, err := t.get(id)
	if err != nil {
		return Purchase{}, err
	}
	cost, ok := tier.BuyMax(balance)
	return Purchase{Tier: id, Bought: tier.bought, Cost: cost, Purchased: ok}, nil
}

// Buy raises the purchase count of a tier to target.
func (t *Table) Buy(id int, target bignum.Number) (Purchase, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	tier, err := t.get(id)
	if err != nil {
		return Purchase{}, err
	}
	cost, ok := tier.ApplyPurchase(target)
	return Purchase{Tier: id, Bought: tier.bought, Cost: cost, Purchased: ok}, nil
}

// Reset clears the purchases of a tier.
func (t *Table) Reset(id int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	tier, err := t.get(id)
	if err != nil {
		return err
	}
	tier.Reset()
	return nil
}

// Summaries describes every tier in tier order.
func (t *Table) Summaries() []TierSummary {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]TierSummary, 0, len(t.order))
	for _, id := range t.order {
		tier := t.tiers[id]
		out = append(out, TierSummary{
			Tier:           id,
			Name:           tier.name,
			Bought:         tier.bought,
			NextCost:       tier.NextCost(),
			BaseCost:       tier.curve.BaseCost(),
			CostMultiplier: tier.curve.CostMultiplier(),
			ScalingAmount:  tier.curve.ScalingAmount(),
		})
	}
	return out
}
