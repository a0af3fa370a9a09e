package growth

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/hypernum/internal/bignum"
	"github.com/osse101/hypernum/internal/domain"
)

const tierTablePath = "../../configs/tiers.json"

func loadTestTable(t *testing.T) *Table {
	t.Helper()
	table, err := LoadTable(tierTablePath)
	require.NoError(t, err)
	return table
}

var propertyBalances = []string{
	"1", "4.99", "5", "50", "1000", "123456789", "1e50", "1e300", "1.7e308",
	"1e309", "1e1000", "1e1299", "1e1300", "1e1301", "1e2349", "1e2350", "1e2351",
	"1e3000", "1e4444", "1e5999", "1e6000", "1e6001", "1e10000", "1e123456",
	"ee9", "ee12",
}

func TestTable_MaxAffordable_SoundAndTight(t *testing.T) {
	table := loadTestTable(t)

	for _, summary := range table.Summaries() {
		curve, err := table.Curve(summary.Tier)
		require.NoError(t, err)

		for _, s := range propertyBalances {
			balance := bignum.MustParse(s)
			n := curve.MaxAffordable(balance)
			if balance.Lt(curve.BaseCost()) {
				assert.True(t, n.IsZero(), "tier %d balance %s", summary.Tier, s)
				continue
			}
			assert.True(t, curve.CostOf(n).Lte(balance),
				"tier %d balance %s: cost of %s exceeds it", summary.Tier, s, n)
			assert.True(t, curve.CostOf(n.Add(bignum.One)).Gt(balance),
				"tier %d balance %s: %s is not the maximum", summary.Tier, s, n)
		}
	}
}

func TestTable_MaxAffordable_InvertsCostOnBoundaries(t *testing.T) {
	table := loadTestTable(t)

	for _, summary := range table.Summaries() {
		curve, err := table.Curve(summary.Tier)
		require.NoError(t, err)

		var indices []float64
		for _, b := range curve.Boundaries() {
			end := b.ToFloat()
			indices = append(indices, end-2, end-1, end, end+1)
		}
		indices = append(indices, 0, 1, 10_000, 1e9)

		for _, k := range indices {
			if k < 0 {
				continue
			}
			cost := curve.CostOf(bignum.FromFloat(k))
			assertNumber(t, k, curve.MaxAffordable(cost))
		}
	}
}

func TestTable_CostIsStrictlyIncreasing(t *testing.T) {
	table := loadTestTable(t)

	for _, summary := range table.Summaries() {
		curve, err := table.Curve(summary.Tier)
		require.NoError(t, err)

		limit := summary.ScalingAmount.ToFloat() + 100
		prev := curve.CostOf(bignum.Zero)
		for n := 1.0; n <= limit; n++ {
			cur := curve.CostOf(bignum.FromFloat(n))
			if !cur.Gt(prev) {
				t.Fatalf("tier %d: cost of %v (%s) does not exceed cost of %v (%s)", summary.Tier, n, cur, n-1, prev)
			}
			prev = cur
		}
	}
}

func TestTable_Summaries(t *testing.T) {
	summaries := loadTestTable(t).Summaries()
	require.Len(t, summaries, 8)

	wantScaling := []float64{7322, 4627, 3382, 2665, 833, 689, 562, 456}
	for i, s := range summaries {
		assert.Equal(t, i+1, s.Tier)
		assertNumber(t, wantScaling[i], s.ScalingAmount)
		assert.True(t, s.Bought.IsZero())
		assert.True(t, s.NextCost.Eq(s.BaseCost))
	}
	assert.Equal(t, "first dimension", summaries[0].Name)
	assert.True(t, summaries[4].BaseCost.Eq(bignum.MustParse("e2350")))
}

func TestTable_UnknownTier(t *testing.T) {
	table := loadTestTable(t)

	_, err := table.Cost(9, bignum.Zero)
	assert.True(t, errors.Is(err, domain.ErrTierNotFound))

	_, err = table.MaxAffordable(0, bignum.One)
	assert.True(t, errors.Is(err, domain.ErrTierNotFound))

	_, err = table.BuyMax(42, bignum.One)
	assert.True(t, errors.Is(err, domain.ErrTierNotFound))

	_, err = table.Buy(42, bignum.One)
	assert.True(t, errors.Is(err, domain.ErrTierNotFound))

	assert.True(t, errors.Is(table.Reset(-1), domain.ErrTierNotFound))
}

func TestTable_BuyAndReset(t *testing.T) {
	table := loadTestTable(t)

	p, err := table.BuyMax(2, bignum.FromFloat(50))
	require.NoError(t, err)
	assert.True(t, p.Purchased)
	assertNumber(t, 2, p.Bought)
	assertNumber(t, 45, p.Cost)

	p, err = table.Buy(2, bignum.FromFloat(1))
	require.NoError(t, err)
	assert.False(t, p.Purchased)
	assertNumber(t, 2, p.Bought)

	cost, err := table.Cost(2, bignum.FromFloat(2))
	require.NoError(t, err)
	assertNumber(t, 405, cost)

	require.NoError(t, table.Reset(2))
	assert.True(t, table.Summaries()[1].Bought.IsZero())
}

func TestTable_ConcurrentBuyMax(t *testing.T) {
	table := loadTestTable(t)

	var wg sync.WaitGroup
	purchased := make([]bool, 16)
	for i := range purchased {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := table.BuyMax(1, bignum.FromFloat(1e6))
			assert.NoError(t, err)
			purchased[i] = p.Purchased
		}(i)
	}
	wg.Wait()

	// 3^12 <= 1e6 < 3^13: the first caller buys thirteen, the rest find nothing left
	count := 0
	for _, ok := range purchased {
		if ok {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assertNumber(t, 13, table.Summaries()[0].Bought)
}

func TestNewTable_Invalid(t *testing.T) {
	_, err := NewTable()
	assert.True(t, errors.Is(err, domain.ErrInvalidTier))

	c := newTestCurve(t, "1", "3", steepening(), 4)
	_, err = NewTable(NewTier(1, "a", c), NewTier(1, "b", c))
	assert.True(t, errors.Is(err, domain.ErrInvalidTier))
}
