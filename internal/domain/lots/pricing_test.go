package lots

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prices(values ...float64) []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(values))
	for _, v := range values {
		out = append(out, decimal.NewFromFloat(v))
	}
	return out
}

func TestDerivePricing(t *testing.T) {
	t.Run("original total is the sum of article prices", func(t *testing.T) {
		p := DerivePricing(prices(10, 25.50, 14.50), decimal.NewFromInt(40))
		assert.True(t, p.OriginalTotal.Equal(decimal.NewFromInt(50)), "got %s", p.OriginalTotal)
	})

	t.Run("discount from total and lot price", func(t *testing.T) {
		p := DerivePricing(prices(60, 40), decimal.NewFromInt(80))
		assert.Equal(t, 20, p.DiscountPercent)
		assert.False(t, p.Markup())
	})

	t.Run("discount rounds to nearest percent", func(t *testing.T) {
		// (90 - 70) / 90 * 100 = 22.22...
		p := DerivePricing(prices(90), decimal.NewFromInt(70))
		assert.Equal(t, 22, p.DiscountPercent)
	})

	t.Run("zero lot price yields zero discount", func(t *testing.T) {
		p := DerivePricing(prices(10, 20), decimal.Zero)
		assert.Equal(t, 0, p.DiscountPercent)
	})

	t.Run("empty selection yields zero discount for any price", func(t *testing.T) {
		p := DerivePricing(nil, decimal.NewFromInt(99))
		assert.Equal(t, 0, p.DiscountPercent)
		assert.True(t, p.OriginalTotal.IsZero())
	})

	t.Run("lot priced above total is a markup, not clamped", func(t *testing.T) {
		p := DerivePricing(prices(100), decimal.NewFromInt(120))
		assert.Equal(t, -20, p.DiscountPercent)
		assert.True(t, p.Markup())
	})
}

func TestPriceFromDiscount(t *testing.T) {
	t.Run("derives the discounted price", func(t *testing.T) {
		price := PriceFromDiscount(decimal.NewFromInt(200), 25)
		assert.True(t, price.Equal(decimal.NewFromInt(150)), "got %s", price)
	})

	t.Run("zero discount keeps the total", func(t *testing.T) {
		price := PriceFromDiscount(decimal.NewFromInt(73), 0)
		assert.True(t, price.Equal(decimal.NewFromInt(73)), "got %s", price)
	})

	t.Run("round trips within one percent", func(t *testing.T) {
		totals := []int64{37, 100, 149, 250, 999}
		for _, total := range totals {
			orig := decimal.NewFromInt(total)
			for discount := 0; discount <= 50; discount += 5 {
				price := PriceFromDiscount(orig, discount)
				require.False(t, price.IsZero(), "total=%d discount=%d", total, discount)

				got := DerivePricing([]decimal.Decimal{orig}, price).DiscountPercent
				assert.InDelta(t, discount, got, 1, "total=%d discount=%d price=%s", total, discount, price)
			}
		}
	})
}
