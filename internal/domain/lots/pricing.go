package lots

import "github.com/shopspring/decimal"

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

type Pricing struct {
	OriginalTotal   decimal.Decimal `json:"original_total"`
	DiscountPercent int             `json:"discount_percent"`
}

// Markup reports whether the lot is priced above the sum of its articles.
func (p Pricing) Markup() bool { return p.DiscountPercent < 0 }

// DerivePricing sums the member article prices and derives the discount the
// lot price represents against that total. A zero total or zero lot price
// yields a zero discount; a lot priced above the total yields a negative one.
func DerivePricing(articlePrices []decimal.Decimal, lotPrice decimal.Decimal) Pricing {
	total := decimal.Zero
	for _, p := range articlePrices {
		total = total.Add(p)
	}

	if total.IsZero() || lotPrice.IsZero() {
		return Pricing{OriginalTotal: total}
	}

	pct := total.Sub(lotPrice).Div(total).Mul(hundred).Round(0)
	return Pricing{
		OriginalTotal:   total,
		DiscountPercent: int(pct.IntPart()),
	}
}

// PriceFromDiscount derives a lot price from a discount percentage. Both this
// and DerivePricing round, so the pair does not round-trip exactly; the result
// lands within a percentage point.
func PriceFromDiscount(originalTotal decimal.Decimal, discountPercent int) decimal.Decimal {
	factor := one.Sub(decimal.NewFromInt(int64(discountPercent)).Div(hundred))
	return originalTotal.Mul(factor).Round(0)
}
