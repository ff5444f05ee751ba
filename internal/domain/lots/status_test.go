package lots

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	t.Run("non-sold statuses move freely in both directions", func(t *testing.T) {
		free := []string{StatusDraft, StatusReady, StatusScheduled, StatusPublished}
		for _, from := range free {
			for _, to := range free {
				if from == to {
					continue
				}
				assert.True(t, CanTransition(from, to), "%s -> %s", from, to)
			}
			assert.True(t, CanTransition(from, StatusSold), "%s -> sold", from)
		}
	})

	t.Run("sold is terminal", func(t *testing.T) {
		for _, to := range []string{StatusDraft, StatusReady, StatusScheduled, StatusPublished, StatusSold} {
			assert.False(t, CanTransition(StatusSold, to), "sold -> %s", to)
		}
	})

	t.Run("unknown statuses never transition", func(t *testing.T) {
		assert.False(t, CanTransition("archived", StatusDraft))
		assert.False(t, CanTransition(StatusDraft, "archived"))
	})
}

func TestTransitionEffects(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	t.Run("publishing stamps the same instant on lot and members", func(t *testing.T) {
		lot := &Lot{Status: StatusReady}
		eff, err := TransitionEffects(lot, StatusPublished, now, nil)
		require.NoError(t, err)

		assert.Equal(t, StatusPublished, eff.Lot["status"])
		assert.Equal(t, now, eff.Lot["published_at"])
		require.NotNil(t, eff.Articles)
		assert.Equal(t, StatusPublished, eff.Articles["status"])
		assert.Equal(t, now, eff.Articles["published_at"])
	})

	t.Run("selling records the sale and marks members sold", func(t *testing.T) {
		saleDate := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
		sale := &SaleDetails{
			SalePrice:    decimal.NewFromInt(120),
			SaleDate:     saleDate,
			Fees:         decimal.NewFromInt(10),
			ShippingCost: decimal.NewFromInt(5),
			BuyerName:    "anna",
		}
		lot := &Lot{Status: StatusPublished}
		eff, err := TransitionEffects(lot, StatusSold, now, sale)
		require.NoError(t, err)

		assert.Equal(t, StatusSold, eff.Lot["status"])
		assert.Equal(t, saleDate, eff.Lot["published_at"])
		assert.Equal(t, saleDate, eff.Lot["sold_at"])
		profit, okCast := eff.Lot["net_profit"].(decimal.Decimal)
		require.True(t, okCast)
		assert.True(t, profit.Equal(decimal.NewFromInt(105)), "got %s", profit)

		require.NotNil(t, eff.Articles)
		assert.Equal(t, StatusSold, eff.Articles["status"])
		assert.NotContains(t, eff.Articles, "sold_at")
	})

	t.Run("selling without sale details is rejected", func(t *testing.T) {
		lot := &Lot{Status: StatusPublished}
		_, err := TransitionEffects(lot, StatusSold, now, nil)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("other statuses touch the status column only", func(t *testing.T) {
		for _, to := range []string{StatusDraft, StatusReady, StatusScheduled} {
			lot := &Lot{Status: StatusPublished}
			eff, err := TransitionEffects(lot, to, now, nil)
			require.NoError(t, err)
			assert.Equal(t, map[string]interface{}{"status": to}, eff.Lot, to)
			assert.Nil(t, eff.Articles, to)
		}
	})

	t.Run("disallowed transition is reported with both states", func(t *testing.T) {
		lot := &Lot{Status: StatusSold}
		_, err := TransitionEffects(lot, StatusDraft, now, nil)
		var terr *TransitionError
		require.ErrorAs(t, err, &terr)
		assert.Equal(t, StatusSold, terr.From)
		assert.Equal(t, StatusDraft, terr.To)
	})
}
