package lots

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Lot statuses mirror article statuses; a cascade writes the same values onto
// member articles.
const (
	StatusDraft     = "draft"
	StatusReady     = "ready"
	StatusScheduled = "scheduled"
	StatusPublished = "published"
	StatusSold      = "sold"
)

func KnownStatus(s string) bool {
	switch s {
	case StatusDraft, StatusReady, StatusScheduled, StatusPublished, StatusSold:
		return true
	}
	return false
}

// Transitions between the non-sold statuses are free in both directions; sold
// is terminal. The source UI allowed reverting sold lots, treated here as an
// oversight rather than intent.
var allowedTransitions = map[string][]string{
	StatusDraft:     {StatusReady, StatusScheduled, StatusPublished, StatusSold},
	StatusReady:     {StatusDraft, StatusScheduled, StatusPublished, StatusSold},
	StatusScheduled: {StatusDraft, StatusReady, StatusPublished, StatusSold},
	StatusPublished: {StatusDraft, StatusReady, StatusScheduled, StatusSold},
	StatusSold:      {},
}

func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("lot status cannot change from %q to %q", e.From, e.To)
}

// SaleDetails accompanies a transition to sold.
type SaleDetails struct {
	SalePrice    decimal.Decimal
	SaleDate     time.Time
	Fees         decimal.Decimal
	ShippingCost decimal.Decimal
	BuyerName    string
	SaleNotes    string
}

func (s SaleDetails) NetProfit() decimal.Decimal {
	return s.SalePrice.Sub(s.Fees).Sub(s.ShippingCost)
}

// ErrSaleDetailsRequired rejects a transition to sold without sale details.
var ErrSaleDetailsRequired = &ValidationError{
	Code:    "SaleDetailsRequired",
	Message: "sale details are required to mark a lot sold",
}

// Effects describes the column updates a status transition produces: one set
// for the lot row and one applied to every member article.
type Effects struct {
	Lot      map[string]interface{}
	Articles map[string]interface{}
}

// TransitionEffects computes the updates for moving a lot to newStatus.
// Publishing stamps the same instant on the lot and all members; selling
// records the sale on the lot and marks members sold; every other status
// touches the status column only.
func TransitionEffects(lot *Lot, newStatus string, now time.Time, sale *SaleDetails) (Effects, error) {
	if !CanTransition(lot.Status, newStatus) {
		return Effects{}, &TransitionError{From: lot.Status, To: newStatus}
	}

	eff := Effects{Lot: map[string]interface{}{"status": newStatus}}
	switch newStatus {
	case StatusPublished:
		eff.Lot["published_at"] = now
		eff.Articles = map[string]interface{}{
			"status":       StatusPublished,
			"published_at": now,
		}
	case StatusSold:
		if sale == nil {
			return Effects{}, ErrSaleDetailsRequired
		}
		eff.Lot["price"] = sale.SalePrice
		eff.Lot["published_at"] = sale.SaleDate
		eff.Lot["sold_at"] = sale.SaleDate
		eff.Lot["fees"] = sale.Fees
		eff.Lot["shipping_cost"] = sale.ShippingCost
		eff.Lot["net_profit"] = sale.NetProfit()
		eff.Lot["buyer_name"] = sale.BuyerName
		eff.Lot["sale_notes"] = sale.SaleNotes
		eff.Articles = map[string]interface{}{"status": StatusSold}
	}
	return eff, nil
}
