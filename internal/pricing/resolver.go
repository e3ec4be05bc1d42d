package pricing

import (
	"github.com/jpbelardo/tindahan-backend/internal/catalog"
	"github.com/jpbelardo/tindahan-backend/pkg/money"
	"github.com/shopspring/decimal"
)

// Quote is the resolved per-unit price for a quantity.
type Quote struct {
	UnitPrice       decimal.Decimal
	DiscountPercent int
}

// Suggestion points at the first tier the quantity has not reached yet,
// used for "buy N more to save ₱X" guidance.
type Suggestion struct {
	MinQty      int
	UnitPrice   decimal.Decimal
	QtyToUnlock int
	Savings     decimal.Decimal
}

// Resolve maps (variant, quantity) to the unit price actually charged.
// With no schedule, or no tier reached, the list price applies. Otherwise the
// buyer always gets the deepest tier the quantity has crossed; tier values are
// returned verbatim, never interpolated.
func Resolve(v catalog.Variant, qty int) Quote {
	quote := Quote{UnitPrice: v.ListPrice, DiscountPercent: 0}
	if qty <= 0 {
		return quote
	}
	for _, tier := range v.DiscountSchedule {
		if tier.MinQty > qty {
			break
		}
		quote.UnitPrice = tier.UnitPrice
		quote.DiscountPercent = tier.DiscountPercent
	}
	return quote
}

// NextTier returns the first schedule entry above qty, or nil when the
// quantity already meets or exceeds the highest tier. Savings reflect what
// the CURRENT quantity would save at that tier's unit price.
func NextTier(v catalog.Variant, qty int) *Suggestion {
	if qty <= 0 {
		return nil
	}
	for _, tier := range v.DiscountSchedule {
		if tier.MinQty > qty {
			perUnit := money.NonNegative(v.ListPrice.Sub(tier.UnitPrice))
			return &Suggestion{
				MinQty:      tier.MinQty,
				UnitPrice:   tier.UnitPrice,
				QtyToUnlock: tier.MinQty - qty,
				Savings:     perUnit.Mul(decimal.NewFromInt(int64(qty))),
			}
		}
	}
	return nil
}
