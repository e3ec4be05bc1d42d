package composer

import (
	"github.com/jpbelardo/tindahan-backend/internal/catalog"
	"github.com/jpbelardo/tindahan-backend/internal/pricing"
	"github.com/jpbelardo/tindahan-backend/pkg/enums"
	"github.com/jpbelardo/tindahan-backend/pkg/money"
	"github.com/shopspring/decimal"
)

// LineWarning is an advisory attached to a line view. Warnings never block
// composition; the validation gate decides what blocks.
type LineWarning struct {
	Type    enums.LineWarningType `json:"type"`
	Message string                `json:"message"`
}

// LineView is a line item decorated with the display-only data the order
// screen needs: the discount badge, stock warnings and the next-tier nudge.
type LineView struct {
	LineItem
	DiscountBadge *int                `json:"discount_badge,omitempty"`
	Warnings      []LineWarning       `json:"warnings,omitempty"`
	NextTier      *pricing.Suggestion `json:"next_tier,omitempty"`
}

// Summary is the full financial picture of an order in composition.
type Summary struct {
	Order              Order                    `json:"order"`
	Lines              []LineView               `json:"lines"`
	GrandTotal         decimal.Decimal          `json:"grand_total"`
	GrandOriginalTotal decimal.Decimal          `json:"grand_original_total"`
	TotalSavings       decimal.Decimal          `json:"total_savings"`
	SavingsPercent     int                      `json:"savings_percent"`
	Submittable        bool                     `json:"submittable"`
	Reasons            []enums.ValidationReason `json:"reasons,omitempty"`
}

// Summarize aggregates the order against the current catalog snapshot.
// Totals come from the frozen line prices; warnings and next-tier hints come
// from live catalog data so stock levels and schedule edits show up
// immediately. A variant missing from the snapshot simply gets no hints.
func Summarize(o *Order, snap *catalog.Snapshot) Summary {
	out := Summary{
		Order:              o.clone(),
		Lines:              make([]LineView, 0, len(o.Lines)),
		GrandTotal:         decimal.Zero,
		GrandOriginalTotal: decimal.Zero,
	}

	for i := range o.Lines {
		line := o.Lines[i]
		view := LineView{LineItem: line}

		out.GrandTotal = out.GrandTotal.Add(line.Subtotal)
		qty := decimal.NewFromInt(int64(line.Quantity))
		out.GrandOriginalTotal = out.GrandOriginalTotal.Add(line.OriginalPrice.Mul(qty))

		if pct := money.Percent(line.OriginalPrice.Sub(line.NegotiatedPrice), line.OriginalPrice); pct > 0 {
			view.DiscountBadge = &pct
		}
		if line.NegotiatedPrice.GreaterThan(line.OriginalPrice) {
			view.Warnings = append(view.Warnings, LineWarning{
				Type:    enums.LineWarningTypeAboveOriginal,
				Message: "negotiated price is above the original price",
			})
		}

		if v, ok := snap.Get(line.VariantID); ok {
			if line.Quantity > v.StockAvailable {
				view.Warnings = append(view.Warnings, LineWarning{
					Type:    enums.LineWarningTypeInsufficientStock,
					Message: "requested quantity exceeds available stock",
				})
			}
			view.NextTier = pricing.NextTier(v, line.Quantity)
		}

		out.Lines = append(out.Lines, view)
	}

	out.TotalSavings = money.NonNegative(out.GrandOriginalTotal.Sub(out.GrandTotal))
	out.SavingsPercent = money.Percent(out.TotalSavings, out.GrandOriginalTotal)

	gate := EvaluateGate(o)
	out.Submittable = gate.Submittable
	out.Reasons = gate.Reasons
	return out
}
