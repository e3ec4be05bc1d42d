package composer

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jpbelardo/tindahan-backend/internal/catalog"
	"github.com/jpbelardo/tindahan-backend/internal/pricing"
	pkgerrors "github.com/jpbelardo/tindahan-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

// Store operations are the only way order lines change. Every quantity
// change re-resolves the negotiated price from the variant's schedule, so a
// manually overridden price survives only until the next quantity change.

// AddOrMerge appends a new line for the variant, or folds the quantity into
// the existing line when one is already present. Either way the negotiated
// price is re-resolved for the combined quantity.
func (o *Order) AddOrMerge(v catalog.Variant, qty int) error {
	if qty <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("quantity must be positive, got %d", qty))
	}

	idx := o.findLine(v.ID)
	if idx == -1 {
		o.Lines = append(o.Lines, LineItem{
			VariantID:     v.ID,
			Name:          v.Name,
			SKU:           v.SKU,
			ListPrice:     v.ListPrice,
			OriginalPrice: v.OriginalPrice,
		})
		idx = len(o.Lines) - 1
	}

	line := &o.Lines[idx]
	line.Quantity += qty
	o.repriceLine(line, v)
	o.touch()
	return nil
}

// SetQuantity replaces the line's quantity and re-resolves its price.
// A quantity of zero or less removes the line. Unknown variant ids are
// ignored so stale UI actions stay harmless.
func (o *Order) SetQuantity(v catalog.Variant, qty int) {
	idx := o.findLine(v.ID)
	if idx == -1 {
		return
	}
	if qty <= 0 {
		o.removeAt(idx)
		o.touch()
		return
	}

	line := &o.Lines[idx]
	line.Quantity = qty
	o.repriceLine(line, v)
	o.touch()
}

// SetNegotiatedPrice pins a manually agreed unit price on the line. This is
// the one mutation the engine never reverts on its own; the pin holds until
// the line's quantity changes again.
func (o *Order) SetNegotiatedPrice(variantID uuid.UUID, price decimal.Decimal) error {
	if price.Sign() < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "negotiated price cannot be negative")
	}
	idx := o.findLine(variantID)
	if idx == -1 {
		return nil
	}

	line := &o.Lines[idx]
	line.NegotiatedPrice = price
	line.Subtotal = price.Mul(decimal.NewFromInt(int64(line.Quantity)))
	o.touch()
	return nil
}

// Remove drops the line if present. Removing an absent line is a no-op, so
// double-clicks and retried requests converge on the same state.
func (o *Order) Remove(variantID uuid.UUID) {
	idx := o.findLine(variantID)
	if idx == -1 {
		return
	}
	o.removeAt(idx)
	o.touch()
}

// SetSchedule records the requested delivery date and free-form notes.
func (o *Order) SetSchedule(date *time.Time, notes string) {
	o.ScheduledDate = date
	o.Notes = notes
	o.touch()
}

func (o *Order) repriceLine(line *LineItem, v catalog.Variant) {
	quote := pricing.Resolve(v, line.Quantity)
	line.NegotiatedPrice = quote.UnitPrice
	line.Subtotal = quote.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
}

func (o *Order) removeAt(idx int) {
	o.Lines = append(o.Lines[:idx], o.Lines[idx+1:]...)
}
