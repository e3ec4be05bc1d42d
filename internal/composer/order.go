package composer

import (
	"time"

	"github.com/google/uuid"
	"github.com/jpbelardo/tindahan-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// LineItem is one variant row in an order under composition. List and
// original prices are frozen from the catalog at the moment the line is
// created; later catalog changes never retroactively reprice the line.
type LineItem struct {
	VariantID       uuid.UUID       `json:"variant_id"`
	Name            string          `json:"name"`
	SKU             string          `json:"sku"`
	Quantity        int             `json:"quantity"`
	ListPrice       decimal.Decimal `json:"list_price"`
	OriginalPrice   decimal.Decimal `json:"original_price"`
	NegotiatedPrice decimal.Decimal `json:"negotiated_price"`
	Subtotal        decimal.Decimal `json:"subtotal"`
}

// Order is the aggregate being composed. It is owned by exactly one session
// and only ever mutated through the store operations in store.go.
type Order struct {
	ID            uuid.UUID               `json:"id"`
	Status        enums.CompositionStatus `json:"status"`
	Lines         []LineItem              `json:"lines"`
	ScheduledDate *time.Time              `json:"scheduled_date,omitempty"`
	Notes         string                  `json:"notes,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

func newOrder() *Order {
	now := time.Now().UTC()
	return &Order{
		ID:        uuid.New(),
		Status:    enums.CompositionStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// clone returns a deep-enough copy for read-only handoff.
func (o *Order) clone() Order {
	out := *o
	out.Lines = make([]LineItem, len(o.Lines))
	copy(out.Lines, o.Lines)
	return out
}

func (o *Order) findLine(variantID uuid.UUID) int {
	for i := range o.Lines {
		if o.Lines[i].VariantID == variantID {
			return i
		}
	}
	return -1
}

func (o *Order) touch() {
	o.UpdatedAt = time.Now().UTC()
}
