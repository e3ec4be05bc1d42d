package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tier is one bulk-pricing step: buy at least MinQty units, pay UnitPrice each.
type Tier struct {
	MinQty          int             `json:"min_qty"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent int             `json:"discount_percent"`
}

// Variant is a purchasable size/SKU of a product. Instances handed out by a
// Snapshot are read-only shared context; composition sessions freeze the
// prices they need instead of holding references.
type Variant struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	SKU              string          `json:"sku"`
	ListPrice        decimal.Decimal `json:"list_price"`
	OriginalPrice    decimal.Decimal `json:"original_price"`
	StockAvailable   int             `json:"stock_available"`
	DiscountSchedule []Tier          `json:"discount_schedule,omitempty"`
}
