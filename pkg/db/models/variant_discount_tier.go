package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VariantDiscountTier captures one bulk-pricing step for a variant.
type VariantDiscountTier struct {
	ID              uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	VariantID       uuid.UUID       `gorm:"column:variant_id;type:uuid;not null;index"`
	MinQty          int             `gorm:"column:min_qty;not null"`
	UnitPrice       decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2);not null"`
	DiscountPercent int             `gorm:"column:discount_percent;not null;default:0"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime"`
}

// TableName overrides the default pluralisation.
func (VariantDiscountTier) TableName() string {
	return "variant_discount_tiers"
}
