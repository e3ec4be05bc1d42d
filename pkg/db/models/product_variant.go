package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductVariant is a sellable size/SKU row in the catalog tables.
type ProductVariant struct {
	ID             uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name           string                `gorm:"column:name;not null"`
	SKU            string                `gorm:"column:sku;uniqueIndex;not null"`
	ListPrice      decimal.Decimal       `gorm:"column:list_price;type:numeric(12,2);not null"`
	OriginalPrice  decimal.NullDecimal   `gorm:"column:original_price;type:numeric(12,2)"`
	StockAvailable int                   `gorm:"column:stock_available;not null;default:0"`
	DiscountTiers  []VariantDiscountTier `gorm:"foreignKey:VariantID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName overrides the default pluralisation.
func (ProductVariant) TableName() string {
	return "product_variants"
}
