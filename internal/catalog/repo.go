package catalog

import (
	"context"

	"github.com/jpbelardo/tindahan-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository reads catalog rows from the product-data store.
type Repository interface {
	ListVariants(ctx context.Context) ([]models.ProductVariant, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a catalog repository over the shared connection.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListVariants(ctx context.Context) ([]models.ProductVariant, error) {
	var rows []models.ProductVariant
	err := r.db.WithContext(ctx).
		Preload("DiscountTiers", func(db *gorm.DB) *gorm.DB {
			return db.Order("min_qty ASC")
		}).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
