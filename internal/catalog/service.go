package catalog

import (
	"context"
	"fmt"

	"github.com/jpbelardo/tindahan-backend/pkg/db/models"
	pkgerrors "github.com/jpbelardo/tindahan-backend/pkg/errors"
	"github.com/jpbelardo/tindahan-backend/pkg/logger"
)

// Service exposes the validated catalog snapshot to the rest of the engine.
type Service interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
	Refresh(ctx context.Context) (*Snapshot, error)
}

type service struct {
	repo  Repository
	cache *Cache
	logg  *logger.Logger
}

// NewService builds a catalog service backed by the provided stack.
func NewService(repo Repository, cache *Cache, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo, cache: cache, logg: logg}, nil
}

// Snapshot returns the current validated catalog, preferring the cache.
// Cache failures are logged and fall through to the DB.
func (s *service) Snapshot(ctx context.Context) (*Snapshot, error) {
	cached, hit, err := s.cache.GetVariants(ctx)
	if err != nil && s.logg != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "catalog cache read failed")
	}
	if hit {
		snap, err := NewSnapshot(cached)
		if err == nil {
			return snap, nil
		}
		if s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "cached catalog failed validation, reloading")
		}
	}
	return s.Refresh(ctx)
}

// Refresh loads the catalog from the store, validates it, and repopulates the cache.
func (s *service) Refresh(ctx context.Context) (*Snapshot, error) {
	rows, err := s.repo.ListVariants(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load catalog")
	}

	variants := make([]Variant, 0, len(rows))
	for _, row := range rows {
		variants = append(variants, fromModel(row))
	}

	snap, err := NewSnapshot(variants)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDataIntegrity, err, "catalog rejected")
	}

	if err := s.cache.SetVariants(ctx, snap.List()); err != nil && s.logg != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "catalog cache write failed")
	}
	return snap, nil
}

func fromModel(row models.ProductVariant) Variant {
	v := Variant{
		ID:             row.ID,
		Name:           row.Name,
		SKU:            row.SKU,
		ListPrice:      row.ListPrice,
		OriginalPrice:  row.ListPrice,
		StockAvailable: row.StockAvailable,
	}
	if row.OriginalPrice.Valid {
		v.OriginalPrice = row.OriginalPrice.Decimal
	}
	for _, tier := range row.DiscountTiers {
		v.DiscountSchedule = append(v.DiscountSchedule, Tier{
			MinQty:          tier.MinQty,
			UnitPrice:       tier.UnitPrice,
			DiscountPercent: tier.DiscountPercent,
		})
	}
	return v
}
