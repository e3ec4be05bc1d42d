package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jpbelardo/tindahan-backend/internal/catalog"
	"github.com/jpbelardo/tindahan-backend/pkg/config"
	"github.com/jpbelardo/tindahan-backend/pkg/db"
	"github.com/jpbelardo/tindahan-backend/pkg/db/models"
	"github.com/jpbelardo/tindahan-backend/pkg/logger"
	"github.com/jpbelardo/tindahan-backend/pkg/redis"
)

type seedTier struct {
	MinQty          int             `json:"min_qty"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent int             `json:"discount_percent"`
}

type seedVariant struct {
	Name           string          `json:"name"`
	SKU            string          `json:"sku"`
	ListPrice      decimal.Decimal `json:"list_price"`
	OriginalPrice  decimal.Decimal `json:"original_price"`
	StockAvailable int             `json:"stock_available"`
	DiscountTiers  []seedTier      `json:"discount_tiers"`
}

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	file := flag.String("file", "cmd/seed/variants.json", "path to the variants fixture")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	variants, err := loadFixture(*file)
	if err != nil {
		logg.Error(ctx, "failed to load fixture", err)
		os.Exit(1)
	}

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	if err := seed(dbClient.DB(), variants); err != nil {
		logg.Error(ctx, "seeding failed", err)
		os.Exit(1)
	}

	// Drop the stale cached catalog so the next read reflects the seed.
	if cfg.FeatureFlags.UseCache {
		redisClient, err := redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			logg.Warn(logg.WithField(ctx, "error", err.Error()), "redis unavailable, cache not invalidated")
		} else {
			defer redisClient.Close()
			cache := catalog.NewCache(redisClient, cfg.Catalog.CacheTTL)
			if err := cache.Invalidate(ctx); err != nil {
				logg.Warn(logg.WithField(ctx, "error", err.Error()), "catalog cache invalidation failed")
			}
		}
	}

	logg.Info(logg.WithField(ctx, "variant_count", len(variants)), "catalog seeded")
}

func loadFixture(path string) ([]seedVariant, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var variants []seedVariant
	if err := json.Unmarshal(raw, &variants); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	if len(variants) == 0 {
		return nil, fmt.Errorf("fixture %s contains no variants", path)
	}
	return variants, nil
}

// seed upserts variants by SKU and replaces their discount schedules.
func seed(conn *gorm.DB, variants []seedVariant) error {
	return conn.Transaction(func(tx *gorm.DB) error {
		for _, sv := range variants {
			row := models.ProductVariant{
				ID:             uuid.New(),
				Name:           sv.Name,
				SKU:            sv.SKU,
				ListPrice:      sv.ListPrice,
				StockAvailable: sv.StockAvailable,
			}
			if !sv.OriginalPrice.IsZero() {
				row.OriginalPrice = decimal.NullDecimal{Decimal: sv.OriginalPrice, Valid: true}
			}

			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "sku"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"name", "list_price", "original_price", "stock_available", "updated_at",
				}),
			}).Create(&row).Error; err != nil {
				return fmt.Errorf("upserting variant %s: %w", sv.SKU, err)
			}

			var persisted models.ProductVariant
			if err := tx.Where("sku = ?", sv.SKU).First(&persisted).Error; err != nil {
				return fmt.Errorf("reloading variant %s: %w", sv.SKU, err)
			}

			if err := tx.Where("variant_id = ?", persisted.ID).
				Delete(&models.VariantDiscountTier{}).Error; err != nil {
				return fmt.Errorf("clearing tiers for %s: %w", sv.SKU, err)
			}
			for _, tier := range sv.DiscountTiers {
				if err := tx.Create(&models.VariantDiscountTier{
					ID:              uuid.New(),
					VariantID:       persisted.ID,
					MinQty:          tier.MinQty,
					UnitPrice:       tier.UnitPrice,
					DiscountPercent: tier.DiscountPercent,
				}).Error; err != nil {
					return fmt.Errorf("creating tier for %s: %w", sv.SKU, err)
				}
			}
		}
		return nil
	})
}
