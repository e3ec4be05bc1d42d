package catalog

import (
	"fmt"

	pkgerrors "github.com/jpbelardo/tindahan-backend/pkg/errors"
	"go.uber.org/multierr"
)

// ValidateVariant rejects malformed catalog entries at construction time.
// A violated schedule is a data-quality error from the product-data
// collaborator, never something to silently reprice around.
func ValidateVariant(v Variant) error {
	var errs error

	if v.ListPrice.Sign() <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("variant %s: list price must be positive, got %s", v.SKU, v.ListPrice))
	}
	if v.OriginalPrice.Sign() <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("variant %s: original price must be positive, got %s", v.SKU, v.OriginalPrice))
	}
	if v.OriginalPrice.LessThan(v.ListPrice) {
		errs = multierr.Append(errs, fmt.Errorf("variant %s: original price %s is below list price %s", v.SKU, v.OriginalPrice, v.ListPrice))
	}
	if v.StockAvailable < 0 {
		errs = multierr.Append(errs, fmt.Errorf("variant %s: stock available cannot be negative", v.SKU))
	}

	prevQty := 0
	prevPrice := v.ListPrice
	for i, tier := range v.DiscountSchedule {
		if tier.MinQty <= 0 {
			errs = multierr.Append(errs, fmt.Errorf("variant %s tier %d: min qty must be positive", v.SKU, i))
		}
		if tier.MinQty <= prevQty {
			errs = multierr.Append(errs, fmt.Errorf("variant %s tier %d: min qty %d does not strictly increase", v.SKU, i, tier.MinQty))
		}
		if tier.UnitPrice.Sign() <= 0 {
			errs = multierr.Append(errs, fmt.Errorf("variant %s tier %d: unit price must be positive", v.SKU, i))
		}
		if i > 0 && tier.UnitPrice.GreaterThanOrEqual(prevPrice) {
			errs = multierr.Append(errs, fmt.Errorf("variant %s tier %d: unit price %s does not strictly decrease", v.SKU, i, tier.UnitPrice))
		}
		if tier.DiscountPercent < 0 || tier.DiscountPercent > 100 {
			errs = multierr.Append(errs, fmt.Errorf("variant %s tier %d: discount percent %d out of range", v.SKU, i, tier.DiscountPercent))
		}
		prevQty = tier.MinQty
		prevPrice = tier.UnitPrice
	}

	if errs != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDataIntegrity, errs, fmt.Sprintf("variant %s rejected", v.SKU))
	}
	return nil
}
