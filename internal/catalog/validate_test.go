package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	pkgerrors "github.com/jpbelardo/tindahan-backend/pkg/errors"
	"github.com/jpbelardo/tindahan-backend/pkg/money"
)

func validVariant() Variant {
	return Variant{
		ID:             uuid.New(),
		Name:           "Premium Dog Food 5kg",
		SKU:            "DOG-5KG",
		ListPrice:      money.MustParse("450"),
		OriginalPrice:  money.MustParse("500"),
		StockAvailable: 40,
		DiscountSchedule: []Tier{
			{MinQty: 1, UnitPrice: money.MustParse("450"), DiscountPercent: 0},
			{MinQty: 5, UnitPrice: money.MustParse("428"), DiscountPercent: 5},
			{MinQty: 10, UnitPrice: money.MustParse("405"), DiscountPercent: 10},
		},
	}
}

func TestValidateVariantAccepts(t *testing.T) {
	t.Parallel()

	if err := ValidateVariant(validVariant()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateVariantRejectsNonMonotonicQty(t *testing.T) {
	t.Parallel()

	v := validVariant()
	v.DiscountSchedule[2].MinQty = 5

	err := ValidateVariant(v)
	if err == nil {
		t.Fatal("expected rejection")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeDataIntegrity {
		t.Fatalf("expected data integrity code, got %v", err)
	}
	if !strings.Contains(err.Error(), "rejected") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestValidateVariantRejectsRisingTierPrice(t *testing.T) {
	t.Parallel()

	v := validVariant()
	v.DiscountSchedule[2].UnitPrice = money.MustParse("440")

	if err := ValidateVariant(v); err == nil {
		t.Fatal("expected rejection for non-decreasing unit price")
	}
}

func TestValidateVariantRejectsNegativePrices(t *testing.T) {
	t.Parallel()

	v := validVariant()
	v.ListPrice = money.MustParse("-1")
	v.OriginalPrice = money.MustParse("-1")

	if err := ValidateVariant(v); err == nil {
		t.Fatal("expected rejection for negative prices")
	}
}

func TestValidateVariantRejectsOriginalBelowList(t *testing.T) {
	t.Parallel()

	v := validVariant()
	v.OriginalPrice = money.MustParse("400")

	if err := ValidateVariant(v); err == nil {
		t.Fatal("expected rejection when original price undercuts list price")
	}
}

func TestValidateVariantCollectsAllViolations(t *testing.T) {
	t.Parallel()

	v := validVariant()
	v.DiscountSchedule[1].MinQty = 1
	v.DiscountSchedule[1].DiscountPercent = 140

	err := ValidateVariant(v)
	if err == nil {
		t.Fatal("expected rejection")
	}
	cause := errors.Unwrap(err)
	if cause == nil {
		t.Fatal("expected wrapped violation list")
	}
	if !strings.Contains(cause.Error(), "strictly increase") {
		t.Fatalf("missing qty violation in: %v", cause)
	}
	if !strings.Contains(cause.Error(), "out of range") {
		t.Fatalf("missing percent violation in: %v", cause)
	}
}
