package compositions

import (
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/jpbelardo/tindahan-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

type addItemRequest struct {
	VariantID uuid.UUID `json:"variant_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type overridePriceRequest struct {
	UnitPrice decimal.Decimal `json:"unit_price" validate:"required"`
}

type setScheduleRequest struct {
	// Date in YYYY-MM-DD; empty clears the schedule.
	DeliveryDate string `json:"delivery_date"`
	Notes        string `json:"notes" validate:"max=2000"`
}

func (r setScheduleRequest) parsedDate() (*time.Time, error) {
	if r.DeliveryDate == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", r.DeliveryDate)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid delivery date")
	}
	return &parsed, nil
}
