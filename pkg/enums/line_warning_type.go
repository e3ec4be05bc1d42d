package enums

// LineWarningType classifies advisory warnings attached to a line item.
// Warnings never block a mutation or submission.
type LineWarningType string

const (
	LineWarningTypeInsufficientStock LineWarningType = "insufficient_stock"
	LineWarningTypeAboveOriginal     LineWarningType = "above_original_price"
)

// String implements fmt.Stringer.
func (l LineWarningType) String() string {
	return string(l)
}
