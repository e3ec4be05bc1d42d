package enums

// ValidationReason identifies why an order is not submittable.
type ValidationReason string

const (
	ValidationReasonNoLineItems     ValidationReason = "no_valid_line_items"
	ValidationReasonMissingSchedule ValidationReason = "missing_delivery_date"
	ValidationReasonNonPositiveQty  ValidationReason = "quantity_not_positive"
)

// String implements fmt.Stringer.
func (v ValidationReason) String() string {
	return string(v)
}

// Message returns the UI-facing description of the failed condition.
func (v ValidationReason) Message() string {
	switch v {
	case ValidationReasonNoLineItems:
		return "no valid line items"
	case ValidationReasonMissingSchedule:
		return "missing delivery date"
	case ValidationReasonNonPositiveQty:
		return "every line quantity must be positive"
	default:
		return string(v)
	}
}
