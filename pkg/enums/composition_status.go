package enums

import "fmt"

// CompositionStatus tracks the lifecycle of an order composition session.
type CompositionStatus string

const (
	CompositionStatusDraft     CompositionStatus = "draft"
	CompositionStatusConfirmed CompositionStatus = "confirmed"
	CompositionStatusCancelled CompositionStatus = "cancelled"
)

var validCompositionStatuses = []CompositionStatus{
	CompositionStatusDraft,
	CompositionStatusConfirmed,
	CompositionStatusCancelled,
}

// String implements fmt.Stringer.
func (c CompositionStatus) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CompositionStatus.
func (c CompositionStatus) IsValid() bool {
	for _, candidate := range validCompositionStatuses {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCompositionStatus converts raw input into a CompositionStatus.
func ParseCompositionStatus(value string) (CompositionStatus, error) {
	for _, candidate := range validCompositionStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid composition status %q", value)
}
