package composer

import (
	"github.com/jpbelardo/tindahan-backend/pkg/enums"
)

// GateResult says whether the order may be confirmed and, when it may not,
// every reason blocking it. Callers get the full list at once rather than
// fixing one problem per round trip.
type GateResult struct {
	Submittable bool                     `json:"submittable"`
	Reasons     []enums.ValidationReason `json:"reasons,omitempty"`
}

// EvaluateGate is a pure check over the order state. It never mutates the
// order and produces identical results for identical inputs.
func EvaluateGate(o *Order) GateResult {
	var reasons []enums.ValidationReason

	valid := 0
	nonPositive := false
	for i := range o.Lines {
		if o.Lines[i].Quantity > 0 {
			valid++
		} else {
			nonPositive = true
		}
	}

	if valid == 0 {
		reasons = append(reasons, enums.ValidationReasonNoLineItems)
	}
	if o.ScheduledDate == nil {
		reasons = append(reasons, enums.ValidationReasonMissingSchedule)
	}
	if nonPositive {
		reasons = append(reasons, enums.ValidationReasonNonPositiveQty)
	}

	return GateResult{Submittable: len(reasons) == 0, Reasons: reasons}
}
