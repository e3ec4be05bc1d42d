package catalog

import (
	"github.com/google/uuid"
	"go.uber.org/multierr"
)

// Snapshot is an immutable, validated view of the catalog. Sessions read from
// it concurrently without coordination; nothing mutates it after construction.
type Snapshot struct {
	byID  map[uuid.UUID]Variant
	order []uuid.UUID
}

// NewSnapshot validates every entry and builds the lookup. All rejected
// entries are reported together so a bad catalog load fails loudly once.
func NewSnapshot(variants []Variant) (*Snapshot, error) {
	var errs error
	byID := make(map[uuid.UUID]Variant, len(variants))
	order := make([]uuid.UUID, 0, len(variants))

	for _, v := range variants {
		if v.OriginalPrice.IsZero() {
			v.OriginalPrice = v.ListPrice
		}
		if err := ValidateVariant(v); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if _, dup := byID[v.ID]; dup {
			continue
		}
		byID[v.ID] = v
		order = append(order, v.ID)
	}

	if errs != nil {
		return nil, errs
	}
	return &Snapshot{byID: byID, order: order}, nil
}

// Get returns the variant for the given id.
func (s *Snapshot) Get(id uuid.UUID) (Variant, bool) {
	if s == nil {
		return Variant{}, false
	}
	v, ok := s.byID[id]
	return v, ok
}

// List returns the variants in catalog order.
func (s *Snapshot) List() []Variant {
	if s == nil {
		return nil
	}
	out := make([]Variant, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Len reports the number of variants.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.byID)
}
