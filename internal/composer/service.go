package composer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jpbelardo/tindahan-backend/internal/catalog"
	"github.com/jpbelardo/tindahan-backend/pkg/config"
	"github.com/jpbelardo/tindahan-backend/pkg/enums"
	pkgerrors "github.com/jpbelardo/tindahan-backend/pkg/errors"
	"github.com/jpbelardo/tindahan-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// Service owns the composition sessions. Each session wraps exactly one
// draft order; all mutations run under the service lock so a session's order
// is never edited concurrently.
type Service interface {
	StartSession(ctx context.Context) (*Summary, error)
	GetSummary(ctx context.Context, sessionID uuid.UUID) (*Summary, error)
	AddItem(ctx context.Context, sessionID, variantID uuid.UUID, qty int) (*Summary, error)
	SetQuantity(ctx context.Context, sessionID, variantID uuid.UUID, qty int) (*Summary, error)
	OverridePrice(ctx context.Context, sessionID, variantID uuid.UUID, price decimal.Decimal) (*Summary, error)
	RemoveItem(ctx context.Context, sessionID, variantID uuid.UUID) (*Summary, error)
	SetSchedule(ctx context.Context, sessionID uuid.UUID, date *time.Time, notes string) (*Summary, error)
	Confirm(ctx context.Context, sessionID uuid.UUID) (*Summary, error)
	Cancel(ctx context.Context, sessionID uuid.UUID) error
}

type session struct {
	order     *Order
	touchedAt time.Time
}

type service struct {
	catalog  catalog.Service
	sink     SubmissionSink
	logg     *logger.Logger
	ttl      time.Duration
	maxLines int

	mu       sync.Mutex
	sessions map[uuid.UUID]*session
}

// NewService wires the session registry to the catalog and the submission sink.
func NewService(cat catalog.Service, sink SubmissionSink, cfg config.CompositionConfig, logg *logger.Logger) (Service, error) {
	if cat == nil {
		return nil, fmt.Errorf("catalog service required")
	}
	if sink == nil {
		return nil, fmt.Errorf("submission sink required")
	}
	return &service{
		catalog:  cat,
		sink:     sink,
		logg:     logg,
		ttl:      cfg.SessionTTL,
		maxLines: cfg.MaxLines,
		sessions: make(map[uuid.UUID]*session),
	}, nil
}

// StartSession opens a new empty draft and returns its initial summary.
func (s *service) StartSession(ctx context.Context) (*Summary, error) {
	snap, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictStaleLocked()

	order := newOrder()
	s.sessions[order.ID] = &session{order: order, touchedAt: time.Now()}

	if s.logg != nil {
		s.logg.Info(s.logg.WithSessionID(ctx, order.ID.String()), "composition session started")
	}
	return s.summarize(order, snap), nil
}

// GetSummary recomputes the full summary for the session's draft.
func (s *service) GetSummary(ctx context.Context, sessionID uuid.UUID) (*Summary, error) {
	snap, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessionLocked(sessionID)
	if err != nil {
		return nil, err
	}
	return s.summarize(sess.order, snap), nil
}

// AddItem adds the variant to the draft, merging into an existing line.
func (s *service) AddItem(ctx context.Context, sessionID, variantID uuid.UUID, qty int) (*Summary, error) {
	snap, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	variant, ok := snap.Get(variantID)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "variant not found")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessionLocked(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.order.findLine(variantID) == -1 && len(sess.order.Lines) >= s.maxLines {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("order cannot exceed %d lines", s.maxLines))
	}
	if err := sess.order.AddOrMerge(variant, qty); err != nil {
		return nil, err
	}
	return s.summarize(sess.order, snap), nil
}

// SetQuantity replaces a line's quantity; zero or less removes the line.
func (s *service) SetQuantity(ctx context.Context, sessionID, variantID uuid.UUID, qty int) (*Summary, error) {
	snap, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessionLocked(sessionID)
	if err != nil {
		return nil, err
	}
	if variant, ok := snap.Get(variantID); ok {
		sess.order.SetQuantity(variant, qty)
	} else {
		// Variant dropped from the catalog since it was added. The frozen
		// line can still be removed, but a resize has no schedule to price
		// against, so only the removal path applies.
		if qty <= 0 {
			sess.order.Remove(variantID)
		}
	}
	return s.summarize(sess.order, snap), nil
}

// OverridePrice pins a manually negotiated unit price on a line.
func (s *service) OverridePrice(ctx context.Context, sessionID, variantID uuid.UUID, price decimal.Decimal) (*Summary, error) {
	snap, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessionLocked(sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.order.SetNegotiatedPrice(variantID, price); err != nil {
		return nil, err
	}
	return s.summarize(sess.order, snap), nil
}

// RemoveItem drops a line from the draft.
func (s *service) RemoveItem(ctx context.Context, sessionID, variantID uuid.UUID) (*Summary, error) {
	snap, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessionLocked(sessionID)
	if err != nil {
		return nil, err
	}
	sess.order.Remove(variantID)
	return s.summarize(sess.order, snap), nil
}

// SetSchedule records the requested delivery date and notes on the draft.
func (s *service) SetSchedule(ctx context.Context, sessionID uuid.UUID, date *time.Time, notes string) (*Summary, error) {
	snap, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessionLocked(sessionID)
	if err != nil {
		return nil, err
	}
	sess.order.SetSchedule(date, notes)
	return s.summarize(sess.order, snap), nil
}

// Confirm runs the validation gate and, if it passes, hands the order to the
// submission sink and ends the session. A failed gate reports every blocking
// reason in the error details.
func (s *service) Confirm(ctx context.Context, sessionID uuid.UUID) (*Summary, error) {
	snap, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessionLocked(sessionID)
	if err != nil {
		return nil, err
	}

	gate := EvaluateGate(sess.order)
	if !gate.Submittable {
		msgs := make([]string, 0, len(gate.Reasons))
		for _, r := range gate.Reasons {
			msgs = append(msgs, r.Message())
		}
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "order is not submittable").
			WithDetails(map[string]any{"reasons": msgs})
	}

	sess.order.Status = enums.CompositionStatusConfirmed
	sess.order.touch()

	if err := s.sink.Submit(ctx, sess.order.clone()); err != nil {
		sess.order.Status = enums.CompositionStatusDraft
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "submit order")
	}
	delete(s.sessions, sessionID)

	if s.logg != nil {
		s.logg.Info(s.logg.WithSessionID(ctx, sessionID.String()), "composition session confirmed")
	}
	return s.summarize(sess.order, snap), nil
}

// Cancel discards the session and its draft. Cancelling an unknown session
// is a no-op, so retries converge.
func (s *service) Cancel(ctx context.Context, sessionID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return nil
	}
	delete(s.sessions, sessionID)

	if s.logg != nil {
		s.logg.Info(s.logg.WithSessionID(ctx, sessionID.String()), "composition session cancelled")
	}
	return nil
}

func (s *service) sessionLocked(sessionID uuid.UUID) (*session, error) {
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "composition session not found")
	}
	sess.touchedAt = time.Now()
	return sess, nil
}

func (s *service) evictStaleLocked() {
	if s.ttl <= 0 {
		return
	}
	cutoff := time.Now().Add(-s.ttl)
	for id, sess := range s.sessions {
		if sess.touchedAt.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}

func (s *service) summarize(order *Order, snap *catalog.Snapshot) *Summary {
	out := Summarize(order, snap)
	return &out
}
