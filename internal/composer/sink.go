package composer

import (
	"context"
	"fmt"

	"github.com/jpbelardo/tindahan-backend/pkg/logger"
)

// SubmissionSink receives a confirmed order. Fulfillment, payment and
// persistence all live behind this boundary; the engine only hands over a
// finished composition and forgets the session on success.
type SubmissionSink interface {
	Submit(ctx context.Context, order Order) error
}

type logSink struct {
	logg *logger.Logger
}

// NewLogSink returns a sink that records the confirmed order and succeeds.
// It is the default wiring until a downstream fulfillment system exists.
func NewLogSink(logg *logger.Logger) SubmissionSink {
	return &logSink{logg: logg}
}

func (s *logSink) Submit(ctx context.Context, order Order) error {
	if s.logg == nil {
		return nil
	}
	ctx = s.logg.WithField(ctx, "order_id", order.ID.String())
	ctx = s.logg.WithField(ctx, "line_count", fmt.Sprintf("%d", len(order.Lines)))
	s.logg.Info(ctx, "order confirmed")
	return nil
}
