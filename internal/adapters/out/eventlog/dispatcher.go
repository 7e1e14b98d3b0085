// Package eventlog provides a structured-log implementation of the
// EventDispatcher port. Every domain event drained from an aggregate after a
// successful commit is written to the application log, giving the shop an
// audit trail of quote proposals, approvals, and rejections without an
// external message broker.
package eventlog

import (
	"context"
	"log/slog"

	"workshop/internal/core/domain/model/kernel"
)

// SlogEventDispatcher logs dispatched domain events with slog.
type SlogEventDispatcher struct {
	logger *slog.Logger
}

// NewSlogEventDispatcher creates a dispatcher writing to the given logger.
func NewSlogEventDispatcher(logger *slog.Logger) *SlogEventDispatcher {
	return &SlogEventDispatcher{
		logger: logger.With("component", "event_dispatcher"),
	}
}

// Dispatch logs every event in the order it was raised. Logging cannot fail,
// so Dispatch always returns nil; the signature carries the error for
// dispatchers with real delivery semantics.
func (d *SlogEventDispatcher) Dispatch(ctx context.Context, events []kernel.DomainEvent) error {
	for _, event := range events {
		d.logger.InfoContext(ctx, "domain event",
			"event", event.EventName(),
			"event_id", event.EventID().String(),
			"occurred_at", event.OccurredAt(),
		)
	}

	return nil
}
