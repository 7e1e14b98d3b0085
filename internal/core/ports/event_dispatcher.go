package ports

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
)

// EventDispatcher is the sink for domain events drained from aggregates.
// The application layer calls Dispatch after a successful persistence
// commit, in the order the events were raised, then clears the aggregate's
// buffer. Implementations must tolerate redelivery: a crash between commit
// and dispatch loses events rather than duplicating them.
type EventDispatcher interface {
	Dispatch(ctx context.Context, events []kernel.DomainEvent) error
}
