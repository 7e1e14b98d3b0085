package kernel

import "time"

// Entity is the base for all domain entities. It carries a time-ordered
// identity, creation and update timestamps, and a soft-delete flag. Entities
// are compared by identity only: two entities are equal iff their ids are
// equal, regardless of any other state. An id is never reused.
//
// Entity is meant to be embedded:
//
//	type Quote struct {
//	    kernel.Entity
//	    // ...
//	}
type Entity struct {
	id        UUID
	createdAt time.Time
	updatedAt time.Time
	isDeleted bool
}

// NewEntity creates an Entity with a fresh time-ordered id and both
// timestamps set to the current UTC time.
func NewEntity() Entity {
	now := time.Now().UTC()
	return Entity{
		id:        NewUUID(),
		createdAt: now,
		updatedAt: now,
	}
}

// RestoreEntity reconstructs an Entity from persisted state.
func RestoreEntity(id UUID, createdAt, updatedAt time.Time, isDeleted bool) (Entity, error) {
	if err := id.Validate(); err != nil {
		return Entity{}, err
	}
	return Entity{
		id:        id,
		createdAt: createdAt,
		updatedAt: updatedAt,
		isDeleted: isDeleted,
	}, nil
}

// ID returns the entity's unique identifier.
func (e *Entity) ID() UUID {
	return e.id
}

// CreatedAt returns when the entity was created.
func (e *Entity) CreatedAt() time.Time {
	return e.createdAt
}

// UpdatedAt returns when the entity was last modified.
func (e *Entity) UpdatedAt() time.Time {
	return e.updatedAt
}

// IsDeleted reports whether the entity is soft-deleted. Soft-deleted
// entities stay addressable; they are only excluded from active lookups.
func (e *Entity) IsDeleted() bool {
	return e.isDeleted
}

// Touch bumps the update timestamp. Mutating operations call it after a
// successful state change.
func (e *Entity) Touch() {
	e.updatedAt = time.Now().UTC()
}

// MarkAsDeleted sets the soft-delete flag and bumps the update timestamp.
func (e *Entity) MarkAsDeleted() {
	e.isDeleted = true
	e.Touch()
}

// IsEqual compares two entities by identity.
func (e *Entity) IsEqual(other *Entity) bool {
	return other != nil && e.id.IsEqual(other.id)
}

// DomainEvent is an immutable record of a significant state change, buffered
// on the aggregate that produced it until the application layer dispatches it
// after a successful commit.
type DomainEvent interface {
	// EventID uniquely identifies this occurrence.
	EventID() UUID
	// EventName names the kind of change, e.g. "workorder.quote-approved".
	EventName() string
	// OccurredAt returns when the change happened.
	OccurredAt() time.Time
}

// EventBase supplies the identity and timestamp of a domain event. Concrete
// events embed it and add their payload plus an EventName implementation.
type EventBase struct {
	eventID    UUID
	occurredAt time.Time
}

// NewEventBase stamps a fresh event identity and occurrence time.
func NewEventBase() EventBase {
	return EventBase{
		eventID:    NewUUID(),
		occurredAt: time.Now().UTC(),
	}
}

// EventID returns the event's unique identifier.
func (e EventBase) EventID() UUID {
	return e.eventID
}

// OccurredAt returns when the event occurred.
func (e EventBase) OccurredAt() time.Time {
	return e.occurredAt
}

// AggregateRoot is the base for aggregate roots: an Entity plus an ordered,
// append-only buffer of domain events. The buffer is drained by the
// application layer in a collect, commit, dispatch, clear sequence - events
// are never delivered implicitly and are lost if never drained.
type AggregateRoot struct {
	Entity
	domainEvents []DomainEvent
}

// NewAggregateRoot creates an AggregateRoot with a fresh identity and an
// empty event buffer.
func NewAggregateRoot() AggregateRoot {
	return AggregateRoot{Entity: NewEntity()}
}

// RestoreAggregateRoot reconstructs an AggregateRoot from persisted state.
// The event buffer starts empty: restoring is not a state change.
func RestoreAggregateRoot(id UUID, createdAt, updatedAt time.Time, isDeleted bool) (AggregateRoot, error) {
	entity, err := RestoreEntity(id, createdAt, updatedAt, isDeleted)
	if err != nil {
		return AggregateRoot{}, err
	}
	return AggregateRoot{Entity: entity}, nil
}

// RaiseDomainEvent appends an event to the buffer. Nil events are ignored.
func (a *AggregateRoot) RaiseDomainEvent(event DomainEvent) {
	if event == nil {
		return
	}
	a.domainEvents = append(a.domainEvents, event)
}

// DomainEvents returns a copy of the buffered events in the order they were
// raised.
func (a *AggregateRoot) DomainEvents() []DomainEvent {
	events := make([]DomainEvent, len(a.domainEvents))
	copy(events, a.domainEvents)
	return events
}

// ClearDomainEvents empties the buffer. The application layer calls this
// after the events have been dispatched.
func (a *AggregateRoot) ClearDomainEvents() {
	a.domainEvents = nil
}

// HasDomainEvents reports whether any events are waiting to be dispatched.
func (a *AggregateRoot) HasDomainEvents() bool {
	return len(a.domainEvents) > 0
}
