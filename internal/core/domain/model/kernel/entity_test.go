package kernel_test

import (
	"testing"
	"time"

	"workshop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEvent struct {
	kernel.EventBase
	name string
}

func (e stubEvent) EventName() string { return e.name }

func newStubEvent(name string) stubEvent {
	return stubEvent{EventBase: kernel.NewEventBase(), name: name}
}

func TestNewEntity(t *testing.T) {
	t.Run("should stamp identity and timestamps", func(t *testing.T) {
		e := kernel.NewEntity()

		require.NoError(t, e.ID().Validate())
		assert.False(t, e.CreatedAt().IsZero())
		assert.Equal(t, e.CreatedAt(), e.UpdatedAt())
		assert.False(t, e.IsDeleted())
	})

	t.Run("entities never share an id", func(t *testing.T) {
		e1 := kernel.NewEntity()
		e2 := kernel.NewEntity()

		assert.False(t, e1.ID().IsEqual(e2.ID()))
	})
}

func TestRestoreEntity(t *testing.T) {
	t.Run("should restore persisted state verbatim", func(t *testing.T) {
		id := kernel.NewUUID()
		createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		updatedAt := time.Date(2024, 3, 2, 12, 30, 0, 0, time.UTC)

		e, err := kernel.RestoreEntity(id, createdAt, updatedAt, true)

		require.NoError(t, err)
		assert.True(t, e.ID().IsEqual(id))
		assert.Equal(t, createdAt, e.CreatedAt())
		assert.Equal(t, updatedAt, e.UpdatedAt())
		assert.True(t, e.IsDeleted())
	})

	t.Run("should reject zero id", func(t *testing.T) {
		var id kernel.UUID

		_, err := kernel.RestoreEntity(id, time.Now(), time.Now(), false)

		require.Error(t, err)
	})
}

func TestEntity_Touch(t *testing.T) {
	t.Run("bumps updatedAt only", func(t *testing.T) {
		e := kernel.NewEntity()
		created := e.CreatedAt()
		before := e.UpdatedAt()

		time.Sleep(time.Millisecond)
		e.Touch()

		assert.Equal(t, created, e.CreatedAt())
		assert.True(t, e.UpdatedAt().After(before))
	})
}

func TestEntity_MarkAsDeleted(t *testing.T) {
	t.Run("sets flag and bumps updatedAt", func(t *testing.T) {
		e := kernel.NewEntity()
		before := e.UpdatedAt()

		time.Sleep(time.Millisecond)
		e.MarkAsDeleted()

		assert.True(t, e.IsDeleted())
		assert.True(t, e.UpdatedAt().After(before))
	})
}

func TestEntity_IsEqual(t *testing.T) {
	t.Run("identity equality only", func(t *testing.T) {
		id := kernel.NewUUID()
		now := time.Now().UTC()

		e1, err := kernel.RestoreEntity(id, now, now, false)
		require.NoError(t, err)
		e2, err := kernel.RestoreEntity(id, now.Add(time.Hour), now.Add(time.Hour), true)
		require.NoError(t, err)
		other := kernel.NewEntity()

		assert.True(t, e1.IsEqual(&e2))
		assert.False(t, e1.IsEqual(&other))
		assert.False(t, e1.IsEqual(nil))
	})
}

func TestAggregateRoot_DomainEvents(t *testing.T) {
	t.Run("buffer preserves order and is append only", func(t *testing.T) {
		root := kernel.NewAggregateRoot()
		assert.False(t, root.HasDomainEvents())

		first := newStubEvent("first")
		second := newStubEvent("second")
		root.RaiseDomainEvent(first)
		root.RaiseDomainEvent(second)

		events := root.DomainEvents()
		require.Len(t, events, 2)
		assert.Equal(t, "first", events[0].EventName())
		assert.Equal(t, "second", events[1].EventName())
		assert.True(t, root.HasDomainEvents())
	})

	t.Run("DomainEvents returns a copy", func(t *testing.T) {
		root := kernel.NewAggregateRoot()
		root.RaiseDomainEvent(newStubEvent("only"))

		events := root.DomainEvents()
		events[0] = newStubEvent("tampered")

		assert.Equal(t, "only", root.DomainEvents()[0].EventName())
	})

	t.Run("clear empties the buffer", func(t *testing.T) {
		root := kernel.NewAggregateRoot()
		root.RaiseDomainEvent(newStubEvent("pending"))

		root.ClearDomainEvents()

		assert.False(t, root.HasDomainEvents())
		assert.Empty(t, root.DomainEvents())
	})

	t.Run("nil events are ignored", func(t *testing.T) {
		root := kernel.NewAggregateRoot()

		root.RaiseDomainEvent(nil)

		assert.False(t, root.HasDomainEvents())
	})

	t.Run("restored aggregates start with an empty buffer", func(t *testing.T) {
		now := time.Now().UTC()
		root, err := kernel.RestoreAggregateRoot(kernel.NewUUID(), now, now, false)

		require.NoError(t, err)
		assert.False(t, root.HasDomainEvents())
	})
}

func TestNewEventBase(t *testing.T) {
	t.Run("stamps identity and occurrence time", func(t *testing.T) {
		e := newStubEvent("sample")

		require.NoError(t, e.EventID().Validate())
		assert.False(t, e.OccurredAt().IsZero())
	})
}
