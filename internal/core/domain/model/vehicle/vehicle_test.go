package vehicle_test

import (
	"math"
	"testing"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/vehicle"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVehicle(t *testing.T) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(kernel.NewUUID(), testIdentification(t), 42000, "")
	require.NoError(t, err)
	return v
}

func intPtr(n int) *int { return &n }

func TestNewVehicle(t *testing.T) {
	t.Run("should create an active never-serviced vehicle", func(t *testing.T) {
		customerID := kernel.NewUUID()

		v, err := vehicle.NewVehicle(customerID, testIdentification(t), 1000, "scratch on rear bumper")

		require.NoError(t, err)
		require.NoError(t, v.Validate())
		assert.True(t, v.CustomerID().IsEqual(customerID))
		assert.Equal(t, 1000, v.Mileage())
		assert.Equal(t, "scratch on rear bumper", v.Notes())
		assert.True(t, v.IsActive())
		assert.True(t, v.LastServiceDate().IsZero())
		assert.Empty(t, v.ServiceHistory())
	})

	t.Run("should fail with negative mileage", func(t *testing.T) {
		_, err := vehicle.NewVehicle(kernel.NewUUID(), testIdentification(t), -1, "")

		require.ErrorIs(t, err, vehicle.ErrNegativeMileage)
	})

	t.Run("should fail with zero customer id", func(t *testing.T) {
		_, err := vehicle.NewVehicle(kernel.UUID{}, testIdentification(t), 0, "")

		require.Error(t, err)
	})

	t.Run("should fail with unconstructed identification", func(t *testing.T) {
		var identification vehicle.Identification

		_, err := vehicle.NewVehicle(kernel.NewUUID(), identification, 0, "")

		require.Error(t, err)
	})

	t.Run("zero value vehicle fails validation", func(t *testing.T) {
		var v vehicle.Vehicle

		require.Error(t, v.Validate())
	})
}

func TestRestoreVehicle(t *testing.T) {
	t.Run("should restore persisted state verbatim", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()
		created := time.Date(2023, 1, 15, 8, 0, 0, 0, time.UTC)
		serviced := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		history := []string{"2024-06-01: Oil change (Mileage: 40000)"}

		v, err := vehicle.RestoreVehicle(
			id, created, created, false,
			customerID, testIdentification(t), 40000, serviced, history, "fleet car", false)

		require.NoError(t, err)
		assert.True(t, v.ID().IsEqual(id))
		assert.Equal(t, 40000, v.Mileage())
		assert.Equal(t, serviced, v.LastServiceDate())
		assert.Equal(t, history, v.ServiceHistory())
		assert.False(t, v.IsActive())
		assert.False(t, v.HasDomainEvents())
	})
}

func TestVehicle_UpdateMileage(t *testing.T) {
	t.Run("should accept readings at or above current", func(t *testing.T) {
		v := newTestVehicle(t)

		require.NoError(t, v.UpdateMileage(42000))
		require.NoError(t, v.UpdateMileage(43500))

		assert.Equal(t, 43500, v.Mileage())
	})

	t.Run("should reject negative readings", func(t *testing.T) {
		v := newTestVehicle(t)

		err := v.UpdateMileage(-5)

		require.ErrorIs(t, err, vehicle.ErrNegativeMileage)
		assert.Equal(t, 42000, v.Mileage())
	})

	t.Run("should reject regressions", func(t *testing.T) {
		v := newTestVehicle(t)

		err := v.UpdateMileage(41999)

		require.ErrorIs(t, err, vehicle.ErrMileageRegression)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, 42000, v.Mileage())
	})

	t.Run("should fail for inactive vehicle", func(t *testing.T) {
		v := newTestVehicle(t)
		v.Deactivate("")

		err := v.UpdateMileage(50000)

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestVehicle_AddServiceRecord(t *testing.T) {
	t.Run("should append a formatted record and advance lastServiceDate", func(t *testing.T) {
		v := newTestVehicle(t)
		serviceDate := time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC)

		err := v.AddServiceRecord("Oil change", serviceDate, nil)

		require.NoError(t, err)
		history := v.ServiceHistory()
		require.Len(t, history, 1)
		assert.Equal(t, "2026-08-20: Oil change", history[0])
		assert.Equal(t, serviceDate, v.LastServiceDate())
	})

	t.Run("should include mileage and raise odometer when higher", func(t *testing.T) {
		v := newTestVehicle(t)
		serviceDate := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

		err := v.AddServiceRecord("Timing belt", serviceDate, intPtr(45000))

		require.NoError(t, err)
		assert.Equal(t, "2026-08-20: Timing belt (Mileage: 45000)", v.ServiceHistory()[0])
		assert.Equal(t, 45000, v.Mileage())
	})

	t.Run("lower in-service mileage is recorded but does not lower odometer", func(t *testing.T) {
		v := newTestVehicle(t)

		err := v.AddServiceRecord("Inspection", time.Now().UTC(), intPtr(40000))

		require.NoError(t, err)
		assert.Equal(t, 42000, v.Mileage())
	})

	t.Run("earlier service date does not move lastServiceDate backwards", func(t *testing.T) {
		v := newTestVehicle(t)
		recent := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
		older := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

		require.NoError(t, v.AddServiceRecord("Brakes", recent, nil))
		require.NoError(t, v.AddServiceRecord("Late paperwork entry", older, nil))

		assert.Equal(t, recent, v.LastServiceDate())
		assert.Len(t, v.ServiceHistory(), 2)
	})

	t.Run("should reject blank description", func(t *testing.T) {
		v := newTestVehicle(t)

		err := v.AddServiceRecord("   ", time.Now().UTC(), nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail for inactive vehicle", func(t *testing.T) {
		v := newTestVehicle(t)
		v.Deactivate("")

		err := v.AddServiceRecord("Oil change", time.Now().UTC(), nil)

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestVehicle_TransferToCustomer(t *testing.T) {
	t.Run("should change owner and record the transfer", func(t *testing.T) {
		v := newTestVehicle(t)
		newOwner := kernel.NewUUID()

		err := v.TransferToCustomer(newOwner)

		require.NoError(t, err)
		assert.True(t, v.CustomerID().IsEqual(newOwner))
		history := v.ServiceHistory()
		require.Len(t, history, 1)
		assert.Contains(t, history[0], "Vehicle transferred to new customer")
	})

	t.Run("transfer to current owner is a no-op", func(t *testing.T) {
		v := newTestVehicle(t)
		owner := v.CustomerID()

		err := v.TransferToCustomer(owner)

		require.NoError(t, err)
		assert.Empty(t, v.ServiceHistory())
	})

	t.Run("should reject zero customer id", func(t *testing.T) {
		v := newTestVehicle(t)

		require.Error(t, v.TransferToCustomer(kernel.UUID{}))
	})

	t.Run("should fail for inactive vehicle", func(t *testing.T) {
		v := newTestVehicle(t)
		v.Deactivate("")

		err := v.TransferToCustomer(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestVehicle_ActivationLifecycle(t *testing.T) {
	t.Run("deactivation with a reason leaves a history record", func(t *testing.T) {
		v := newTestVehicle(t)

		v.Deactivate("sold at auction")

		assert.False(t, v.IsActive())
		history := v.ServiceHistory()
		require.Len(t, history, 1)
		assert.Contains(t, history[0], "Vehicle deactivated: sold at auction")
	})

	t.Run("deactivation without a reason leaves no record", func(t *testing.T) {
		v := newTestVehicle(t)

		v.Deactivate("  ")

		assert.False(t, v.IsActive())
		assert.Empty(t, v.ServiceHistory())
	})

	t.Run("deactivate is idempotent", func(t *testing.T) {
		v := newTestVehicle(t)
		v.Deactivate("sold")

		v.Deactivate("sold again")

		assert.Len(t, v.ServiceHistory(), 1)
	})

	t.Run("reactivate records and is idempotent", func(t *testing.T) {
		v := newTestVehicle(t)
		v.Deactivate("")

		v.Reactivate()
		v.Reactivate()

		assert.True(t, v.IsActive())
		history := v.ServiceHistory()
		require.Len(t, history, 1)
		assert.Contains(t, history[0], "Vehicle reactivated")
	})
}

func TestVehicle_ServiceDueness(t *testing.T) {
	t.Run("never-serviced vehicle reports the sentinel and is always due", func(t *testing.T) {
		v := newTestVehicle(t)

		assert.Equal(t, math.MaxInt, v.DaysSinceLastService())
		assert.True(t, v.IsDueForService(vehicle.DefaultMaxDaysBetweenService))
	})

	t.Run("recently serviced vehicle is not due", func(t *testing.T) {
		v := newTestVehicle(t)
		require.NoError(t, v.AddServiceRecord("Oil change", time.Now().UTC().AddDate(0, 0, -30), nil))

		assert.InDelta(t, 30, v.DaysSinceLastService(), 1)
		assert.False(t, v.IsDueForService(vehicle.DefaultMaxDaysBetweenService))
	})

	t.Run("vehicle serviced long ago is due", func(t *testing.T) {
		v := newTestVehicle(t)
		require.NoError(t, v.AddServiceRecord("Oil change", time.Now().UTC().AddDate(-1, 0, 0), nil))

		assert.True(t, v.IsDueForService(vehicle.DefaultMaxDaysBetweenService))
	})
}

func TestVehicle_UpdateNotesAndIdentification(t *testing.T) {
	t.Run("should update notes", func(t *testing.T) {
		v := newTestVehicle(t)

		require.NoError(t, v.UpdateNotes("new tires in March"))
		assert.Equal(t, "new tires in March", v.Notes())

		require.NoError(t, v.UpdateNotes(""))
		assert.Empty(t, v.Notes())
	})

	t.Run("should update identification", func(t *testing.T) {
		v := newTestVehicle(t)
		repainted, err := vehicle.NewIdentification(
			testVin, mustPlate(t, "ABC1D23"), "Fiat", "Argo", 2021, "Preto")
		require.NoError(t, err)

		require.NoError(t, v.UpdateIdentification(repainted))

		assert.Equal(t, "Preto", v.Identification().Color())
	})

	t.Run("should reject unconstructed identification", func(t *testing.T) {
		v := newTestVehicle(t)
		var identification vehicle.Identification

		require.Error(t, v.UpdateIdentification(identification))
	})

	t.Run("should fail for inactive vehicle", func(t *testing.T) {
		v := newTestVehicle(t)
		v.Deactivate("")

		require.ErrorIs(t, v.UpdateNotes("x"), errs.ErrInvalidState)
		require.ErrorIs(t, v.UpdateIdentification(testIdentification(t)), errs.ErrInvalidState)
	})
}
