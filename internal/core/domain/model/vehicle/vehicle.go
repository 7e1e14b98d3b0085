package vehicle

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

// Default service intervals used by IsDueForService.
const (
	// DefaultMaxDaysBetweenService is the recommended maximum number of days
	// between services.
	DefaultMaxDaysBetweenService = 180
)

// Domain errors for vehicle operations.
var (
	// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
	// ErrNegativeMileage is returned when a negative odometer reading is supplied.
	ErrNegativeMileage = errs.NewValueIsInvalidError("mileage cannot be negative")
	// ErrMileageRegression is returned when a new reading is below the recorded mileage.
	// The odometer is monotonic while the vehicle record is active; a lower
	// reading is a data-entry error, not wear.
	ErrMileageRegression = errs.NewValueIsInvalidError("mileage cannot be lower than the recorded mileage")
)

// Vehicle is an aggregate root representing a customer's car in the shop.
// It tracks the owning customer (by id only), the physical identification,
// a monotonically non-decreasing odometer, and an append-only service
// history of formatted text records.
//
// Business rules:
//   - Mileage never decreases while the record is active.
//   - Every service appends a history record and advances lastServiceDate
//     to the latest service date seen.
//   - Transfers, deactivations with a reason, and reactivations also leave
//     a history record.
//   - All mutating operations except Deactivate/Reactivate fail while the
//     vehicle is inactive.
type Vehicle struct {
	kernel.AggregateRoot
	customerID      kernel.UUID
	identification  Identification
	mileage         int
	lastServiceDate time.Time
	serviceHistory  []string
	notes           string
	isActive        bool
	guard           guard.ConstructorGuard
}

// NewVehicle registers a new active vehicle for a customer. A zero
// lastServiceDate means the vehicle has never been serviced. notes is
// optional and may be empty.
func NewVehicle(
	customerID kernel.UUID,
	identification Identification,
	mileage int,
	notes string,
) (*Vehicle, error) {
	vehicle := &Vehicle{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		vehicle.setCustomerID(customerID),
		vehicle.setIdentification(identification),
		vehicle.setInitialMileage(mileage),
	); err != nil {
		return nil, err
	}

	vehicle.AggregateRoot = kernel.NewAggregateRoot()
	vehicle.notes = notes
	vehicle.isActive = true

	return vehicle, nil
}

// RestoreVehicle reconstructs a Vehicle aggregate from persistent storage.
func RestoreVehicle(
	id kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
	isDeleted bool,
	customerID kernel.UUID,
	identification Identification,
	mileage int,
	lastServiceDate time.Time,
	serviceHistory []string,
	notes string,
	isActive bool,
) (*Vehicle, error) {
	vehicle := &Vehicle{
		guard: guard.NewConstructorGuard(),
	}

	root, err := kernel.RestoreAggregateRoot(id, createdAt, updatedAt, isDeleted)
	if err != nil {
		return nil, err
	}

	if err := errors.Join(
		vehicle.setCustomerID(customerID),
		vehicle.setIdentification(identification),
		vehicle.setInitialMileage(mileage),
	); err != nil {
		return nil, err
	}

	vehicle.AggregateRoot = root
	vehicle.lastServiceDate = lastServiceDate
	vehicle.serviceHistory = make([]string, len(serviceHistory))
	copy(vehicle.serviceHistory, serviceHistory)
	vehicle.notes = notes
	vehicle.isActive = isActive

	return vehicle, nil
}

// Validate checks if the Vehicle was properly constructed.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// CustomerID returns the id of the owning customer.
func (v *Vehicle) CustomerID() kernel.UUID {
	return v.customerID
}

// Identification returns the vehicle's physical identification.
func (v *Vehicle) Identification() Identification {
	return v.identification
}

// Mileage returns the last recorded odometer reading.
func (v *Vehicle) Mileage() int {
	return v.mileage
}

// LastServiceDate returns the date of the most recent service, or the zero
// time when the vehicle has never been serviced.
func (v *Vehicle) LastServiceDate() time.Time {
	return v.lastServiceDate
}

// Notes returns free-form notes about the vehicle.
func (v *Vehicle) Notes() string {
	return v.notes
}

// IsActive reports whether the vehicle record is active.
func (v *Vehicle) IsActive() bool {
	return v.isActive
}

// ServiceHistory returns the formatted service records in the order they
// were added. The returned slice is a copy.
func (v *Vehicle) ServiceHistory() []string {
	out := make([]string, len(v.serviceHistory))
	copy(out, v.serviceHistory)
	return out
}

// UpdateMileage records a new odometer reading. The reading must be
// non-negative and at least the current mileage.
func (v *Vehicle) UpdateMileage(newMileage int) error {
	if newMileage < 0 {
		return ErrNegativeMileage
	}
	if newMileage < v.mileage {
		return ErrMileageRegression
	}
	if err := v.requireActive("update mileage"); err != nil {
		return err
	}

	v.mileage = newMileage
	v.Touch()
	return nil
}

// AddServiceRecord appends a formatted record to the service history.
// When mileageAtService is given and exceeds the current odometer the
// reading is raised to match; lastServiceDate advances to the latest
// service date seen.
func (v *Vehicle) AddServiceRecord(serviceDescription string, serviceDate time.Time, mileageAtService *int) error {
	if strings.TrimSpace(serviceDescription) == "" {
		return errs.NewValueIsRequiredError("serviceDescription")
	}
	if err := v.requireActive("add service record"); err != nil {
		return err
	}

	v.appendServiceRecord(serviceDescription, serviceDate, mileageAtService)
	v.Touch()
	return nil
}

// UpdateIdentification replaces the vehicle's identification, e.g. after a
// repaint or a plate change.
func (v *Vehicle) UpdateIdentification(identification Identification) error {
	if err := v.requireActive("update identification"); err != nil {
		return err
	}
	if err := v.setIdentification(identification); err != nil {
		return err
	}

	v.Touch()
	return nil
}

// UpdateNotes replaces the free-form notes. An empty string clears them.
func (v *Vehicle) UpdateNotes(notes string) error {
	if err := v.requireActive("update notes"); err != nil {
		return err
	}

	v.notes = notes
	v.Touch()
	return nil
}

// TransferToCustomer moves the vehicle to a different owner and records
// the transfer in the service history. Transferring to the current owner
// is a no-op. Callers are responsible for keeping both Customer
// aggregates' vehicle associations consistent.
func (v *Vehicle) TransferToCustomer(newCustomerID kernel.UUID) error {
	if err := newCustomerID.Validate(); err != nil {
		return err
	}
	if err := v.requireActive("transfer to customer"); err != nil {
		return err
	}
	if v.customerID.IsEqual(newCustomerID) {
		return nil
	}

	v.customerID = newCustomerID
	v.appendServiceRecord("Vehicle transferred to new customer", time.Now().UTC(), nil)
	v.Touch()
	return nil
}

// Deactivate turns the vehicle record off, e.g. when the car is sold or
// written off. A non-blank reason is recorded in the service history.
// Idempotent.
func (v *Vehicle) Deactivate(reason string) {
	if !v.isActive {
		return
	}

	if strings.TrimSpace(reason) != "" {
		v.appendServiceRecord("Vehicle deactivated: "+reason, time.Now().UTC(), nil)
	}

	v.isActive = false
	v.Touch()
}

// Reactivate turns the vehicle record back on and notes it in the service
// history. Idempotent.
func (v *Vehicle) Reactivate() {
	if v.isActive {
		return
	}

	v.isActive = true
	v.appendServiceRecord("Vehicle reactivated", time.Now().UTC(), nil)
	v.Touch()
}

// DaysSinceLastService returns the whole days elapsed since the last
// service, or math.MaxInt when the vehicle has never been serviced.
func (v *Vehicle) DaysSinceLastService() int {
	if v.lastServiceDate.IsZero() {
		return math.MaxInt
	}

	now := time.Now().UTC().Truncate(24 * time.Hour)
	last := v.lastServiceDate.UTC().Truncate(24 * time.Hour)
	return int(now.Sub(last).Hours() / 24)
}

// IsDueForService reports whether more than maxDaysBetweenService days have
// passed since the last service. Pass DefaultMaxDaysBetweenService for the
// shop's standard interval.
func (v *Vehicle) IsDueForService(maxDaysBetweenService int) bool {
	return v.DaysSinceLastService() > maxDaysBetweenService
}

func (v *Vehicle) appendServiceRecord(description string, serviceDate time.Time, mileageAtService *int) {
	record := fmt.Sprintf("%s: %s", serviceDate.Format("2006-01-02"), description)
	if mileageAtService != nil {
		record += fmt.Sprintf(" (Mileage: %d)", *mileageAtService)
		if *mileageAtService > v.mileage {
			v.mileage = *mileageAtService
		}
	}

	v.serviceHistory = append(v.serviceHistory, record)
	if serviceDate.After(v.lastServiceDate) {
		v.lastServiceDate = serviceDate
	}
}

func (v *Vehicle) requireActive(operation string) error {
	if !v.isActive {
		return errs.NewInvalidStateError(operation, "inactive vehicle")
	}
	return nil
}

func (v *Vehicle) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	v.customerID = customerID
	return nil
}

func (v *Vehicle) setIdentification(identification Identification) error {
	if err := identification.Validate(); err != nil {
		return err
	}

	v.identification = identification
	return nil
}

func (v *Vehicle) setInitialMileage(mileage int) error {
	if mileage < 0 {
		return ErrNegativeMileage
	}

	v.mileage = mileage
	return nil
}
