package customer

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

// Domain errors for customer operations.
var (
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer is an aggregate root representing a client of the repair shop.
// It owns the customer's contact information, activation lifecycle, and the
// association to the vehicles the customer brought in.
//
// The association is held as a set of vehicle ids only: Vehicle aggregates
// are independent and must be loaded through their own repository. Keeping
// both sides consistent during a transfer is the job of the customer domain
// service, not this aggregate.
//
// Business rules:
//   - All mutating operations except Deactivate/Reactivate fail while the
//     customer is inactive.
//   - Adding an already-owned vehicle id or removing an absent one is a
//     no-op; only actual membership changes bump the update timestamp.
//   - Deactivate/Reactivate are idempotent.
type Customer struct {
	kernel.AggregateRoot
	contactInformation     kernel.ContactInformation
	dateRegistered         time.Time
	isActive               bool
	preferredContactMethod string
	vehicleIDs             map[kernel.UUID]struct{}
	guard                  guard.ConstructorGuard
}

// NewCustomer registers a new active customer and raises a
// CustomerRegisteredEvent. preferredContactMethod is optional and may be
// empty.
func NewCustomer(contactInformation kernel.ContactInformation, preferredContactMethod string) (*Customer, error) {
	customer := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := customer.setContactInformation(contactInformation); err != nil {
		return nil, err
	}

	customer.AggregateRoot = kernel.NewAggregateRoot()
	customer.dateRegistered = time.Now().UTC()
	customer.isActive = true
	customer.preferredContactMethod = preferredContactMethod
	customer.vehicleIDs = make(map[kernel.UUID]struct{})

	customer.RaiseDomainEvent(NewCustomerRegisteredEvent(
		customer.ID(), contactInformation.FullName(), contactInformation.Email()))

	return customer, nil
}

// RestoreCustomer reconstructs a Customer aggregate from persistent storage.
// Unlike NewCustomer it raises no events and takes every field verbatim.
func RestoreCustomer(
	id kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
	isDeleted bool,
	contactInformation kernel.ContactInformation,
	dateRegistered time.Time,
	isActive bool,
	preferredContactMethod string,
	vehicleIDs []kernel.UUID,
) (*Customer, error) {
	customer := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	root, err := kernel.RestoreAggregateRoot(id, createdAt, updatedAt, isDeleted)
	if err != nil {
		return nil, err
	}

	if err := errors.Join(
		customer.setContactInformation(contactInformation),
		customer.setVehicleIDs(vehicleIDs),
	); err != nil {
		return nil, err
	}

	customer.AggregateRoot = root
	customer.dateRegistered = dateRegistered
	customer.isActive = isActive
	customer.preferredContactMethod = preferredContactMethod

	return customer, nil
}

// Validate checks if the Customer was properly constructed.
// The zero value of Customer is invalid and fails this validation.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ContactInformation returns the customer's current contact information.
func (c *Customer) ContactInformation() kernel.ContactInformation {
	return c.contactInformation
}

// DateRegistered returns when the customer was first registered.
func (c *Customer) DateRegistered() time.Time {
	return c.dateRegistered
}

// IsActive reports whether the customer account is active.
func (c *Customer) IsActive() bool {
	return c.isActive
}

// PreferredContactMethod returns the customer's preferred contact method,
// or an empty string when none was chosen.
func (c *Customer) PreferredContactMethod() string {
	return c.preferredContactMethod
}

// VehicleIDs returns the ids of the vehicles associated with this customer.
// The returned slice is a copy; insertion order is not preserved.
func (c *Customer) VehicleIDs() []kernel.UUID {
	out := make([]kernel.UUID, 0, len(c.vehicleIDs))
	for id := range c.vehicleIDs {
		out = append(out, id)
	}
	return out
}

// VehicleCount returns the number of vehicles associated with this customer.
func (c *Customer) VehicleCount() int {
	return len(c.vehicleIDs)
}

// OwnsVehicle reports whether the given vehicle id is associated with this
// customer.
func (c *Customer) OwnsVehicle(vehicleID kernel.UUID) bool {
	_, ok := c.vehicleIDs[vehicleID]
	return ok
}

// UpdateContactInformation replaces the customer's contact information.
// Fails while the customer is inactive.
func (c *Customer) UpdateContactInformation(contactInformation kernel.ContactInformation) error {
	if err := c.requireActive("update contact information"); err != nil {
		return err
	}
	if err := c.setContactInformation(contactInformation); err != nil {
		return err
	}

	c.Touch()
	return nil
}

// UpdatePreferredContactMethod replaces the preferred contact method.
// Fails while the customer is inactive.
func (c *Customer) UpdatePreferredContactMethod(preferredContactMethod string) error {
	if err := c.requireActive("update preferred contact method"); err != nil {
		return err
	}

	c.preferredContactMethod = preferredContactMethod
	c.Touch()
	return nil
}

// AddVehicle associates a vehicle id with this customer. Adding an id that
// is already present is a no-op and does not bump the update timestamp.
func (c *Customer) AddVehicle(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	if err := c.requireActive("add vehicle"); err != nil {
		return err
	}

	if _, ok := c.vehicleIDs[vehicleID]; ok {
		return nil
	}

	c.vehicleIDs[vehicleID] = struct{}{}
	c.Touch()
	return nil
}

// RemoveVehicle drops the association with a vehicle id. Removing an absent
// id is a no-op and does not bump the update timestamp.
func (c *Customer) RemoveVehicle(vehicleID kernel.UUID) {
	if _, ok := c.vehicleIDs[vehicleID]; !ok {
		return
	}

	delete(c.vehicleIDs, vehicleID)
	c.Touch()
}

// Deactivate turns the customer account off. Idempotent.
func (c *Customer) Deactivate() {
	if !c.isActive {
		return
	}

	c.isActive = false
	c.Touch()
}

// Reactivate turns the customer account back on. Idempotent.
func (c *Customer) Reactivate() {
	if c.isActive {
		return
	}

	c.isActive = true
	c.Touch()
}

func (c *Customer) requireActive(operation string) error {
	if !c.isActive {
		return errs.NewInvalidStateError(operation, "inactive customer")
	}
	return nil
}

func (c *Customer) setContactInformation(contactInformation kernel.ContactInformation) error {
	if err := contactInformation.Validate(); err != nil {
		return err
	}

	c.contactInformation = contactInformation
	return nil
}

func (c *Customer) setVehicleIDs(vehicleIDs []kernel.UUID) error {
	ids := make(map[kernel.UUID]struct{}, len(vehicleIDs))
	for _, id := range vehicleIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		ids[id] = struct{}{}
	}

	c.vehicleIDs = ids
	return nil
}
