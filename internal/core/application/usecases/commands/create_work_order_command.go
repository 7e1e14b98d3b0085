package commands

import (
	"errors"
	"strings"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workorder"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var ErrCreateWorkOrderCommandIsNotConstructed = errors.New(
	"CreateWorkOrderCommand must be created via NewCreateWorkOrderCommand constructor",
)

// CreateWorkOrderCommand represents a request to open a new work order for a
// customer's vehicle.
//
// Example:
//
//	cmd, err := NewCreateWorkOrderCommand(
//	    customerID, vehicleID, "Brake noise when stopping",
//	    workorder.ServiceTypeRepair, workorder.ServicePriorityHigh,
//	    time.Now(), "front desk", "Customer hears squealing")
//	if err != nil {
//	    return fmt.Errorf("invalid work order data: %w", err)
//	}
type CreateWorkOrderCommand struct { //nolint:recvcheck //using for validation
	customerID         kernel.UUID
	vehicleID          kernel.UUID
	serviceDescription string
	serviceType        workorder.ServiceType
	priority           workorder.ServicePriority
	requestedDate      time.Time
	createdBy          string
	customerNotes      string

	guard guard.ConstructorGuard
}

// NewCreateWorkOrderCommand creates a command to open a work order.
// customerNotes is optional; everything else is required.
func NewCreateWorkOrderCommand(
	customerID kernel.UUID,
	vehicleID kernel.UUID,
	serviceDescription string,
	serviceType workorder.ServiceType,
	priority workorder.ServicePriority,
	requestedDate time.Time,
	createdBy string,
	customerNotes string,
) (CreateWorkOrderCommand, error) {
	createCommand := CreateWorkOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		createCommand.setCustomerID(customerID),
		createCommand.setVehicleID(vehicleID),
		createCommand.setServiceDescription(serviceDescription),
		createCommand.setServiceType(serviceType),
		createCommand.setPriority(priority),
		createCommand.setRequestedDate(requestedDate),
		createCommand.setCreatedBy(createdBy),
	); err != nil {
		return CreateWorkOrderCommand{}, err
	}

	createCommand.customerNotes = customerNotes
	return createCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkOrderCommandIsNotConstructed)
}

// CustomerID returns the id of the customer requesting the service.
func (c CreateWorkOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// VehicleID returns the id of the vehicle to service.
func (c CreateWorkOrderCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// ServiceDescription returns what the customer asked for.
func (c CreateWorkOrderCommand) ServiceDescription() string {
	return c.serviceDescription
}

// ServiceType returns the kind of work requested.
func (c CreateWorkOrderCommand) ServiceType() workorder.ServiceType {
	return c.serviceType
}

// Priority returns the requested urgency level.
func (c CreateWorkOrderCommand) Priority() workorder.ServicePriority {
	return c.priority
}

// RequestedDate returns when the customer asked for the service.
func (c CreateWorkOrderCommand) RequestedDate() time.Time {
	return c.requestedDate
}

// CreatedBy returns who is opening the work order.
func (c CreateWorkOrderCommand) CreatedBy() string {
	return c.createdBy
}

// CustomerNotes returns optional notes from the customer.
func (c CreateWorkOrderCommand) CustomerNotes() string {
	return c.customerNotes
}

func (c *CreateWorkOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateWorkOrderCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *CreateWorkOrderCommand) setServiceDescription(serviceDescription string) error {
	if strings.TrimSpace(serviceDescription) == "" {
		return errs.NewValueIsRequiredError("serviceDescription")
	}

	c.serviceDescription = serviceDescription
	return nil
}

func (c *CreateWorkOrderCommand) setServiceType(serviceType workorder.ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}

	c.serviceType = serviceType
	return nil
}

func (c *CreateWorkOrderCommand) setPriority(priority workorder.ServicePriority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}

func (c *CreateWorkOrderCommand) setRequestedDate(requestedDate time.Time) error {
	if requestedDate.IsZero() {
		return errs.NewValueIsRequiredError("requestedDate")
	}

	c.requestedDate = requestedDate
	return nil
}

func (c *CreateWorkOrderCommand) setCreatedBy(createdBy string) error {
	if strings.TrimSpace(createdBy) == "" {
		return errs.NewValueIsRequiredError("createdBy")
	}

	c.createdBy = createdBy
	return nil
}
