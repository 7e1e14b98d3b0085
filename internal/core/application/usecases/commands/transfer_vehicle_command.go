package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrTransferVehicleCommandIsNotConstructed = errors.New(
	"TransferVehicleCommand must be created via NewTransferVehicleCommand constructor",
)

// TransferVehicleCommand represents a request to move a vehicle to a new
// owner, keeping both customers' vehicle associations consistent.
type TransferVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID     kernel.UUID
	newCustomerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewTransferVehicleCommand creates a command to transfer vehicle ownership.
// Both ids must be constructed UUIDs.
func NewTransferVehicleCommand(vehicleID, newCustomerID kernel.UUID) (TransferVehicleCommand, error) {
	transferCommand := TransferVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		transferCommand.setVehicleID(vehicleID),
		transferCommand.setNewCustomerID(newCustomerID),
	); err != nil {
		return TransferVehicleCommand{}, err
	}

	return transferCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c TransferVehicleCommand) Validate() error {
	return c.guard.Validate(ErrTransferVehicleCommandIsNotConstructed)
}

// VehicleID returns the id of the vehicle being transferred.
func (c TransferVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// NewCustomerID returns the id of the customer receiving the vehicle.
func (c TransferVehicleCommand) NewCustomerID() kernel.UUID {
	return c.newCustomerID
}

func (c *TransferVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *TransferVehicleCommand) setNewCustomerID(newCustomerID kernel.UUID) error {
	if err := newCustomerID.Validate(); err != nil {
		return err
	}

	c.newCustomerID = newCustomerID
	return nil
}
