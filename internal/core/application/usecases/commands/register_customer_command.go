package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/vehicle"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var ErrRegisterCustomerCommandIsNotConstructed = errors.New(
	"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
)

// RegisterCustomerCommand represents a request to register a new customer,
// optionally together with their first vehicle.
//
// Example:
//
//	cmd, err := NewRegisterCustomerCommand(contact, "email", &identification)
//	if err != nil {
//	    return fmt.Errorf("invalid customer data: %w", err)
//	}
//
//	handler := NewRegisterCustomerCommandHandler(uowFactory, dispatcher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register customer: %w", err)
//	}
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	contactInformation     kernel.ContactInformation
	preferredContactMethod string
	firstVehicle           *vehicle.Identification

	guard guard.ConstructorGuard
}

// NewRegisterCustomerCommand creates a command to register a customer.
// firstVehicle is optional; when given it must be a constructed
// identification.
func NewRegisterCustomerCommand(
	contactInformation kernel.ContactInformation,
	preferredContactMethod string,
	firstVehicle *vehicle.Identification,
) (RegisterCustomerCommand, error) {
	registerCommand := RegisterCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		registerCommand.setContactInformation(contactInformation),
		registerCommand.setPreferredContactMethod(preferredContactMethod),
		registerCommand.setFirstVehicle(firstVehicle),
	); err != nil {
		return RegisterCustomerCommand{}, err
	}

	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

// ContactInformation returns the new customer's contact information.
func (c RegisterCustomerCommand) ContactInformation() kernel.ContactInformation {
	return c.contactInformation
}

// PreferredContactMethod returns how the customer wants to be reached.
func (c RegisterCustomerCommand) PreferredContactMethod() string {
	return c.preferredContactMethod
}

// FirstVehicle returns the identification of the customer's first vehicle,
// or nil when none is registered alongside the customer.
func (c RegisterCustomerCommand) FirstVehicle() *vehicle.Identification {
	if c.firstVehicle == nil {
		return nil
	}
	identification := *c.firstVehicle
	return &identification
}

func (c *RegisterCustomerCommand) setContactInformation(contactInformation kernel.ContactInformation) error {
	if err := contactInformation.Validate(); err != nil {
		return err
	}

	c.contactInformation = contactInformation
	return nil
}

func (c *RegisterCustomerCommand) setPreferredContactMethod(preferredContactMethod string) error {
	if preferredContactMethod == "" {
		return errs.NewValueIsRequiredError("preferredContactMethod")
	}

	c.preferredContactMethod = preferredContactMethod
	return nil
}

func (c *RegisterCustomerCommand) setFirstVehicle(firstVehicle *vehicle.Identification) error {
	if firstVehicle == nil {
		return nil
	}
	if err := firstVehicle.Validate(); err != nil {
		return err
	}

	identification := *firstVehicle
	c.firstVehicle = &identification
	return nil
}
