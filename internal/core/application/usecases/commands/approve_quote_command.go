package commands

import (
	"errors"
	"strings"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var ErrApproveQuoteCommandIsNotConstructed = errors.New(
	"ApproveQuoteCommand must be created via NewApproveQuoteCommand constructor",
)

// ApproveQuoteCommand represents the customer's approval of a proposed
// quote, carrying their signature.
type ApproveQuoteCommand struct { //nolint:recvcheck //using for validation
	workOrderID       kernel.UUID
	customerSignature string

	guard guard.ConstructorGuard
}

// NewApproveQuoteCommand creates a command to approve a quote.
// The customer signature is required.
func NewApproveQuoteCommand(workOrderID kernel.UUID, customerSignature string) (ApproveQuoteCommand, error) {
	approveCommand := ApproveQuoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		approveCommand.setWorkOrderID(workOrderID),
		approveCommand.setCustomerSignature(customerSignature),
	); err != nil {
		return ApproveQuoteCommand{}, err
	}

	return approveCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveQuoteCommand) Validate() error {
	return c.guard.Validate(ErrApproveQuoteCommandIsNotConstructed)
}

// WorkOrderID returns the id of the work order whose quote is approved.
func (c ApproveQuoteCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

// CustomerSignature returns the signature given on approval.
func (c ApproveQuoteCommand) CustomerSignature() string {
	return c.customerSignature
}

func (c *ApproveQuoteCommand) setWorkOrderID(workOrderID kernel.UUID) error {
	if err := workOrderID.Validate(); err != nil {
		return err
	}

	c.workOrderID = workOrderID
	return nil
}

func (c *ApproveQuoteCommand) setCustomerSignature(customerSignature string) error {
	if strings.TrimSpace(customerSignature) == "" {
		return errs.NewValueIsRequiredError("customerSignature")
	}

	c.customerSignature = customerSignature
	return nil
}
