package commands

import (
	"errors"
	"strings"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var ErrRejectQuoteCommandIsNotConstructed = errors.New(
	"RejectQuoteCommand must be created via NewRejectQuoteCommand constructor",
)

// RejectQuoteCommand represents the customer's rejection of a proposed
// quote, carrying the reason they gave.
type RejectQuoteCommand struct { //nolint:recvcheck //using for validation
	workOrderID     kernel.UUID
	rejectionReason string

	guard guard.ConstructorGuard
}

// NewRejectQuoteCommand creates a command to reject a quote.
// The rejection reason is required.
func NewRejectQuoteCommand(workOrderID kernel.UUID, rejectionReason string) (RejectQuoteCommand, error) {
	rejectCommand := RejectQuoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rejectCommand.setWorkOrderID(workOrderID),
		rejectCommand.setRejectionReason(rejectionReason),
	); err != nil {
		return RejectQuoteCommand{}, err
	}

	return rejectCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectQuoteCommand) Validate() error {
	return c.guard.Validate(ErrRejectQuoteCommandIsNotConstructed)
}

// WorkOrderID returns the id of the work order whose quote is rejected.
func (c RejectQuoteCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

// RejectionReason returns why the customer declined.
func (c RejectQuoteCommand) RejectionReason() string {
	return c.rejectionReason
}

func (c *RejectQuoteCommand) setWorkOrderID(workOrderID kernel.UUID) error {
	if err := workOrderID.Validate(); err != nil {
		return err
	}

	c.workOrderID = workOrderID
	return nil
}

func (c *RejectQuoteCommand) setRejectionReason(rejectionReason string) error {
	if strings.TrimSpace(rejectionReason) == "" {
		return errs.NewValueIsRequiredError("rejectionReason")
	}

	c.rejectionReason = rejectionReason
	return nil
}
