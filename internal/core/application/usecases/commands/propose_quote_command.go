package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workorder"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrProposeQuoteCommandIsNotConstructed = errors.New(
	"ProposeQuoteCommand must be created via NewProposeQuoteCommand constructor",
)

// ProposeQuoteCommand represents a request to propose a quote on a work
// order after diagnosis. Carries the line items, the labor estimate, and
// how long the quote stays valid.
type ProposeQuoteCommand struct { //nolint:recvcheck //using for validation
	workOrderID      kernel.UUID
	lineItems        []workorder.LineItem
	estimatedHours   decimal.Decimal
	laborRatePerHour kernel.Money
	validityDays     int
	notes            string

	guard guard.ConstructorGuard
}

// NewProposeQuoteCommand creates a command to propose a quote.
// At least one line item is required; hours may be zero but not negative.
func NewProposeQuoteCommand(
	workOrderID kernel.UUID,
	lineItems []workorder.LineItem,
	estimatedHours decimal.Decimal,
	laborRatePerHour kernel.Money,
	validityDays int,
	notes string,
) (ProposeQuoteCommand, error) {
	proposeCommand := ProposeQuoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		proposeCommand.setWorkOrderID(workOrderID),
		proposeCommand.setLineItems(lineItems),
		proposeCommand.setEstimatedHours(estimatedHours),
		proposeCommand.setLaborRatePerHour(laborRatePerHour),
		proposeCommand.setValidityDays(validityDays),
	); err != nil {
		return ProposeQuoteCommand{}, err
	}

	proposeCommand.notes = notes
	return proposeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ProposeQuoteCommand) Validate() error {
	return c.guard.Validate(ErrProposeQuoteCommandIsNotConstructed)
}

// WorkOrderID returns the id of the work order being quoted.
func (c ProposeQuoteCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

// LineItems returns the proposed line items. The returned slice is a copy.
func (c ProposeQuoteCommand) LineItems() []workorder.LineItem {
	out := make([]workorder.LineItem, len(c.lineItems))
	copy(out, c.lineItems)
	return out
}

// EstimatedHours returns the estimated labor hours.
func (c ProposeQuoteCommand) EstimatedHours() decimal.Decimal {
	return c.estimatedHours
}

// LaborRatePerHour returns the hourly labor rate to apply.
func (c ProposeQuoteCommand) LaborRatePerHour() kernel.Money {
	return c.laborRatePerHour
}

// ValidityDays returns how many days the quote stays approvable.
func (c ProposeQuoteCommand) ValidityDays() int {
	return c.validityDays
}

// Notes returns optional free-form notes for the quote.
func (c ProposeQuoteCommand) Notes() string {
	return c.notes
}

func (c *ProposeQuoteCommand) setWorkOrderID(workOrderID kernel.UUID) error {
	if err := workOrderID.Validate(); err != nil {
		return err
	}

	c.workOrderID = workOrderID
	return nil
}

func (c *ProposeQuoteCommand) setLineItems(lineItems []workorder.LineItem) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("lineItems")
	}
	for _, item := range lineItems {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.lineItems = make([]workorder.LineItem, len(lineItems))
	copy(c.lineItems, lineItems)
	return nil
}

func (c *ProposeQuoteCommand) setEstimatedHours(estimatedHours decimal.Decimal) error {
	if estimatedHours.IsNegative() {
		return errs.NewValueIsInvalidError("estimatedHours cannot be negative")
	}

	c.estimatedHours = estimatedHours
	return nil
}

func (c *ProposeQuoteCommand) setLaborRatePerHour(laborRatePerHour kernel.Money) error {
	if err := laborRatePerHour.Validate(); err != nil {
		return err
	}

	c.laborRatePerHour = laborRatePerHour
	return nil
}

func (c *ProposeQuoteCommand) setValidityDays(validityDays int) error {
	if validityDays <= 0 {
		return errs.NewValueIsInvalidError("validityDays must be positive")
	}

	c.validityDays = validityDays
	return nil
}
