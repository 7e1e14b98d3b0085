package commands

import (
	"context"

	"workshop/internal/core/ports"
)

// ProposeQuoteCommandHandler handles quote proposals on work orders.
// The work order must be pending diagnosis or preparing a quote; on success
// it moves to awaiting approval and the proposal event is dispatched.
type ProposeQuoteCommandHandler struct {
	uowFactory      WorkOrderUoWFactory
	eventDispatcher ports.EventDispatcher
}

// NewProposeQuoteCommandHandler creates a handler for quote proposal
// operations.
func NewProposeQuoteCommandHandler(
	uowFactory WorkOrderUoWFactory,
	eventDispatcher ports.EventDispatcher,
) ProposeQuoteCommandHandler {
	return ProposeQuoteCommandHandler{
		uowFactory:      uowFactory,
		eventDispatcher: eventDispatcher,
	}
}

// Handle processes the quote proposal command within a transaction.
// Retrieves the work order, proposes the quote, persists the change, and
// dispatches the buffered events after commit.
func (h *ProposeQuoteCommandHandler) Handle(ctx context.Context, cmd ProposeQuoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	workOrderRepo := uow.WorkOrderRepository()
	workOrder, err := workOrderRepo.Get(ctx, cmd.WorkOrderID())
	if err != nil {
		return err
	}

	if err = workOrder.ProposeQuote(
		cmd.LineItems(), cmd.EstimatedHours(), cmd.LaborRatePerHour(), cmd.ValidityDays(), cmd.Notes(),
	); err != nil {
		return err
	}

	if err = workOrderRepo.Update(ctx, workOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.eventDispatcher.Dispatch(ctx, workOrder.DomainEvents()); err != nil {
		return err
	}
	workOrder.ClearDomainEvents()

	return nil
}
