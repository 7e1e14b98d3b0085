package commands

import (
	"context"
	"time"

	"workshop/internal/core/ports"
)

// ApproveQuoteCommandHandler handles quote approvals.
// The work order must be awaiting approval with an unexpired quote; on
// success it moves to Approved and the approval event is dispatched.
type ApproveQuoteCommandHandler struct {
	uowFactory      WorkOrderUoWFactory
	eventDispatcher ports.EventDispatcher
}

// NewApproveQuoteCommandHandler creates a handler for quote approval
// operations.
func NewApproveQuoteCommandHandler(
	uowFactory WorkOrderUoWFactory,
	eventDispatcher ports.EventDispatcher,
) ApproveQuoteCommandHandler {
	return ApproveQuoteCommandHandler{
		uowFactory:      uowFactory,
		eventDispatcher: eventDispatcher,
	}
}

// Handle processes the quote approval command within a transaction.
// The approval timestamp is taken at handling time.
func (h *ApproveQuoteCommandHandler) Handle(ctx context.Context, cmd ApproveQuoteCommand) error {
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

	if err = workOrder.ApproveQuote(cmd.CustomerSignature(), time.Now().UTC()); err != nil {
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
