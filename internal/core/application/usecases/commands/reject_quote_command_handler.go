package commands

import (
	"context"

	"workshop/internal/core/ports"
)

// RejectQuoteCommandHandler handles quote rejections.
// The work order must be awaiting approval; on success it moves to Rejected
// and the rejection event is dispatched.
type RejectQuoteCommandHandler struct {
	uowFactory      WorkOrderUoWFactory
	eventDispatcher ports.EventDispatcher
}

// NewRejectQuoteCommandHandler creates a handler for quote rejection
// operations.
func NewRejectQuoteCommandHandler(
	uowFactory WorkOrderUoWFactory,
	eventDispatcher ports.EventDispatcher,
) RejectQuoteCommandHandler {
	return RejectQuoteCommandHandler{
		uowFactory:      uowFactory,
		eventDispatcher: eventDispatcher,
	}
}

// Handle processes the quote rejection command within a transaction.
func (h *RejectQuoteCommandHandler) Handle(ctx context.Context, cmd RejectQuoteCommand) error {
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

	if err = workOrder.RejectQuote(cmd.RejectionReason()); err != nil {
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
