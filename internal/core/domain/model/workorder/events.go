package workorder

import (
	"time"

	"workshop/internal/core/domain/model/kernel"
)

// Event kind identifiers used in logs and event sinks.
const (
	WorkOrderCreatedEventName = "workorder.created"
	QuoteProposedEventName    = "workorder.quote-proposed"
	QuoteApprovedEventName    = "workorder.quote-approved"
	QuoteRejectedEventName    = "workorder.quote-rejected"
)

// WorkOrderCreatedEvent is raised once when a work order is opened.
type WorkOrderCreatedEvent struct {
	kernel.EventBase
	workOrderID        kernel.UUID
	customerID         kernel.UUID
	vehicleID          kernel.UUID
	serviceDescription string
	createdBy          string
}

// NewWorkOrderCreatedEvent creates the creation event.
func NewWorkOrderCreatedEvent(
	workOrderID kernel.UUID,
	customerID kernel.UUID,
	vehicleID kernel.UUID,
	serviceDescription string,
	createdBy string,
) WorkOrderCreatedEvent {
	return WorkOrderCreatedEvent{
		EventBase:          kernel.NewEventBase(),
		workOrderID:        workOrderID,
		customerID:         customerID,
		vehicleID:          vehicleID,
		serviceDescription: serviceDescription,
		createdBy:          createdBy,
	}
}

// EventName returns the event kind identifier.
func (e WorkOrderCreatedEvent) EventName() string { return WorkOrderCreatedEventName }

// WorkOrderID returns the id of the created work order.
func (e WorkOrderCreatedEvent) WorkOrderID() kernel.UUID { return e.workOrderID }

// CustomerID returns the requesting customer's id.
func (e WorkOrderCreatedEvent) CustomerID() kernel.UUID { return e.customerID }

// VehicleID returns the serviced vehicle's id.
func (e WorkOrderCreatedEvent) VehicleID() kernel.UUID { return e.vehicleID }

// ServiceDescription returns what was requested.
func (e WorkOrderCreatedEvent) ServiceDescription() string { return e.serviceDescription }

// CreatedBy returns who opened the work order.
func (e WorkOrderCreatedEvent) CreatedBy() string { return e.createdBy }

// QuoteProposedEvent is raised when a quote is sent to the customer.
type QuoteProposedEvent struct {
	kernel.EventBase
	workOrderID  kernel.UUID
	totalAmount  kernel.Money
	validityDays int
}

// NewQuoteProposedEvent creates the proposal event.
func NewQuoteProposedEvent(workOrderID kernel.UUID, totalAmount kernel.Money, validityDays int) QuoteProposedEvent {
	return QuoteProposedEvent{
		EventBase:    kernel.NewEventBase(),
		workOrderID:  workOrderID,
		totalAmount:  totalAmount,
		validityDays: validityDays,
	}
}

// EventName returns the event kind identifier.
func (e QuoteProposedEvent) EventName() string { return QuoteProposedEventName }

// WorkOrderID returns the id of the quoted work order.
func (e QuoteProposedEvent) WorkOrderID() kernel.UUID { return e.workOrderID }

// TotalAmount returns the proposed quote total.
func (e QuoteProposedEvent) TotalAmount() kernel.Money { return e.totalAmount }

// ValidityDays returns how long the quote stays open.
func (e QuoteProposedEvent) ValidityDays() int { return e.validityDays }

// QuoteApprovedEvent is raised when the customer approves a quote.
type QuoteApprovedEvent struct {
	kernel.EventBase
	workOrderID       kernel.UUID
	approvedAmount    kernel.Money
	approvedAt        time.Time
	customerSignature string
}

// NewQuoteApprovedEvent creates the approval event.
func NewQuoteApprovedEvent(
	workOrderID kernel.UUID,
	approvedAmount kernel.Money,
	approvedAt time.Time,
	customerSignature string,
) QuoteApprovedEvent {
	return QuoteApprovedEvent{
		EventBase:         kernel.NewEventBase(),
		workOrderID:       workOrderID,
		approvedAmount:    approvedAmount,
		approvedAt:        approvedAt,
		customerSignature: customerSignature,
	}
}

// EventName returns the event kind identifier.
func (e QuoteApprovedEvent) EventName() string { return QuoteApprovedEventName }

// WorkOrderID returns the id of the approved work order.
func (e QuoteApprovedEvent) WorkOrderID() kernel.UUID { return e.workOrderID }

// ApprovedAmount returns the approved quote total.
func (e QuoteApprovedEvent) ApprovedAmount() kernel.Money { return e.approvedAmount }

// ApprovedAt returns the approval date.
func (e QuoteApprovedEvent) ApprovedAt() time.Time { return e.approvedAt }

// CustomerSignature returns the signature given on approval.
func (e QuoteApprovedEvent) CustomerSignature() string { return e.customerSignature }

// QuoteRejectedEvent is raised when the customer rejects a quote.
type QuoteRejectedEvent struct {
	kernel.EventBase
	workOrderID     kernel.UUID
	rejectionReason string
}

// NewQuoteRejectedEvent creates the rejection event.
func NewQuoteRejectedEvent(workOrderID kernel.UUID, rejectionReason string) QuoteRejectedEvent {
	return QuoteRejectedEvent{
		EventBase:       kernel.NewEventBase(),
		workOrderID:     workOrderID,
		rejectionReason: rejectionReason,
	}
}

// EventName returns the event kind identifier.
func (e QuoteRejectedEvent) EventName() string { return QuoteRejectedEventName }

// WorkOrderID returns the id of the rejected work order.
func (e QuoteRejectedEvent) WorkOrderID() kernel.UUID { return e.workOrderID }

// RejectionReason returns why the customer declined.
func (e QuoteRejectedEvent) RejectionReason() string { return e.rejectionReason }
