package workorder

import (
	"errors"
	"strings"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Domain errors for work order operations.
var (
	// ErrWorkOrderIsNotConstructed is returned when using an improperly initialized WorkOrder.
	ErrWorkOrderIsNotConstructed = errors.New("WorkOrder must be created via NewWorkOrder constructor")
	// ErrNoQuote is returned when approving or rejecting a quote that was never proposed.
	ErrNoQuote = errs.NewInvalidStateError("approve or reject quote", "no quote proposed")
)

// WorkOrder is the aggregate root for a repair job: the central business
// transaction of the shop. It references the customer and the vehicle by id,
// owns the Quote proposed for the job, and walks the Status state machine.
//
// All transitions go through the methods below; a transition attempted from
// a disallowed status fails and leaves the work order unchanged. State
// changes that matter to other parts of the system (creation, quote
// proposal, approval, rejection) raise domain events for the application
// layer to dispatch after a successful commit.
type WorkOrder struct {
	kernel.AggregateRoot
	customerID         kernel.UUID
	vehicleID          kernel.UUID
	serviceDescription string
	serviceType        ServiceType
	priority           ServicePriority
	status             Status
	requestedDate      time.Time
	scheduledDate      *time.Time
	completedDate      *time.Time
	quote              *Quote
	customerNotes      string
	internalNotes      string
	createdBy          string
	assignedTechnician string
	guard              guard.ConstructorGuard
}

// NewWorkOrder creates a Draft work order and raises a
// WorkOrderCreatedEvent. customerNotes is optional.
func NewWorkOrder(
	customerID kernel.UUID,
	vehicleID kernel.UUID,
	serviceDescription string,
	serviceType ServiceType,
	priority ServicePriority,
	requestedDate time.Time,
	createdBy string,
	customerNotes string,
) (*WorkOrder, error) {
	workOrder := &WorkOrder{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		workOrder.setCustomerID(customerID),
		workOrder.setVehicleID(vehicleID),
		workOrder.setServiceDescription(serviceDescription),
		workOrder.setServiceType(serviceType),
		workOrder.setPriority(priority),
		workOrder.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	workOrder.AggregateRoot = kernel.NewAggregateRoot()
	workOrder.status = StatusDraft
	workOrder.requestedDate = requestedDate
	workOrder.customerNotes = strings.TrimSpace(customerNotes)

	workOrder.RaiseDomainEvent(NewWorkOrderCreatedEvent(
		workOrder.ID(), customerID, vehicleID, workOrder.serviceDescription, workOrder.createdBy))

	return workOrder, nil
}

// RestoreWorkOrder reconstructs a WorkOrder aggregate from persistent
// storage. quote may be nil when none was proposed yet.
func RestoreWorkOrder(
	id kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
	isDeleted bool,
	customerID kernel.UUID,
	vehicleID kernel.UUID,
	serviceDescription string,
	serviceType ServiceType,
	priority ServicePriority,
	status Status,
	requestedDate time.Time,
	scheduledDate *time.Time,
	completedDate *time.Time,
	quote *Quote,
	customerNotes string,
	internalNotes string,
	createdBy string,
	assignedTechnician string,
) (*WorkOrder, error) {
	workOrder := &WorkOrder{
		guard: guard.NewConstructorGuard(),
	}

	root, err := kernel.RestoreAggregateRoot(id, createdAt, updatedAt, isDeleted)
	if err != nil {
		return nil, err
	}

	if err := errors.Join(
		workOrder.setCustomerID(customerID),
		workOrder.setVehicleID(vehicleID),
		workOrder.setServiceDescription(serviceDescription),
		workOrder.setServiceType(serviceType),
		workOrder.setPriority(priority),
		workOrder.setCreatedBy(createdBy),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if quote != nil {
		if err := quote.Validate(); err != nil {
			return nil, err
		}
	}

	workOrder.AggregateRoot = root
	workOrder.status = status
	workOrder.requestedDate = requestedDate
	workOrder.scheduledDate = copyTime(scheduledDate)
	workOrder.completedDate = copyTime(completedDate)
	workOrder.quote = quote
	workOrder.customerNotes = customerNotes
	workOrder.internalNotes = internalNotes
	workOrder.assignedTechnician = assignedTechnician

	return workOrder, nil
}

// Validate checks if the WorkOrder was properly constructed.
func (w *WorkOrder) Validate() error {
	if w == nil {
		return ErrWorkOrderIsNotConstructed
	}
	return w.guard.Validate(ErrWorkOrderIsNotConstructed)
}

// CustomerID returns the id of the customer who requested the job.
func (w *WorkOrder) CustomerID() kernel.UUID {
	return w.customerID
}

// VehicleID returns the id of the vehicle being serviced.
func (w *WorkOrder) VehicleID() kernel.UUID {
	return w.vehicleID
}

// ServiceDescription returns what the customer asked for.
func (w *WorkOrder) ServiceDescription() string {
	return w.serviceDescription
}

// ServiceType returns the kind of work requested.
func (w *WorkOrder) ServiceType() ServiceType {
	return w.serviceType
}

// Priority returns the work order's urgency level.
func (w *WorkOrder) Priority() ServicePriority {
	return w.priority
}

// Status returns the current workflow state.
func (w *WorkOrder) Status() Status {
	return w.status
}

// RequestedDate returns when the customer asked for the service.
func (w *WorkOrder) RequestedDate() time.Time {
	return w.requestedDate
}

// ScheduledDate returns when the job is booked, or nil when unscheduled.
func (w *WorkOrder) ScheduledDate() *time.Time {
	return copyTime(w.scheduledDate)
}

// CompletedDate returns when the work finished, or nil while open.
func (w *WorkOrder) CompletedDate() *time.Time {
	return copyTime(w.completedDate)
}

// Quote returns the currently proposed quote, or nil when none exists.
func (w *WorkOrder) Quote() *Quote {
	return w.quote
}

// CustomerNotes returns notes visible to the customer.
func (w *WorkOrder) CustomerNotes() string {
	return w.customerNotes
}

// InternalNotes returns staff-only notes.
func (w *WorkOrder) InternalNotes() string {
	return w.internalNotes
}

// CreatedBy returns who opened the work order.
func (w *WorkOrder) CreatedBy() string {
	return w.createdBy
}

// AssignedTechnician returns the technician on the job, or an empty string
// when unassigned.
func (w *WorkOrder) AssignedTechnician() string {
	return w.assignedTechnician
}

// StartDiagnosis moves a Draft work order to PendingDiagnosis.
func (w *WorkOrder) StartDiagnosis() error {
	next, err := w.status.StartDiagnosis()
	if err != nil {
		return err
	}

	w.status = next
	w.Touch()
	return nil
}

// ProposeQuote constructs a new quote from the line items and moves the
// work order to AwaitingApproval, replacing any previously proposed quote.
// Raises a QuoteProposedEvent.
func (w *WorkOrder) ProposeQuote(
	lineItems []LineItem,
	estimatedHours decimal.Decimal,
	laborRatePerHour kernel.Money,
	validityDays int,
	notes string,
) error {
	next, err := w.status.ProposeQuote()
	if err != nil {
		return err
	}

	quote, err := NewQuote(lineItems, estimatedHours, laborRatePerHour, validityDays, notes)
	if err != nil {
		return err
	}

	w.quote = quote
	w.status = next
	w.Touch()

	w.RaiseDomainEvent(NewQuoteProposedEvent(w.ID(), quote.TotalAmount(), validityDays))
	return nil
}

// ApproveQuote records the customer's approval of the proposed quote and
// moves the work order to Approved. Raises a QuoteApprovedEvent.
func (w *WorkOrder) ApproveQuote(customerSignature string, approvalDate time.Time) error {
	if w.quote == nil {
		return ErrNoQuote
	}

	next, err := w.status.ApproveQuote()
	if err != nil {
		return err
	}

	if err := w.quote.Approve(customerSignature, approvalDate); err != nil {
		return err
	}

	w.status = next
	w.Touch()

	w.RaiseDomainEvent(NewQuoteApprovedEvent(
		w.ID(), w.quote.TotalAmount(), approvalDate, customerSignature))
	return nil
}

// RejectQuote records the customer's rejection and moves the work order to
// Rejected. A reason is required. Raises a QuoteRejectedEvent.
func (w *WorkOrder) RejectQuote(rejectionReason string) error {
	if w.quote == nil {
		return ErrNoQuote
	}
	if strings.TrimSpace(rejectionReason) == "" {
		return errs.NewValueIsRequiredError("rejectionReason")
	}

	next, err := w.status.RejectQuote()
	if err != nil {
		return err
	}

	w.status = next
	w.Touch()

	w.RaiseDomainEvent(NewQuoteRejectedEvent(w.ID(), rejectionReason))
	return nil
}

// Schedule books an Approved work order for a date no earlier than today.
// assignedTechnician is optional.
func (w *WorkOrder) Schedule(scheduledDate time.Time, assignedTechnician string) error {
	if w.status != StatusApproved {
		return errs.NewInvalidStateError("schedule", w.status.String())
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if scheduledDate.Before(today) {
		return errs.NewValueIsInvalidError("scheduledDate cannot be in the past")
	}

	date := scheduledDate
	w.scheduledDate = &date
	w.assignedTechnician = strings.TrimSpace(assignedTechnician)
	w.Touch()
	return nil
}

// StartWork moves an Approved work order to InProgress.
func (w *WorkOrder) StartWork() error {
	next, err := w.status.StartWork()
	if err != nil {
		return err
	}

	w.status = next
	w.Touch()
	return nil
}

// CompleteWork stamps the completion date and moves the work order to
// Completed.
func (w *WorkOrder) CompleteWork(completedDate time.Time) error {
	next, err := w.status.CompleteWork()
	if err != nil {
		return err
	}

	date := completedDate
	w.completedDate = &date
	w.status = next
	w.Touch()
	return nil
}

// MarkAsDelivered moves a Completed work order to Delivered.
func (w *WorkOrder) MarkAsDelivered() error {
	next, err := w.status.MarkAsDelivered()
	if err != nil {
		return err
	}

	w.status = next
	w.Touch()
	return nil
}

// Cancel calls the work order off and records the reason in the internal
// notes. Blocked only from Completed and Delivered; see Status.Cancel for
// the consequences of that guard.
func (w *WorkOrder) Cancel(cancellationReason string) error {
	if strings.TrimSpace(cancellationReason) == "" {
		return errs.NewValueIsRequiredError("cancellationReason")
	}

	next, err := w.status.Cancel()
	if err != nil {
		return err
	}

	w.status = next
	w.internalNotes = "Cancelled: " + cancellationReason
	w.Touch()
	return nil
}

// UpdateServiceDescription replaces the service description. Blocked for
// Completed and Delivered work orders.
func (w *WorkOrder) UpdateServiceDescription(newDescription string) error {
	if w.status == StatusCompleted || w.status == StatusDelivered {
		return errs.NewInvalidStateError("update service description", w.status.String())
	}
	if err := w.setServiceDescription(newDescription); err != nil {
		return err
	}

	w.Touch()
	return nil
}

// UpdatePriority changes the urgency level. Blocked for Completed and
// Delivered work orders.
func (w *WorkOrder) UpdatePriority(newPriority ServicePriority) error {
	if w.status == StatusCompleted || w.status == StatusDelivered {
		return errs.NewInvalidStateError("update priority", w.status.String())
	}
	if err := w.setPriority(newPriority); err != nil {
		return err
	}

	w.Touch()
	return nil
}

// UpdateCustomerNotes replaces the customer-visible notes.
func (w *WorkOrder) UpdateCustomerNotes(notes string) {
	w.customerNotes = strings.TrimSpace(notes)
	w.Touch()
}

// UpdateInternalNotes replaces the staff-only notes.
func (w *WorkOrder) UpdateInternalNotes(notes string) {
	w.internalNotes = strings.TrimSpace(notes)
	w.Touch()
}

// AssignTechnician puts a technician on the job. Blocked for Completed,
// Delivered, and Cancelled work orders.
func (w *WorkOrder) AssignTechnician(technicianName string) error {
	if strings.TrimSpace(technicianName) == "" {
		return errs.NewValueIsRequiredError("technicianName")
	}
	if w.status == StatusCompleted || w.status == StatusDelivered || w.status == StatusCancelled {
		return errs.NewInvalidStateError("assign technician", w.status.String())
	}

	w.assignedTechnician = strings.TrimSpace(technicianName)
	w.Touch()
	return nil
}

// IsOverdue reports whether the requested date has passed while the work
// order is still open.
func (w *WorkOrder) IsOverdue() bool {
	if w.status == StatusCompleted || w.status == StatusDelivered || w.status == StatusCancelled {
		return false
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	return w.requestedDate.Before(today)
}

// DaysOpen returns the whole days since the work order was created.
func (w *WorkOrder) DaysOpen() int {
	now := time.Now().UTC().Truncate(24 * time.Hour)
	created := w.CreatedAt().UTC().Truncate(24 * time.Hour)
	return int(now.Sub(created).Hours() / 24)
}

// HasApprovedQuote reports whether a quote exists and was approved.
func (w *WorkOrder) HasApprovedQuote() bool {
	return w.quote != nil && w.quote.IsApproved()
}

// ApprovedAmount returns the approved quote's total, or nil when no
// approved quote exists.
func (w *WorkOrder) ApprovedAmount() *kernel.Money {
	if !w.HasApprovedQuote() {
		return nil
	}
	amount := w.quote.TotalAmount()
	return &amount
}

// CanStartWork reports whether the work order is Approved with an approved
// quote.
func (w *WorkOrder) CanStartWork() bool {
	return w.status == StatusApproved && w.HasApprovedQuote()
}

// IsFinal reports whether the work order reached a terminal state.
func (w *WorkOrder) IsFinal() bool {
	return w.status.IsFinal()
}

func (w *WorkOrder) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	w.customerID = customerID
	return nil
}

func (w *WorkOrder) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	w.vehicleID = vehicleID
	return nil
}

func (w *WorkOrder) setServiceDescription(serviceDescription string) error {
	serviceDescription = strings.TrimSpace(serviceDescription)
	if serviceDescription == "" {
		return errs.NewValueIsRequiredError("serviceDescription")
	}

	w.serviceDescription = serviceDescription
	return nil
}

func (w *WorkOrder) setServiceType(serviceType ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}

	w.serviceType = serviceType
	return nil
}

func (w *WorkOrder) setPriority(priority ServicePriority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	w.priority = priority
	return nil
}

func (w *WorkOrder) setCreatedBy(createdBy string) error {
	createdBy = strings.TrimSpace(createdBy)
	if createdBy == "" {
		return errs.NewValueIsRequiredError("createdBy")
	}

	w.createdBy = createdBy
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	out := *t
	return &out
}
