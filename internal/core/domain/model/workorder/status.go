package workorder

import (
	"fmt"

	"workshop/internal/pkg/errs"
)

// Status represents the lifecycle state of a work order.
// It implements a state machine with defined transitions to ensure work
// orders follow the repair-shop workflow.
//
// State transitions:
//
//	Draft ──> PendingDiagnosis ──> QuoteInPreparation
//	                 │                      │
//	                 └──────> AwaitingApproval <────┘
//	                          │            │
//	                     Approved       Rejected
//	                          │
//	                     InProgress ──> Completed ──> Delivered
//
// Any state except Completed and Delivered may additionally transition to
// Cancelled. Delivered, Cancelled, and Rejected are final.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusDraft is the initial status when a service request is created.
	StatusDraft

	// StatusPendingDiagnosis means the work order awaits initial assessment.
	StatusPendingDiagnosis

	// StatusQuoteInPreparation means diagnosis is done and a quote is being drafted.
	StatusQuoteInPreparation

	// StatusAwaitingApproval means a quote was sent to the customer.
	StatusAwaitingApproval

	// StatusApproved means the customer approved the quote.
	StatusApproved

	// StatusInProgress means work is underway in the workshop.
	StatusInProgress

	// StatusCompleted means work is done and the vehicle is ready for pickup.
	StatusCompleted

	// StatusDelivered means the vehicle was handed back to the customer.
	StatusDelivered

	// StatusRejected means the customer rejected the quote.
	StatusRejected

	// StatusCancelled means the work order was called off.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:            "Unknown",
		StatusDraft:              "Draft",
		StatusPendingDiagnosis:   "PendingDiagnosis",
		StatusQuoteInPreparation: "QuoteInPreparation",
		StatusAwaitingApproval:   "AwaitingApproval",
		StatusApproved:           "Approved",
		StatusInProgress:         "InProgress",
		StatusCompleted:          "Completed",
		StatusDelivered:          "Delivered",
		StatusRejected:           "Rejected",
		StatusCancelled:          "Cancelled",
	}
}

// StatusFromString parses a status name as produced by String.
// Unknown is not accepted.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// String returns the status name, or "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks if the Status is one of the defined workflow states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsFinal reports whether no further transitions are possible.
// Note that Cancelled is listed as final for reporting purposes even though
// the Cancel guard itself only blocks Completed and Delivered; see Cancel.
func (s Status) IsFinal() bool {
	return s == StatusDelivered || s == StatusCancelled || s == StatusRejected
}

// StartDiagnosis returns the status after starting diagnosis.
// Allowed only from Draft.
func (s Status) StartDiagnosis() (Status, error) {
	if s != StatusDraft {
		return s, errs.NewInvalidStateError("start diagnosis", s.String())
	}
	return StatusPendingDiagnosis, nil
}

// ProposeQuote returns the status after a quote is proposed.
// Allowed from PendingDiagnosis and QuoteInPreparation.
func (s Status) ProposeQuote() (Status, error) {
	if s != StatusPendingDiagnosis && s != StatusQuoteInPreparation {
		return s, errs.NewInvalidStateError("propose quote", s.String())
	}
	return StatusAwaitingApproval, nil
}

// ApproveQuote returns the status after the customer approves the quote.
// Allowed only from AwaitingApproval.
func (s Status) ApproveQuote() (Status, error) {
	if s != StatusAwaitingApproval {
		return s, errs.NewInvalidStateError("approve quote", s.String())
	}
	return StatusApproved, nil
}

// RejectQuote returns the status after the customer rejects the quote.
// Allowed only from AwaitingApproval.
func (s Status) RejectQuote() (Status, error) {
	if s != StatusAwaitingApproval {
		return s, errs.NewInvalidStateError("reject quote", s.String())
	}
	return StatusRejected, nil
}

// StartWork returns the status after the workshop picks up the job.
// Allowed only from Approved.
func (s Status) StartWork() (Status, error) {
	if s != StatusApproved {
		return s, errs.NewInvalidStateError("start work", s.String())
	}
	return StatusInProgress, nil
}

// CompleteWork returns the status after the job is finished.
// Allowed only from InProgress.
func (s Status) CompleteWork() (Status, error) {
	if s != StatusInProgress {
		return s, errs.NewInvalidStateError("complete work", s.String())
	}
	return StatusCompleted, nil
}

// MarkAsDelivered returns the status after the vehicle is handed back.
// Allowed only from Completed.
func (s Status) MarkAsDelivered() (Status, error) {
	if s != StatusCompleted {
		return s, errs.NewInvalidStateError("mark as delivered", s.String())
	}
	return StatusDelivered, nil
}

// Cancel returns the status after cancellation. The guard blocks only
// Completed and Delivered, so cancelling an already Cancelled or Rejected
// work order currently succeeds. Pending product clarification this guard
// is kept as is; tests pin the behavior.
func (s Status) Cancel() (Status, error) {
	if s == StatusCompleted || s == StatusDelivered {
		return s, errs.NewInvalidStateError("cancel", s.String())
	}
	return StatusCancelled, nil
}
