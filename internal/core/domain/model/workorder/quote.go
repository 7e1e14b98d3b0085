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

// DefaultValidityDays is how long a quote stays open for approval unless
// the proposer chooses otherwise.
const DefaultValidityDays = 30

// Domain errors for quote operations.
var (
	// ErrQuoteIsNotConstructed is returned when using an improperly initialized Quote.
	ErrQuoteIsNotConstructed = errors.New("Quote must be created via NewQuote constructor")
	// ErrEmptyQuote is returned when constructing a quote without line items.
	ErrEmptyQuote = errs.NewValueIsRequiredError("quote must have at least one line item")
	// ErrNegativeHours is returned when estimated labor hours are negative.
	ErrNegativeHours = errs.NewValueIsInvalidError("estimated hours cannot be negative")
	// ErrQuoteAlreadyApproved is returned when approving a quote twice.
	ErrQuoteAlreadyApproved = errs.NewInvalidStateError("approve quote", "already approved")
	// ErrQuoteExpired is returned when approving a quote past its expiration.
	ErrQuoteExpired = errs.NewInvalidStateError("approve quote", "quote has expired")
)

// Quote is an entity owned exclusively by one WorkOrder: a priced proposal
// of parts and labor subject to customer approval before work starts.
//
// Cost invariant: totalAmount = partsCost + laborCost at all times, where
// partsCost is the sum of all line totals and laborCost = hours × rate.
// Every mutation recomputes the totals. Once approved, the line items,
// hours, and expiration are frozen; only approval metadata remains.
//
// Expiration: a quote is expired only while unapproved and past expiresAt.
// An approved quote is never expired, even past its original expiry.
type Quote struct {
	kernel.Entity
	lineItems         []LineItem
	estimatedHours    decimal.Decimal
	laborCost         kernel.Money
	partsCost         kernel.Money
	totalAmount       kernel.Money
	expiresAt         time.Time
	isApproved        bool
	approvedAt        *time.Time
	customerSignature string
	notes             string
	guard             guard.ConstructorGuard
}

// NewQuote creates an unapproved quote from at least one line item.
// laborRatePerHour sets the labor cost currency; all line items must use
// the same currency. notes is optional.
func NewQuote(
	lineItems []LineItem,
	estimatedHours decimal.Decimal,
	laborRatePerHour kernel.Money,
	validityDays int,
	notes string,
) (*Quote, error) {
	quote := &Quote{
		guard: guard.NewConstructorGuard(),
	}

	if validityDays <= 0 {
		return nil, errs.NewValueIsInvalidError("validityDays must be positive")
	}

	if err := errors.Join(
		quote.setLineItems(lineItems),
		quote.setLaborCost(estimatedHours, laborRatePerHour),
	); err != nil {
		return nil, err
	}

	quote.Entity = kernel.NewEntity()
	quote.expiresAt = quote.CreatedAt().AddDate(0, 0, validityDays)
	quote.notes = notes

	if err := quote.recalculateTotals(); err != nil {
		return nil, err
	}

	return quote, nil
}

// RestoreQuote reconstructs a Quote from persistent storage, including
// approved and expired quotes that could no longer be built through
// NewQuote. Parts and total costs are recomputed from the line items and
// the stored labor cost.
func RestoreQuote(
	id kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
	isDeleted bool,
	lineItems []LineItem,
	estimatedHours decimal.Decimal,
	laborCost kernel.Money,
	expiresAt time.Time,
	isApproved bool,
	approvedAt *time.Time,
	customerSignature string,
	notes string,
) (*Quote, error) {
	quote := &Quote{
		guard: guard.NewConstructorGuard(),
	}

	entity, err := kernel.RestoreEntity(id, createdAt, updatedAt, isDeleted)
	if err != nil {
		return nil, err
	}

	if err := quote.setLineItems(lineItems); err != nil {
		return nil, err
	}
	if err := laborCost.Validate(); err != nil {
		return nil, err
	}
	if estimatedHours.IsNegative() {
		return nil, ErrNegativeHours
	}

	quote.Entity = entity
	quote.estimatedHours = estimatedHours
	quote.laborCost = laborCost
	quote.expiresAt = expiresAt
	quote.isApproved = isApproved
	quote.customerSignature = customerSignature
	quote.notes = notes
	if approvedAt != nil {
		at := *approvedAt
		quote.approvedAt = &at
	}

	if err := quote.recalculateTotals(); err != nil {
		return nil, err
	}

	return quote, nil
}

// Validate checks if the Quote was properly constructed.
func (q *Quote) Validate() error {
	if q == nil {
		return ErrQuoteIsNotConstructed
	}
	return q.guard.Validate(ErrQuoteIsNotConstructed)
}

// LineItems returns the quote's line items in proposal order.
// The returned slice is a copy.
func (q *Quote) LineItems() []LineItem {
	out := make([]LineItem, len(q.lineItems))
	copy(out, q.lineItems)
	return out
}

// EstimatedHours returns the estimated labor hours.
func (q *Quote) EstimatedHours() decimal.Decimal {
	return q.estimatedHours
}

// LaborCost returns hours × rate.
func (q *Quote) LaborCost() kernel.Money {
	return q.laborCost
}

// PartsCost returns the sum of all line item totals.
func (q *Quote) PartsCost() kernel.Money {
	return q.partsCost
}

// TotalAmount returns partsCost + laborCost.
func (q *Quote) TotalAmount() kernel.Money {
	return q.totalAmount
}

// ExpiresAt returns when the quote stops being approvable.
func (q *Quote) ExpiresAt() time.Time {
	return q.expiresAt
}

// IsApproved reports whether the customer has approved the quote.
func (q *Quote) IsApproved() bool {
	return q.isApproved
}

// ApprovedAt returns when the quote was approved, or nil when unapproved.
func (q *Quote) ApprovedAt() *time.Time {
	if q.approvedAt == nil {
		return nil
	}
	at := *q.approvedAt
	return &at
}

// CustomerSignature returns the signature given on approval, or an empty
// string when unapproved.
func (q *Quote) CustomerSignature() string {
	return q.customerSignature
}

// Notes returns free-form notes attached to the quote.
func (q *Quote) Notes() string {
	return q.notes
}

// IsExpired reports whether the quote is unapproved and past expiresAt.
func (q *Quote) IsExpired() bool {
	return !q.isApproved && time.Now().UTC().After(q.expiresAt)
}

// DaysUntilExpiration returns whole days until the quote expires; negative
// when already past due.
func (q *Quote) DaysUntilExpiration() int {
	now := time.Now().UTC().Truncate(24 * time.Hour)
	expires := q.expiresAt.UTC().Truncate(24 * time.Hour)
	return int(expires.Sub(now).Hours() / 24)
}

// Approve records the customer's approval. Fails when the signature is
// blank, the quote is already approved, or the quote has expired. On
// success the quote's contents are frozen.
func (q *Quote) Approve(customerSignature string, approvalDate time.Time) error {
	if strings.TrimSpace(customerSignature) == "" {
		return errs.NewValueIsRequiredError("customerSignature")
	}
	if q.isApproved {
		return ErrQuoteAlreadyApproved
	}
	if time.Now().UTC().After(q.expiresAt) {
		return ErrQuoteExpired
	}

	q.isApproved = true
	at := approvalDate
	q.approvedAt = &at
	q.customerSignature = customerSignature
	q.Touch()
	return nil
}

// AddLineItem appends a line item and recomputes the totals.
// Fails on approved quotes.
func (q *Quote) AddLineItem(lineItem LineItem) error {
	if err := lineItem.Validate(); err != nil {
		return err
	}
	if q.isApproved {
		return errs.NewInvalidStateError("add line item", "approved quote")
	}

	q.lineItems = append(q.lineItems, lineItem)
	if err := q.recalculateTotals(); err != nil {
		q.lineItems = q.lineItems[:len(q.lineItems)-1]
		return err
	}

	q.Touch()
	return nil
}

// RemoveLineItem drops a line item by id and recomputes the totals.
// Removing an absent id is a no-op. Fails on approved quotes.
func (q *Quote) RemoveLineItem(lineItemID kernel.UUID) error {
	if q.isApproved {
		return errs.NewInvalidStateError("remove line item", "approved quote")
	}

	for i, item := range q.lineItems {
		if item.ID().IsEqual(lineItemID) {
			q.lineItems = append(q.lineItems[:i], q.lineItems[i+1:]...)
			if err := q.recalculateTotals(); err != nil {
				return err
			}
			q.Touch()
			return nil
		}
	}

	return nil
}

// UpdateEstimatedHours replaces the labor estimate and recomputes the
// totals. Fails on approved quotes.
func (q *Quote) UpdateEstimatedHours(newEstimatedHours decimal.Decimal, laborRatePerHour kernel.Money) error {
	if q.isApproved {
		return errs.NewInvalidStateError("update estimated hours", "approved quote")
	}
	if err := q.setLaborCost(newEstimatedHours, laborRatePerHour); err != nil {
		return err
	}
	if err := q.recalculateTotals(); err != nil {
		return err
	}

	q.Touch()
	return nil
}

// ExtendExpiration pushes the expiration out by additionalDays.
// Fails on approved quotes and non-positive day counts.
func (q *Quote) ExtendExpiration(additionalDays int) error {
	if additionalDays <= 0 {
		return errs.NewValueIsInvalidError("additionalDays must be positive")
	}
	if q.isApproved {
		return errs.NewInvalidStateError("extend expiration", "approved quote")
	}

	q.expiresAt = q.expiresAt.AddDate(0, 0, additionalDays)
	q.Touch()
	return nil
}

func (q *Quote) setLineItems(lineItems []LineItem) error {
	if len(lineItems) == 0 {
		return ErrEmptyQuote
	}
	for _, item := range lineItems {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	q.lineItems = make([]LineItem, len(lineItems))
	copy(q.lineItems, lineItems)
	return nil
}

func (q *Quote) setLaborCost(estimatedHours decimal.Decimal, laborRatePerHour kernel.Money) error {
	if estimatedHours.IsNegative() {
		return ErrNegativeHours
	}

	laborCost, err := laborRatePerHour.Multiply(estimatedHours)
	if err != nil {
		return err
	}

	q.estimatedHours = estimatedHours
	q.laborCost = laborCost
	return nil
}

func (q *Quote) recalculateTotals() error {
	partsCost, err := kernel.ZeroMoney(q.laborCost.Currency())
	if err != nil {
		return err
	}

	for _, item := range q.lineItems {
		partsCost, err = partsCost.Add(item.TotalPrice())
		if err != nil {
			return err
		}
	}

	totalAmount, err := partsCost.Add(q.laborCost)
	if err != nil {
		return err
	}

	q.partsCost = partsCost
	q.totalAmount = totalAmount
	return nil
}
