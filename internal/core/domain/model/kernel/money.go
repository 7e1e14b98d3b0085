package kernel

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency assumed by the workshop ledger when callers
// have no reason to use anything else.
const DefaultCurrency = "BRL"

var (
	// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
	// initialized Money. Money must be created via NewMoney or ZeroMoney.
	ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
		"money must be created via NewMoney or ZeroMoney constructors")

	// ErrCurrencyMismatch is returned when arithmetic is attempted across two
	// different currencies. The ledger is single-currency per aggregate; no
	// implicit conversion ever happens.
	ErrCurrencyMismatch = errors.New("currency mismatch")
)

// CurrencyMismatchError reports an Add/Subtract across differing currencies,
// naming both sides.
type CurrencyMismatchError struct {
	Left  string
	Right string
}

func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf("currency mismatch: %s and %s", e.Left, e.Right)
}

func (e *CurrencyMismatchError) Unwrap() error {
	return ErrCurrencyMismatch
}

// Money represents a monetary value in the workshop ledger.
// It is an immutable value object: the amount is always rounded to two
// decimal places, never negative, and bound to a single upper-cased
// three-letter currency code. Every arithmetic operation returns a new
// instance.
//
// The zero value of Money is invalid and will fail validation - use the
// constructors to create instances.
//
// Example:
//
//	price, err := kernel.NewMoney(decimal.NewFromInt(80), "BRL")
//	if err != nil {
//	    // handle validation error
//	}
//	total, err := price.Multiply(decimal.NewFromInt(2))
type Money struct { //nolint:recvcheck //using for validation
	amount   decimal.Decimal
	currency string
	guard    guard.ConstructorGuard
}

// NewMoney creates a Money value with the given amount and currency.
// The amount is rounded to two decimal places; negative amounts are
// rejected. The currency must be a three-letter code and is upper-cased.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	m := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := m.setAmount(amount); err != nil {
		return Money{}, err
	}
	if err := m.setCurrency(currency); err != nil {
		return Money{}, err
	}

	return m, nil
}

// ZeroMoney creates a zero-amount Money in the given currency.
func ZeroMoney(currency string) (Money, error) {
	return NewMoney(decimal.Zero, currency)
}

// Validate checks if the Money was properly constructed using a constructor.
// The zero value of Money is invalid and will fail this validation.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the monetary amount, always rounded to two decimal places.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the upper-cased three-letter currency code.
func (m Money) Currency() string {
	return m.currency
}

// Add returns the sum of two Money values. Both values must be properly
// constructed and carry the same currency.
func (m Money) Add(other Money) (Money, error) {
	if err := m.validatePair(other); err != nil {
		return Money{}, err
	}

	return NewMoney(m.amount.Add(other.amount), m.currency)
}

// Subtract returns the difference of two Money values. Both values must be
// properly constructed and carry the same currency; a result below zero is
// rejected because the ledger never holds negative amounts.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.validatePair(other); err != nil {
		return Money{}, err
	}

	return NewMoney(m.amount.Sub(other.amount), m.currency)
}

// Multiply returns the Money scaled by the given factor, rounded to two
// decimal places. Negative factors are rejected.
func (m Money) Multiply(factor decimal.Decimal) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}

	return NewMoney(m.amount.Mul(factor), m.currency)
}

// IsEqual compares two Money values structurally: same currency and same
// two-decimal amount.
func (m Money) IsEqual(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String formats the value for display, with currency-specific symbols for
// the currencies the workshop commonly bills in.
func (m Money) String() string {
	switch m.currency {
	case "BRL":
		return fmt.Sprintf("R$ %s", m.amount.StringFixed(2))
	case "USD":
		return fmt.Sprintf("$ %s", m.amount.StringFixed(2))
	case "EUR":
		return fmt.Sprintf("€ %s", m.amount.StringFixed(2))
	default:
		return fmt.Sprintf("%s %s", m.amount.StringFixed(2), m.currency)
	}
}

func (m Money) validatePair(other Money) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if err := other.Validate(); err != nil {
		return err
	}
	if m.currency != other.currency {
		return &CurrencyMismatchError{Left: m.currency, Right: other.currency}
	}
	return nil
}

// setAmount rounds and validates the amount.
// Note: pointer receiver on a private setter for self-encapsulated
// construction-time validation, mirroring the other kernel value objects.
func (m *Money) setAmount(amount decimal.Decimal) error {
	rounded := amount.Round(2)
	if rounded.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", rounded.String()))
	}

	m.amount = rounded
	return nil
}

// setCurrency normalizes and validates the currency code.
func (m *Money) setCurrency(currency string) error {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if len(code) != 3 {
		return errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%q is not a three-letter code", currency))
	}
	for _, r := range code {
		if !unicode.IsLetter(r) {
			return errs.NewValueIsInvalidErrorWithCause("currency",
				fmt.Errorf("%q is not a three-letter code", currency))
		}
	}

	m.currency = code
	return nil
}
