package kernel

import (
	"fmt"
	"strings"

	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

// ErrContactInformationIsNotConstructed is returned when attempting to use an
// improperly initialized ContactInformation.
var ErrContactInformationIsNotConstructed = errs.NewValueIsRequiredError(
	"contact information must be created via NewContactInformation constructor")

// ContactInformation bundles how the workshop reaches a customer: full name,
// a normalized e-mail address (trimmed, lower-cased), a phone number, and a
// physical address. It is an immutable value object; updates return new
// instances (copy on write).
type ContactInformation struct { //nolint:recvcheck //using for validation
	fullName    string
	email       string
	phoneNumber string
	address     Address
	guard       guard.ConstructorGuard
}

// NewContactInformation creates validated contact information. All fields are
// required; the e-mail is trimmed and lower-cased.
func NewContactInformation(fullName, email, phoneNumber string, address Address) (ContactInformation, error) {
	c := ContactInformation{
		guard: guard.NewConstructorGuard(),
	}

	if err := c.setFullName(fullName); err != nil {
		return ContactInformation{}, err
	}
	if err := c.setEmail(email); err != nil {
		return ContactInformation{}, err
	}
	if err := c.setPhoneNumber(phoneNumber); err != nil {
		return ContactInformation{}, err
	}
	if err := c.setAddress(address); err != nil {
		return ContactInformation{}, err
	}

	return c, nil
}

// Validate checks if the ContactInformation was properly constructed.
func (c ContactInformation) Validate() error {
	return c.guard.Validate(ErrContactInformationIsNotConstructed)
}

// FullName returns the customer's full name.
func (c ContactInformation) FullName() string { return c.fullName }

// Email returns the normalized e-mail address.
func (c ContactInformation) Email() string { return c.email }

// PhoneNumber returns the phone number.
func (c ContactInformation) PhoneNumber() string { return c.phoneNumber }

// Address returns the physical address.
func (c ContactInformation) Address() Address { return c.address }

// WithEmail returns a copy of the contact information with a new normalized
// e-mail address. The receiver is left unchanged.
func (c ContactInformation) WithEmail(newEmail string) (ContactInformation, error) {
	if err := c.Validate(); err != nil {
		return ContactInformation{}, err
	}

	updated := c
	if err := updated.setEmail(newEmail); err != nil {
		return ContactInformation{}, err
	}
	return updated, nil
}

// WithPhoneNumber returns a copy of the contact information with a new phone
// number. The receiver is left unchanged.
func (c ContactInformation) WithPhoneNumber(newPhoneNumber string) (ContactInformation, error) {
	if err := c.Validate(); err != nil {
		return ContactInformation{}, err
	}

	updated := c
	if err := updated.setPhoneNumber(newPhoneNumber); err != nil {
		return ContactInformation{}, err
	}
	return updated, nil
}

// IsEqual compares two contact information values structurally.
func (c ContactInformation) IsEqual(other ContactInformation) bool {
	return c.fullName == other.fullName &&
		c.email == other.email &&
		c.phoneNumber == other.phoneNumber &&
		c.address.IsEqual(other.address)
}

func (c *ContactInformation) setFullName(fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	c.fullName = fullName
	return nil
}

func (c *ContactInformation) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause("email",
			fmt.Errorf("%q is not an e-mail address", email))
	}
	c.email = email
	return nil
}

func (c *ContactInformation) setPhoneNumber(phoneNumber string) error {
	phoneNumber = strings.TrimSpace(phoneNumber)
	if phoneNumber == "" {
		return errs.NewValueIsRequiredError("phoneNumber")
	}
	c.phoneNumber = phoneNumber
	return nil
}

func (c *ContactInformation) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address
	return nil
}
