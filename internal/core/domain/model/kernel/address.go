package kernel

import (
	"fmt"
	"strings"

	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

// defaultCountry is assumed when no country is given; the workshop operates
// in Brazil.
const defaultCountry = "Brasil"

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address represents a physical address. It is an immutable value object;
// all fields are trimmed and required except country, which defaults to the
// workshop's home country when empty.
type Address struct { //nolint:recvcheck //using for validation
	street     string
	city       string
	state      string
	postalCode string
	country    string
	guard      guard.ConstructorGuard
}

// NewAddress creates a validated Address. Street, city, state, and postal
// code are required; a blank country falls back to the default.
func NewAddress(street, city, state, postalCode, country string) (Address, error) {
	a := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := a.setField(&a.street, "street", street); err != nil {
		return Address{}, err
	}
	if err := a.setField(&a.city, "city", city); err != nil {
		return Address{}, err
	}
	if err := a.setField(&a.state, "state", state); err != nil {
		return Address{}, err
	}
	if err := a.setField(&a.postalCode, "postalCode", postalCode); err != nil {
		return Address{}, err
	}

	country = strings.TrimSpace(country)
	if country == "" {
		country = defaultCountry
	}
	a.country = country

	return a, nil
}

// Validate checks if the Address was properly constructed using NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line.
func (a Address) Street() string { return a.street }

// City returns the city.
func (a Address) City() string { return a.city }

// State returns the state or province.
func (a Address) State() string { return a.state }

// PostalCode returns the postal code.
func (a Address) PostalCode() string { return a.postalCode }

// Country returns the country.
func (a Address) Country() string { return a.country }

// IsEqual compares two addresses structurally.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street &&
		a.city == other.city &&
		a.state == other.state &&
		a.postalCode == other.postalCode &&
		a.country == other.country
}

// String returns the full address as a single formatted line.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s %s, %s", a.street, a.city, a.state, a.postalCode, a.country)
}

func (a *Address) setField(dst *string, name, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*dst = value
	return nil
}
