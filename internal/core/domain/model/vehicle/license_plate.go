package vehicle

import (
	"regexp"
	"strings"

	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

// Brazilian plate formats. Classic plates carry three letters and four
// digits (ABC1234); Mercosul plates swap the fifth character for a letter
// (ABC1D23). Both are matched after normalization, so "abc-1234" and
// "ABC1234" are the same plate.
var (
	classicPlatePattern  = regexp.MustCompile(`^[A-Z]{3}[0-9]{4}$`)
	mercosulPlatePattern = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z][0-9]{2}$`)
)

// ErrLicensePlateIsNotConstructed is returned when using an improperly
// initialized LicensePlate.
var ErrLicensePlateIsNotConstructed = errs.NewValueIsRequiredError(
	"LicensePlate must be created via NewLicensePlate")

// LicensePlate is a value object holding a normalized Brazilian license
// plate: upper-case, hyphens stripped, matching either the classic or the
// Mercosul format. Stored plates round-trip unchanged because normalization
// happens before validation.
type LicensePlate struct {
	value string
	guard guard.ConstructorGuard
}

// NewLicensePlate normalizes raw input (upper-case first, then strip
// hyphens) and validates it against the two supported formats.
func NewLicensePlate(raw string) (LicensePlate, error) {
	if strings.TrimSpace(raw) == "" {
		return LicensePlate{}, errs.NewValueIsRequiredError("licensePlate")
	}

	normalized := strings.ToUpper(strings.TrimSpace(raw))
	normalized = strings.ReplaceAll(normalized, "-", "")

	if !classicPlatePattern.MatchString(normalized) && !mercosulPlatePattern.MatchString(normalized) {
		return LicensePlate{}, errs.NewValueIsInvalidError("licensePlate must match ABC1234 or ABC1D23")
	}

	return LicensePlate{
		value: normalized,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Value returns the normalized plate string.
func (p LicensePlate) Value() string {
	return p.value
}

// IsMercosul reports whether the plate uses the Mercosul format.
func (p LicensePlate) IsMercosul() bool {
	return mercosulPlatePattern.MatchString(p.value)
}

// IsEqual compares two plates by their normalized value.
func (p LicensePlate) IsEqual(other LicensePlate) bool {
	return p.value == other.value
}

// String returns the normalized plate string.
func (p LicensePlate) String() string {
	return p.value
}

// Validate checks if the LicensePlate was properly constructed.
func (p LicensePlate) Validate() error {
	return p.guard.Validate(ErrLicensePlateIsNotConstructed)
}
