package vehicle

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

const (
	vinLength    = 17
	minModelYear = 1900
)

// ErrIdentificationIsNotConstructed is returned when using an improperly
// initialized Identification.
var ErrIdentificationIsNotConstructed = errors.New(
	"Identification must be created via NewIdentification constructor")

// Identification is a value object holding the physical identity of a
// vehicle: VIN, license plate, make, model, year, and color. Immutable;
// replacing any field means constructing a new instance.
type Identification struct {
	vin          string
	licensePlate LicensePlate
	make         string
	model        string
	year         int
	color        string
	guard        guard.ConstructorGuard
}

// NewIdentification validates and normalizes the vehicle identity fields.
// The VIN must be 17 alphanumeric characters (upper-cased on construction);
// the year must fall between 1900 and the next calendar year.
func NewIdentification(
	vin string,
	licensePlate LicensePlate,
	vehicleMake string,
	model string,
	year int,
	color string,
) (Identification, error) {
	identification := Identification{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		identification.setVin(vin),
		identification.setLicensePlate(licensePlate),
		identification.setMake(vehicleMake),
		identification.setModel(model),
		identification.setYear(year),
		identification.setColor(color),
	); err != nil {
		return Identification{}, err
	}

	return identification, nil
}

// Vin returns the normalized 17-character VIN.
func (i Identification) Vin() string {
	return i.vin
}

// LicensePlate returns the vehicle's license plate.
func (i Identification) LicensePlate() LicensePlate {
	return i.licensePlate
}

// Make returns the manufacturer name.
func (i Identification) Make() string {
	return i.make
}

// Model returns the model name.
func (i Identification) Model() string {
	return i.model
}

// Year returns the model year.
func (i Identification) Year() int {
	return i.year
}

// Color returns the vehicle color.
func (i Identification) Color() string {
	return i.color
}

// IsEqual compares two identifications by structural equality.
func (i Identification) IsEqual(other Identification) bool {
	return i.vin == other.vin &&
		i.licensePlate.IsEqual(other.licensePlate) &&
		i.make == other.make &&
		i.model == other.model &&
		i.year == other.year &&
		i.color == other.color
}

// String returns a display-friendly description, e.g.
// "2021 Fiat Argo (Prata) - ABC1D23".
func (i Identification) String() string {
	return fmt.Sprintf("%d %s %s (%s) - %s", i.year, i.make, i.model, i.color, i.licensePlate)
}

// Validate checks if the Identification was properly constructed.
func (i Identification) Validate() error {
	return i.guard.Validate(ErrIdentificationIsNotConstructed)
}

func (i *Identification) setVin(vin string) error {
	vin = strings.ToUpper(strings.TrimSpace(vin))
	if vin == "" {
		return errs.NewValueIsRequiredError("vin")
	}
	if len(vin) != vinLength {
		return errs.NewValueIsInvalidError("vin must be 17 characters")
	}
	for _, r := range vin {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return errs.NewValueIsInvalidError("vin must be alphanumeric")
		}
	}

	i.vin = vin
	return nil
}

func (i *Identification) setLicensePlate(licensePlate LicensePlate) error {
	if err := licensePlate.Validate(); err != nil {
		return err
	}

	i.licensePlate = licensePlate
	return nil
}

func (i *Identification) setMake(vehicleMake string) error {
	vehicleMake = strings.TrimSpace(vehicleMake)
	if vehicleMake == "" {
		return errs.NewValueIsRequiredError("make")
	}

	i.make = vehicleMake
	return nil
}

func (i *Identification) setModel(model string) error {
	model = strings.TrimSpace(model)
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}

	i.model = model
	return nil
}

func (i *Identification) setYear(year int) error {
	maxYear := time.Now().Year() + 1
	if year < minModelYear || year > maxYear {
		return errs.NewValueIsOutOfRangeError("year", year, minModelYear, maxYear)
	}

	i.year = year
	return nil
}

func (i *Identification) setColor(color string) error {
	color = strings.TrimSpace(color)
	if color == "" {
		return errs.NewValueIsRequiredError("color")
	}

	i.color = color
	return nil
}
