package workorder

import (
	"errors"
	"strings"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrLineItemIsNotConstructed is returned when using an improperly
// initialized LineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is an immutable priced line of a quote: a part or a labor
// position with a quantity and unit price. The total price is fixed at
// construction as unitPrice × quantity.
type LineItem struct {
	id          kernel.UUID
	description string
	quantity    int
	unitPrice   kernel.Money
	totalPrice  kernel.Money
	partNumber  string
	isLabor     bool
	guard       guard.ConstructorGuard
}

// NewLineItem creates a line item with a fresh id. partNumber is optional
// and only meaningful for parts; isLabor marks labor positions.
func NewLineItem(
	description string,
	quantity int,
	unitPrice kernel.Money,
	partNumber string,
	isLabor bool,
) (LineItem, error) {
	return newLineItem(kernel.NewUUID(), description, quantity, unitPrice, partNumber, isLabor)
}

// RestoreLineItem reconstructs a line item from persistent storage.
func RestoreLineItem(
	id kernel.UUID,
	description string,
	quantity int,
	unitPrice kernel.Money,
	partNumber string,
	isLabor bool,
) (LineItem, error) {
	if err := id.Validate(); err != nil {
		return LineItem{}, err
	}
	return newLineItem(id, description, quantity, unitPrice, partNumber, isLabor)
}

func newLineItem(
	id kernel.UUID,
	description string,
	quantity int,
	unitPrice kernel.Money,
	partNumber string,
	isLabor bool,
) (LineItem, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return LineItem{}, errs.NewValueIsRequiredError("description")
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidError("quantity must be positive")
	}
	if err := unitPrice.Validate(); err != nil {
		return LineItem{}, err
	}

	totalPrice, err := unitPrice.Multiply(decimal.NewFromInt(int64(quantity)))
	if err != nil {
		return LineItem{}, err
	}

	return LineItem{
		id:          id,
		description: description,
		quantity:    quantity,
		unitPrice:   unitPrice,
		totalPrice:  totalPrice,
		partNumber:  strings.TrimSpace(partNumber),
		isLabor:     isLabor,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// ID returns the line item's unique identifier.
func (li LineItem) ID() kernel.UUID {
	return li.id
}

// Description returns what the line covers.
func (li LineItem) Description() string {
	return li.description
}

// Quantity returns how many units the line covers.
func (li LineItem) Quantity() int {
	return li.quantity
}

// UnitPrice returns the price of a single unit.
func (li LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

// TotalPrice returns unitPrice × quantity.
func (li LineItem) TotalPrice() kernel.Money {
	return li.totalPrice
}

// PartNumber returns the manufacturer part number, or an empty string for
// labor lines and unlisted parts.
func (li LineItem) PartNumber() string {
	return li.partNumber
}

// IsLabor reports whether the line is a labor position.
func (li LineItem) IsLabor() bool {
	return li.isLabor
}

// Validate checks if the LineItem was properly constructed.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}
