package services

import (
	"fmt"
	"strings"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workorder"
	"workshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Labor rate categories understood by the pricing service.
const (
	LaborCategoryStandard   = "Standard"
	LaborCategoryDiagnostic = "Diagnostic"
	LaborCategorySpecialist = "Specialist"
	LaborCategoryEmergency  = "Emergency"
)

// Part markup categories understood by the pricing service.
const (
	PartCategoryStandard    = "Standard"
	PartCategoryOEM         = "OEM"
	PartCategoryAftermarket = "Aftermarket"
)

// ServiceItem is a part or material entering quote generation, priced at
// base cost before markup.
type ServiceItem struct {
	Description string
	Category    string
	Quantity    int
	UnitCost    kernel.Money
	PartNumber  string
}

// NewServiceItem validates and creates a ServiceItem.
func NewServiceItem(description, category string, quantity int, unitCost kernel.Money, partNumber string) (ServiceItem, error) {
	if strings.TrimSpace(description) == "" {
		return ServiceItem{}, errs.NewValueIsRequiredError("description")
	}
	if quantity <= 0 {
		return ServiceItem{}, errs.NewValueIsInvalidError("quantity must be positive")
	}
	if err := unitCost.Validate(); err != nil {
		return ServiceItem{}, err
	}

	return ServiceItem{
		Description: strings.TrimSpace(description),
		Category:    category,
		Quantity:    quantity,
		UnitCost:    unitCost,
		PartNumber:  strings.TrimSpace(partNumber),
	}, nil
}

// QuotePricingService encodes the shop's pricing policy: hourly labor rates
// per service category and part markups per sourcing category. Unknown
// categories fall back to the Standard rates.
type QuotePricingService struct {
	laborRates  map[string]decimal.Decimal
	markupRates map[string]decimal.Decimal
}

// NewQuotePricingService creates a pricing service with the shop's default
// rate tables.
func NewQuotePricingService() QuotePricingService {
	return QuotePricingService{
		laborRates: map[string]decimal.Decimal{
			LaborCategoryStandard:   decimal.NewFromInt(120),
			LaborCategoryDiagnostic: decimal.NewFromInt(150),
			LaborCategorySpecialist: decimal.NewFromInt(180),
			LaborCategoryEmergency:  decimal.NewFromInt(220),
		},
		markupRates: map[string]decimal.Decimal{
			PartCategoryStandard:    decimal.RequireFromString("1.25"),
			PartCategoryOEM:         decimal.RequireFromString("1.15"),
			PartCategoryAftermarket: decimal.RequireFromString("1.35"),
		},
	}
}

// LaborRate returns the hourly rate for a service category in the given
// currency. Unknown categories get the Standard rate.
func (s QuotePricingService) LaborRate(serviceCategory, currency string) (kernel.Money, error) {
	rate, ok := s.laborRates[serviceCategory]
	if !ok {
		rate = s.laborRates[LaborCategoryStandard]
	}
	return kernel.NewMoney(rate, currency)
}

// CalculateLaborCost prices estimated hours at the category's hourly rate.
func (s QuotePricingService) CalculateLaborCost(
	serviceCategory string,
	hours decimal.Decimal,
	currency string,
) (kernel.Money, error) {
	rate, err := s.LaborRate(serviceCategory, currency)
	if err != nil {
		return kernel.Money{}, err
	}
	return rate.Multiply(hours)
}

// CalculatePartCost applies the sourcing category's markup to a base part
// cost. Unknown categories get the Standard markup.
func (s QuotePricingService) CalculatePartCost(baseCost kernel.Money, partCategory string) (kernel.Money, error) {
	markup, ok := s.markupRates[partCategory]
	if !ok {
		markup = s.markupRates[PartCategoryStandard]
	}
	return baseCost.Multiply(markup)
}

// GenerateQuote builds a quote from priced service items plus a labor line
// when hours were estimated. Part costs are marked up per category; the
// labor line is priced at the category's hourly rate in the default
// currency.
func (s QuotePricingService) GenerateQuote(
	serviceItems []ServiceItem,
	estimatedHours decimal.Decimal,
	serviceCategory string,
	validityDays int,
) (*workorder.Quote, error) {
	var lineItems []workorder.LineItem

	if estimatedHours.IsPositive() {
		laborCost, err := s.CalculateLaborCost(serviceCategory, estimatedHours, kernel.DefaultCurrency)
		if err != nil {
			return nil, err
		}

		laborLine, err := workorder.NewLineItem(
			fmt.Sprintf("Labor - %s (%s hours)", serviceCategory, estimatedHours.StringFixed(1)),
			1, laborCost, "", true)
		if err != nil {
			return nil, err
		}
		lineItems = append(lineItems, laborLine)
	}

	for _, item := range serviceItems {
		partCost, err := s.CalculatePartCost(item.UnitCost, item.Category)
		if err != nil {
			return nil, err
		}

		partLine, err := workorder.NewLineItem(item.Description, item.Quantity, partCost, item.PartNumber, false)
		if err != nil {
			return nil, err
		}
		lineItems = append(lineItems, partLine)
	}

	laborRate, err := s.LaborRate(serviceCategory, kernel.DefaultCurrency)
	if err != nil {
		return nil, err
	}

	return workorder.NewQuote(lineItems, estimatedHours, laborRate, validityDays, "")
}

// CalculateDiscount converts a discount specification into an amount off
// the total. "percentage" discounts take discountValue percent of the
// total; "fixed" discounts take discountValue in the total's currency;
// anything else yields zero.
func (s QuotePricingService) CalculateDiscount(
	totalAmount kernel.Money,
	discountType string,
	discountValue decimal.Decimal,
) (kernel.Money, error) {
	switch strings.ToLower(discountType) {
	case "percentage":
		return totalAmount.Multiply(discountValue.Div(decimal.NewFromInt(100)))
	case "fixed":
		return kernel.NewMoney(discountValue, totalAmount.Currency())
	default:
		return kernel.ZeroMoney(totalAmount.Currency())
	}
}
