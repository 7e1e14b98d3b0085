package services_test

import (
	"testing"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/services"
	"workshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServiceItem(t *testing.T) {
	t.Run("should create a trimmed service item", func(t *testing.T) {
		item, err := services.NewServiceItem(
			"  Brake pads  ", services.PartCategoryOEM, 2, mustMoney(t, 80), " BP-1234 ")

		require.NoError(t, err)
		assert.Equal(t, "Brake pads", item.Description)
		assert.Equal(t, services.PartCategoryOEM, item.Category)
		assert.Equal(t, 2, item.Quantity)
		assert.Equal(t, "BP-1234", item.PartNumber)
	})

	t.Run("should fail with a blank description", func(t *testing.T) {
		_, err := services.NewServiceItem("   ", services.PartCategoryStandard, 1, mustMoney(t, 80), "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with a non-positive quantity", func(t *testing.T) {
		_, err := services.NewServiceItem("Brake pads", services.PartCategoryStandard, 0, mustMoney(t, 80), "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with unconstructed money", func(t *testing.T) {
		_, err := services.NewServiceItem("Brake pads", services.PartCategoryStandard, 1, kernel.Money{}, "")

		require.Error(t, err)
	})
}

func TestQuotePricingService_LaborRate(t *testing.T) {
	service := services.NewQuotePricingService()

	tests := []struct {
		category string
		rate     int64
	}{
		{services.LaborCategoryStandard, 120},
		{services.LaborCategoryDiagnostic, 150},
		{services.LaborCategorySpecialist, 180},
		{services.LaborCategoryEmergency, 220},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			rate, err := service.LaborRate(tt.category, kernel.DefaultCurrency)

			require.NoError(t, err)
			assert.True(t, rate.Amount().Equal(decimal.NewFromInt(tt.rate)))
			assert.Equal(t, kernel.DefaultCurrency, rate.Currency())
		})
	}

	t.Run("should fall back to the standard rate for unknown categories", func(t *testing.T) {
		rate, err := service.LaborRate("Bodywork", kernel.DefaultCurrency)

		require.NoError(t, err)
		assert.True(t, rate.Amount().Equal(decimal.NewFromInt(120)))
	})
}

func TestQuotePricingService_CalculateLaborCost(t *testing.T) {
	service := services.NewQuotePricingService()

	t.Run("should price hours at the category rate", func(t *testing.T) {
		cost, err := service.CalculateLaborCost(
			services.LaborCategoryDiagnostic, decimal.NewFromInt(2), kernel.DefaultCurrency)

		require.NoError(t, err)
		assert.True(t, cost.Amount().Equal(decimal.NewFromInt(300)))
	})

	t.Run("should price fractional hours", func(t *testing.T) {
		cost, err := service.CalculateLaborCost(
			services.LaborCategoryStandard, decimal.RequireFromString("1.5"), kernel.DefaultCurrency)

		require.NoError(t, err)
		assert.True(t, cost.Amount().Equal(decimal.NewFromInt(180)))
	})
}

func TestQuotePricingService_CalculatePartCost(t *testing.T) {
	service := services.NewQuotePricingService()

	tests := []struct {
		category string
		baseCost int64
		expected string
	}{
		{services.PartCategoryStandard, 100, "125"},
		{services.PartCategoryOEM, 100, "115"},
		{services.PartCategoryAftermarket, 100, "135"},
		{"Recycled", 100, "125"},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			cost, err := service.CalculatePartCost(mustMoney(t, tt.baseCost), tt.category)

			require.NoError(t, err)
			assert.True(t, cost.Amount().Equal(decimal.RequireFromString(tt.expected)))
		})
	}
}

func TestQuotePricingService_GenerateQuote(t *testing.T) {
	service := services.NewQuotePricingService()

	t.Run("should build a quote with a labor line and marked-up parts", func(t *testing.T) {
		part, err := services.NewServiceItem(
			"Oil filter", services.PartCategoryStandard, 1, mustMoney(t, 100), "OF-001")
		require.NoError(t, err)

		quote, err := service.GenerateQuote(
			[]services.ServiceItem{part}, decimal.NewFromInt(2), services.LaborCategoryStandard, 30)

		require.NoError(t, err)
		require.NoError(t, quote.Validate())

		lines := quote.LineItems()
		require.Len(t, lines, 2)

		assert.Equal(t, "Labor - Standard (2.0 hours)", lines[0].Description())
		assert.True(t, lines[0].IsLabor())
		assert.True(t, lines[0].UnitPrice().Amount().Equal(decimal.NewFromInt(240)))

		assert.Equal(t, "Oil filter", lines[1].Description())
		assert.False(t, lines[1].IsLabor())
		assert.Equal(t, "OF-001", lines[1].PartNumber())
		assert.True(t, lines[1].UnitPrice().Amount().Equal(decimal.NewFromInt(125)))

		assert.True(t, quote.LaborCost().Amount().Equal(decimal.NewFromInt(240)))
		assert.True(t, quote.PartsCost().Amount().Equal(decimal.NewFromInt(365)))
		assert.True(t, quote.TotalAmount().Amount().Equal(decimal.NewFromInt(605)))
	})

	t.Run("should skip the labor line when no hours were estimated", func(t *testing.T) {
		part, err := services.NewServiceItem(
			"Wiper blades", services.PartCategoryAftermarket, 2, mustMoney(t, 40), "")
		require.NoError(t, err)

		quote, err := service.GenerateQuote(
			[]services.ServiceItem{part}, decimal.Zero, services.LaborCategoryStandard, 30)

		require.NoError(t, err)
		lines := quote.LineItems()
		require.Len(t, lines, 1)
		assert.False(t, lines[0].IsLabor())
		assert.True(t, quote.LaborCost().IsZero())
		assert.True(t, quote.TotalAmount().Amount().Equal(decimal.NewFromInt(108)))
	})

	t.Run("should fail with no items and no hours", func(t *testing.T) {
		_, err := service.GenerateQuote(nil, decimal.Zero, services.LaborCategoryStandard, 30)

		require.Error(t, err)
	})
}

func TestQuotePricingService_CalculateDiscount(t *testing.T) {
	service := services.NewQuotePricingService()

	t.Run("should take a percentage off the total", func(t *testing.T) {
		discount, err := service.CalculateDiscount(mustMoney(t, 200), "percentage", decimal.NewFromInt(10))

		require.NoError(t, err)
		assert.True(t, discount.Amount().Equal(decimal.NewFromInt(20)))
	})

	t.Run("should take a fixed amount in the total's currency", func(t *testing.T) {
		discount, err := service.CalculateDiscount(mustMoney(t, 200), "Fixed", decimal.NewFromInt(50))

		require.NoError(t, err)
		assert.True(t, discount.Amount().Equal(decimal.NewFromInt(50)))
		assert.Equal(t, kernel.DefaultCurrency, discount.Currency())
	})

	t.Run("should yield zero for unknown discount types", func(t *testing.T) {
		discount, err := service.CalculateDiscount(mustMoney(t, 200), "coupon", decimal.NewFromInt(10))

		require.NoError(t, err)
		assert.True(t, discount.IsZero())
	})
}
