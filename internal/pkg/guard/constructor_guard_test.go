package guard_test

import (
	"errors"
	"testing"

	"workshop/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := g.Validate(customError)

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard should be
// used in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type laborRate struct {
		category string
		perHour  int
		guard    guard.ConstructorGuard
	}

	var errLaborRateNotConstructed = errors.New("laborRate must be created via newLaborRate")

	newLaborRate := func(category string, perHour int) (laborRate, error) {
		if category == "" {
			return laborRate{}, errors.New("category is required")
		}
		if perHour <= 0 {
			return laborRate{}, errors.New("rate must be positive")
		}
		return laborRate{
			category: category,
			perHour:  perHour,
			guard:    guard.NewConstructorGuard(),
		}, nil
	}

	validateLaborRate := func(r laborRate) error {
		return r.guard.Validate(errLaborRateNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		rate, err := newLaborRate("Diagnostic", 150)

		require.NoError(t, err)
		require.NoError(t, validateLaborRate(rate))
		assert.Equal(t, "Diagnostic", rate.category)
		assert.Equal(t, 150, rate.perHour)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		var rate laborRate // zero value

		err := validateLaborRate(rate)

		require.Error(t, err)
		assert.Equal(t, errLaborRateNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newLaborRate("Standard", 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rate must be positive")

		_, err = newLaborRate("", 120)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "category is required")
	})
}
