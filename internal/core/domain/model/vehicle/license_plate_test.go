package vehicle_test

import (
	"testing"

	"workshop/internal/core/domain/model/vehicle"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLicensePlate(t *testing.T) {
	t.Run("should accept classic format", func(t *testing.T) {
		plate, err := vehicle.NewLicensePlate("ABC1234")

		require.NoError(t, err)
		require.NoError(t, plate.Validate())
		assert.Equal(t, "ABC1234", plate.Value())
		assert.False(t, plate.IsMercosul())
	})

	t.Run("should accept Mercosul format", func(t *testing.T) {
		plate, err := vehicle.NewLicensePlate("ABC1D23")

		require.NoError(t, err)
		assert.Equal(t, "ABC1D23", plate.Value())
		assert.True(t, plate.IsMercosul())
	})

	t.Run("should normalize case and hyphens", func(t *testing.T) {
		for input, want := range map[string]string{
			"abc-1234":  "ABC1234",
			" abc1d23 ": "ABC1D23",
			"AbC-1d23":  "ABC1D23",
		} {
			plate, err := vehicle.NewLicensePlate(input)

			require.NoError(t, err, "input %q", input)
			assert.Equal(t, want, plate.Value())
		}
	})

	t.Run("normalized plates are equal regardless of input form", func(t *testing.T) {
		p1, err := vehicle.NewLicensePlate("abc-1234")
		require.NoError(t, err)
		p2, err := vehicle.NewLicensePlate("ABC1234")
		require.NoError(t, err)

		assert.True(t, p1.IsEqual(p2))
	})

	t.Run("should fail with invalid formats", func(t *testing.T) {
		for _, input := range []string{
			"AB1234",   // too few letters
			"ABCD123",  // too many letters
			"ABC12345", // too many digits
			"1234ABC",  // reversed
			"ABC1DD3",  // two letters in digit positions
			"ABC-12A4", // letter in the wrong slot
		} {
			_, err := vehicle.NewLicensePlate(input)

			require.Error(t, err, "input %q", input)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should fail with blank input", func(t *testing.T) {
		_, err := vehicle.NewLicensePlate("   ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var plate vehicle.LicensePlate

		require.Error(t, plate.Validate())
	})
}
