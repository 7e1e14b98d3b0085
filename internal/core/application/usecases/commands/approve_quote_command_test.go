package commands_test

import (
	"testing"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApproveQuoteCommand(t *testing.T) {
	t.Run("should create a valid command", func(t *testing.T) {
		workOrderID := kernel.NewUUID()

		cmd, err := commands.NewApproveQuoteCommand(workOrderID, "Maria Souza")

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.True(t, cmd.WorkOrderID().IsEqual(workOrderID))
		assert.Equal(t, "Maria Souza", cmd.CustomerSignature())
	})

	t.Run("should fail with a blank signature", func(t *testing.T) {
		_, err := commands.NewApproveQuoteCommand(kernel.NewUUID(), "   ")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with an unconstructed work order id", func(t *testing.T) {
		var workOrderID kernel.UUID

		_, err := commands.NewApproveQuoteCommand(workOrderID, "Maria Souza")

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.ApproveQuoteCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrApproveQuoteCommandIsNotConstructed)
	})
}
