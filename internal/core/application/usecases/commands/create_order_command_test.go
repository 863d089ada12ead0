package commands_test

import (
	"testing"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	amount, err := kernel.NewMoneyFromString("10.00")
	require.NoError(t, err)

	t.Run("valid_command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), "Jane Doe", "1 Main St", amount)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "Jane Doe", cmd.ReceiverName())
		assert.Equal(t, "1 Main St", cmd.ReceiverAddress())
	})

	t.Run("missing_receiver_name", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), "", "1 Main St", amount)
		require.ErrorIs(t, err, commands.ErrReceiverNameIsRequired)
	})

	t.Run("missing_receiver_address", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), "Jane Doe", "", amount)
		require.ErrorIs(t, err, commands.ErrReceiverAddressIsRequired)
	})

	t.Run("unconstructed_amount", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), "Jane Doe", "1 Main St", kernel.Money{})
		require.Error(t, err)
	})

	t.Run("zero_value_command_fails_validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
