package commands_test

import (
	"testing"
	"time"

	"yms/internal/core/application/usecases/commands"
	"yms/internal/core/domain/model/equipment"
	"yms/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBundle(t *testing.T) equipment.Bundle {
	t.Helper()
	ref, err := equipment.NewRef(equipment.Truck, "1234")
	require.NoError(t, err)
	return equipment.Bundle{ref}
}

func TestNewCreateOrderCommand(t *testing.T) {
	now := time.Now().UTC()

	t.Run("valid", func(t *testing.T) {
		orderID := kernel.NewUUID()
		bundle := testBundle(t)

		cmd, err := commands.NewCreateOrderCommand(
			orderID, bundle, kernel.NewUUID(),
			kernel.NewUUID(), kernel.NewUUID(),
			now, now.Add(time.Hour),
		)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.Equal(t, bundle, cmd.Bundle())
	})

	t.Run("empty_bundle_is_allowed", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), nil, kernel.NewUUID(),
			kernel.NewUUID(), kernel.NewUUID(),
			now, now.Add(time.Hour),
		)

		require.NoError(t, err)
		assert.True(t, cmd.Bundle().IsEmpty())
	})

	t.Run("missing_driver", func(t *testing.T) {
		var zero kernel.UUID
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), testBundle(t), zero,
			kernel.NewUUID(), kernel.NewUUID(),
			now, now.Add(time.Hour),
		)

		require.Error(t, err)
	})

	t.Run("missing_times", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), testBundle(t), kernel.NewUUID(),
			kernel.NewUUID(), kernel.NewUUID(),
			time.Time{}, now.Add(time.Hour),
		)

		require.Error(t, err)
	})

	t.Run("not_constructed", func(t *testing.T) {
		cmd := commands.CreateOrderCommand{}

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
