package inventory_test

import (
	"testing"

	"yms/internal/core/domain/model/equipment"
	"yms/internal/core/domain/model/inventory"
	"yms/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlot(t *testing.T) {
	t.Run("valid_slot", func(t *testing.T) {
		id := kernel.NewUUID()
		yardID := kernel.NewUUID()

		slot, err := inventory.NewSlot(id, yardID, equipment.Truck, "1234", 4)

		require.NoError(t, err)
		assert.True(t, slot.ID().IsEqual(id))
		assert.True(t, slot.YardID().IsEqual(yardID))
		assert.Equal(t, equipment.Truck, slot.Kind())
		assert.Equal(t, "1234", slot.EquipmentSerial())
		assert.Equal(t, 4, slot.Position())
	})

	t.Run("zero_position_fails", func(t *testing.T) {
		_, err := inventory.NewSlot(kernel.NewUUID(), kernel.NewUUID(), equipment.Truck, "1234", 0)

		require.Error(t, err)
	})

	t.Run("negative_position_fails", func(t *testing.T) {
		_, err := inventory.NewSlot(kernel.NewUUID(), kernel.NewUUID(), equipment.Truck, "1234", -2)

		require.Error(t, err)
	})

	t.Run("empty_serial_fails", func(t *testing.T) {
		_, err := inventory.NewSlot(kernel.NewUUID(), kernel.NewUUID(), equipment.Truck, "", 1)

		require.ErrorIs(t, err, inventory.ErrSerialIsRequired)
	})

	t.Run("invalid_kind_fails", func(t *testing.T) {
		_, err := inventory.NewSlot(kernel.NewUUID(), kernel.NewUUID(), equipment.Unknown, "1234", 1)

		require.Error(t, err)
	})

	t.Run("zero_value_is_not_constructed", func(t *testing.T) {
		var slot inventory.Slot

		require.ErrorIs(t, slot.Validate(), inventory.ErrSlotIsNotConstructed)
	})
}
