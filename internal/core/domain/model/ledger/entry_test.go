package ledger_test

import (
	"testing"
	"time"

	"yms/internal/core/domain/model/kernel"
	"yms/internal/core/domain/model/ledger"
	"yms/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	now := time.Now().UTC()

	t.Run("equipment_movement", func(t *testing.T) {
		e, err := ledger.NewEntry(
			kernel.NewUUID(), kernel.NewUUID(), order.PhaseDepartured,
			"Truck", "1234",
			kernel.NewUUID(), kernel.NewUUID(),
			"equipment 1234 departed", now,
		)

		require.NoError(t, err)
		assert.Equal(t, "Truck", e.EquipmentType())
		assert.Equal(t, "1234", e.EquipmentSerial())
		assert.Equal(t, order.PhaseDepartured, e.Phase())
		assert.Equal(t, "equipment 1234 departed", e.Details())
		assert.True(t, now.Equal(e.MovementTime()))
	})

	t.Run("personal_vehicle_has_no_serial", func(t *testing.T) {
		e, err := ledger.NewEntry(
			kernel.NewUUID(), kernel.NewUUID(), order.PhaseArrived,
			ledger.EquipmentTypePersonalVehicle, "",
			kernel.NewUUID(), kernel.NewUUID(),
			"driver arrived in personal vehicle", now,
		)

		require.NoError(t, err)
		assert.Empty(t, e.EquipmentSerial())
		assert.Equal(t, ledger.EquipmentTypePersonalVehicle, e.EquipmentType())
	})

	t.Run("pending_phase_is_rejected", func(t *testing.T) {
		_, err := ledger.NewEntry(
			kernel.NewUUID(), kernel.NewUUID(), order.PhasePending,
			"Truck", "1234",
			kernel.NewUUID(), kernel.NewUUID(),
			"equipment 1234 departed", now,
		)

		require.Error(t, err)
	})

	t.Run("missing_details_are_rejected", func(t *testing.T) {
		_, err := ledger.NewEntry(
			kernel.NewUUID(), kernel.NewUUID(), order.PhaseDepartured,
			"Truck", "1234",
			kernel.NewUUID(), kernel.NewUUID(),
			"", now,
		)

		require.Error(t, err)
	})

	t.Run("missing_order_is_rejected", func(t *testing.T) {
		var zero kernel.UUID
		_, err := ledger.NewEntry(
			kernel.NewUUID(), zero, order.PhaseDepartured,
			"Truck", "1234",
			kernel.NewUUID(), kernel.NewUUID(),
			"equipment 1234 departed", now,
		)

		require.Error(t, err)
	})

	t.Run("zero_value_is_not_constructed", func(t *testing.T) {
		var e ledger.Entry

		require.ErrorIs(t, e.Validate(), ledger.ErrEntryIsNotConstructed)
	})
}
