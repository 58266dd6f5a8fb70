package services_test

import (
	"testing"
	"time"

	"yms/internal/core/domain/model/equipment"
	"yms/internal/core/domain/model/inventory"
	"yms/internal/core/domain/model/kernel"
	"yms/internal/core/domain/model/order"
	"yms/internal/core/domain/model/yard"
	"yms/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type relocationFixture struct {
	order       *order.Order
	equipment   *equipment.Equipment
	arrivalSite *yard.Site
}

func newRelocationFixture(t *testing.T) relocationFixture {
	t.Helper()

	now := time.Now().UTC()

	ref, err := equipment.NewRef(equipment.Truck, "1234")
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		equipment.Bundle{ref},
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		now.Add(-2*time.Hour),
		now.Add(-time.Hour),
	)
	require.NoError(t, err)
	require.NoError(t, o.Approve())

	eq, err := equipment.NewEquipment(equipment.Truck, "1234", kernel.NewUUID())
	require.NoError(t, err)

	site, err := yard.NewSite(kernel.NewUUID(), o.ArrivalYardID(), equipment.Truck, 5)
	require.NoError(t, err)

	return relocationFixture{order: o, equipment: eq, arrivalSite: site}
}

func (f relocationFixture) departureSlot(t *testing.T, position int) *inventory.Slot {
	t.Helper()
	slot, err := inventory.NewSlot(
		kernel.NewUUID(),
		f.order.DepartureYardID(),
		equipment.Truck,
		"1234",
		position,
	)
	require.NoError(t, err)
	return slot
}

func TestRelocator_Depart(t *testing.T) {
	relocator := services.NewRelocator()

	t.Run("deactivates_equipment", func(t *testing.T) {
		f := newRelocationFixture(t)
		slot := f.departureSlot(t, 3)

		err := relocator.Depart(f.order, f.equipment, slot)

		require.NoError(t, err)
		assert.False(t, f.equipment.IsActive())
	})

	t.Run("missing_slot", func(t *testing.T) {
		f := newRelocationFixture(t)

		err := relocator.Depart(f.order, f.equipment, nil)

		require.ErrorIs(t, err, services.ErrEquipmentNotInYard)
		assert.True(t, f.equipment.IsActive())
	})

	t.Run("slot_in_another_yard", func(t *testing.T) {
		f := newRelocationFixture(t)
		slot, err := inventory.NewSlot(
			kernel.NewUUID(), kernel.NewUUID(), equipment.Truck, "1234", 1,
		)
		require.NoError(t, err)

		err = relocator.Depart(f.order, f.equipment, slot)

		require.ErrorIs(t, err, services.ErrEquipmentNotInYard)
	})

	t.Run("slot_holds_different_equipment", func(t *testing.T) {
		f := newRelocationFixture(t)
		slot, err := inventory.NewSlot(
			kernel.NewUUID(), f.order.DepartureYardID(), equipment.Truck, "9999", 1,
		)
		require.NoError(t, err)

		err = relocator.Depart(f.order, f.equipment, slot)

		require.Error(t, err)
		assert.True(t, f.equipment.IsActive())
	})
}

func TestRelocator_Arrive(t *testing.T) {
	relocator := services.NewRelocator()

	t.Run("assigns_lowest_free_position", func(t *testing.T) {
		f := newRelocationFixture(t)

		slot, err := relocator.Arrive(f.order, f.equipment, f.arrivalSite, []int{1, 3})

		require.NoError(t, err)
		assert.Equal(t, 2, slot.Position())
		assert.True(t, slot.YardID().IsEqual(f.order.ArrivalYardID()))
		assert.Equal(t, "1234", slot.EquipmentSerial())
	})

	t.Run("empty_site_assigns_first_position", func(t *testing.T) {
		f := newRelocationFixture(t)

		slot, err := relocator.Arrive(f.order, f.equipment, f.arrivalSite, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, slot.Position())
	})

	t.Run("reactivates_and_reassigns_equipment", func(t *testing.T) {
		f := newRelocationFixture(t)
		f.equipment.Deactivate()

		_, err := relocator.Arrive(f.order, f.equipment, f.arrivalSite, nil)

		require.NoError(t, err)
		assert.True(t, f.equipment.IsActive())
		assert.True(t, f.equipment.SiteID().IsEqual(f.arrivalSite.ID()))
	})

	t.Run("full_site", func(t *testing.T) {
		f := newRelocationFixture(t)

		_, err := relocator.Arrive(f.order, f.equipment, f.arrivalSite, []int{1, 2, 3, 4, 5})

		require.ErrorIs(t, err, services.ErrSiteIsFull)
	})

	t.Run("site_kind_mismatch", func(t *testing.T) {
		f := newRelocationFixture(t)
		site, err := yard.NewSite(kernel.NewUUID(), f.order.ArrivalYardID(), equipment.Chassis, 5)
		require.NoError(t, err)

		_, err = relocator.Arrive(f.order, f.equipment, site, nil)

		require.Error(t, err)
	})
}
