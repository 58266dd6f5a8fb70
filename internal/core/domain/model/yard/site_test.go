package yard_test

import (
	"testing"

	"yms/internal/core/domain/model/equipment"
	"yms/internal/core/domain/model/kernel"
	"yms/internal/core/domain/model/yard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewYard(t *testing.T) {
	t.Run("valid_yard", func(t *testing.T) {
		id := kernel.NewUUID()

		y, err := yard.NewYard(id, "YD01")

		require.NoError(t, err)
		assert.True(t, y.ID().IsEqual(id))
		assert.Equal(t, "YD01", y.Code())
	})

	t.Run("empty_code_fails", func(t *testing.T) {
		_, err := yard.NewYard(kernel.NewUUID(), "")

		require.ErrorIs(t, err, yard.ErrCodeIsRequired)
	})

	t.Run("zero_value_is_not_constructed", func(t *testing.T) {
		var y yard.Yard

		require.ErrorIs(t, y.Validate(), yard.ErrYardIsNotConstructed)
	})
}

func TestNewSite(t *testing.T) {
	t.Run("explicit_capacity", func(t *testing.T) {
		s, err := yard.NewSite(kernel.NewUUID(), kernel.NewUUID(), equipment.Truck, 12)

		require.NoError(t, err)
		assert.Equal(t, 12, s.Capacity())
		assert.Equal(t, equipment.Truck, s.Kind())
	})

	t.Run("missing_capacity_uses_kind_default", func(t *testing.T) {
		for _, kind := range equipment.AllKinds() {
			s, err := yard.NewSite(kernel.NewUUID(), kernel.NewUUID(), kind, 0)

			require.NoError(t, err)
			assert.Equal(t, kind.DefaultSiteCapacity(), s.Capacity())
		}
	})

	t.Run("invalid_kind_fails", func(t *testing.T) {
		_, err := yard.NewSite(kernel.NewUUID(), kernel.NewUUID(), equipment.Unknown, 10)

		require.Error(t, err)
	})

	t.Run("invalid_yard_id_fails", func(t *testing.T) {
		var zero kernel.UUID
		_, err := yard.NewSite(kernel.NewUUID(), zero, equipment.Truck, 10)

		require.Error(t, err)
	})
}
