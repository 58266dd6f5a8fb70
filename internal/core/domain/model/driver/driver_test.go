package driver_test

import (
	"testing"

	"yms/internal/core/domain/model/driver"
	"yms/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestoreDriver(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := kernel.NewUUID()

		d, err := driver.RestoreDriver(id, "John Smith", true)

		require.NoError(t, err)
		assert.True(t, d.ID().IsEqual(id))
		assert.Equal(t, "John Smith", d.Name())
		assert.True(t, d.HasPersonalVehicle())
	})

	t.Run("empty_name", func(t *testing.T) {
		_, err := driver.RestoreDriver(kernel.NewUUID(), "", false)

		require.Error(t, err)
	})

	t.Run("zero_value_is_not_constructed", func(t *testing.T) {
		var d driver.Driver

		require.ErrorIs(t, d.Validate(), driver.ErrDriverIsNotConstructed)
	})
}
