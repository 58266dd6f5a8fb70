package commands_test

import (
	"testing"
	"time"

	"yms/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdvanceOrderMovementsCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		now := time.Now().UTC()

		cmd, err := commands.NewAdvanceOrderMovementsCommand(now)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, now.Equal(cmd.Now()))
	})

	t.Run("zero_time", func(t *testing.T) {
		_, err := commands.NewAdvanceOrderMovementsCommand(time.Time{})

		require.Error(t, err)
	})

	t.Run("not_constructed", func(t *testing.T) {
		cmd := commands.AdvanceOrderMovementsCommand{}

		require.ErrorIs(t, cmd.Validate(),
			commands.ErrAdvanceOrderMovementsCommandIsNotConstructed)
	})
}
