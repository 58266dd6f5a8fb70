package errs_test

import (
	"errors"
	"testing"

	"yms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without_cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "a1b2")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "a1b2", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: a1b2", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewObjectNotFoundErrorWithCause("yardId", "YD01", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: yardId, ID is: YD01 (cause: connection reset)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without_cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("equipmentSerial")

		assert.Equal(t, "equipmentSerial", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: equipmentSerial", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("chassis requires a truck")
		err := errs.NewValueIsInvalidErrorWithCause("equipment", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: equipment (cause: chassis requires a truck)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("without_cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("position", 31, 1, 30)

		assert.Equal(t, 31, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 30, err.Max)
		assert.Equal(t, "value is invalid: 31 is position, min value is 1, max value is 30", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("site is full")
		err := errs.NewValueIsOutOfRangeErrorWithCause("position", 21, 1, 20, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: 21 is position, min value is 1, max value is 20 (cause: site is full)",
			err.Error())
	})

	t.Run("value_with_newlines_is_sanitized", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("details", "first\nsecond", 0, 10)

		assert.Contains(t, err.Error(), "first second")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("without_cause", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("driverId")

		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: driverId", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("missing field")
		err := errs.NewValueIsRequiredErrorWithCause("driverId", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: driverId (cause: missing field)", err.Error())
	})
}

func TestVersionIsInvalidError(t *testing.T) {
	cause := errors.New("stale aggregate")
	err := errs.NewVersionIsInvalidError("order", cause)

	assert.Equal(t, "order", err.ParamName)
	assert.Equal(t, "version is invalid: order (cause: stale aggregate)", err.Error())
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)

	bare := errs.NewVersionIsInvalidErrorWithCause("order")
	require.NoError(t, bare.Cause)
	assert.Equal(t, "version is invalid: order", bare.Error())
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "version is invalid", errs.ErrVersionIsInvalid.Error())
}
