package guard_test

import (
	"errors"
	"testing"

	"courier/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_has_meaningful_message", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardUsageExample demonstrates how domain objects embed the
// guard to reject zero-value instances.
func TestConstructorGuardUsageExample(t *testing.T) {
	type trackingCode struct {
		value string
		guard guard.ConstructorGuard
	}

	var errNotConstructed = errors.New("trackingCode must be created via its constructor")

	newTrackingCode := func(value string) (trackingCode, error) {
		if value == "" {
			return trackingCode{}, errors.New("value is required")
		}
		return trackingCode{value: value, guard: guard.NewConstructorGuard()}, nil
	}

	validate := func(c trackingCode) error {
		return c.guard.Validate(errNotConstructed)
	}

	t.Run("constructed_instance_is_valid", func(t *testing.T) {
		code, err := newTrackingCode("CO-0123456789AB")
		require.NoError(t, err)
		require.NoError(t, validate(code))
		assert.Equal(t, "CO-0123456789AB", code.value)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var code trackingCode
		err := validate(code)
		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})
}
