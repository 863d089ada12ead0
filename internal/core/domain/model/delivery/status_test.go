package delivery_test

import (
	"testing"

	"courier/internal/core/domain/model/delivery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	t.Run("parses_valid_statuses", func(t *testing.T) {
		testCases := []struct {
			value    string
			expected delivery.Status
		}{
			{value: "assigned", expected: delivery.StatusAssigned},
			{value: "picked_up", expected: delivery.StatusPickedUp},
			{value: "in_transit", expected: delivery.StatusInTransit},
			{value: "delivered", expected: delivery.StatusDelivered},
			{value: "failed", expected: delivery.StatusFailed},
		}

		for _, tc := range testCases {
			t.Run(tc.value, func(t *testing.T) {
				status, err := delivery.StatusFromString(tc.value)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, status)
			})
		}
	})

	t.Run("rejects_unknown_values", func(t *testing.T) {
		for _, value := range []string{"", "pending", "Assigned", "lost"} {
			_, err := delivery.StatusFromString(value)
			require.Error(t, err, "value %q should be rejected", value)
		}
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	allStatuses := []delivery.Status{
		delivery.StatusAssigned,
		delivery.StatusPickedUp,
		delivery.StatusInTransit,
		delivery.StatusDelivered,
		delivery.StatusFailed,
	}

	allowed := map[delivery.Status][]delivery.Status{
		delivery.StatusAssigned:  {delivery.StatusPickedUp, delivery.StatusFailed},
		delivery.StatusPickedUp:  {delivery.StatusInTransit, delivery.StatusDelivered, delivery.StatusFailed},
		delivery.StatusInTransit: {delivery.StatusDelivered, delivery.StatusFailed},
		delivery.StatusDelivered: {},
		delivery.StatusFailed:    {},
	}

	isAllowed := func(from, to delivery.Status) bool {
		for _, s := range allowed[from] {
			if s == to {
				return true
			}
		}
		return false
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			from, to := from, to
			t.Run(from.String()+"_to_"+to.String(), func(t *testing.T) {
				result, err := from.TransitionTo(to)
				if isAllowed(from, to) {
					require.NoError(t, err)
					assert.Equal(t, to, result)
				} else {
					require.Error(t, err)
					assert.Equal(t, from, result, "status must not change on rejected transition")
				}
			})
		}
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, delivery.StatusDelivered.IsTerminal())
	assert.True(t, delivery.StatusFailed.IsTerminal())
	assert.False(t, delivery.StatusAssigned.IsTerminal())
	assert.False(t, delivery.StatusPickedUp.IsTerminal())
	assert.False(t, delivery.StatusInTransit.IsTerminal())
	assert.False(t, delivery.StatusUnknown.IsTerminal())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "assigned", delivery.StatusAssigned.String())
	assert.Equal(t, "picked_up", delivery.StatusPickedUp.String())
	assert.Equal(t, "in_transit", delivery.StatusInTransit.String())
	assert.Equal(t, "delivered", delivery.StatusDelivered.String())
	assert.Equal(t, "failed", delivery.StatusFailed.String())
	assert.Equal(t, "unknown", delivery.Status(42).String())
}
