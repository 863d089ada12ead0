package delivery_test

import (
	"testing"
	"time"

	"courier/internal/core/domain/model/delivery"
	"courier/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	return d
}

func intPtr(v int) *int { return &v }

func TestNewDelivery(t *testing.T) {
	t.Run("creates_assigned_delivery", func(t *testing.T) {
		d := newTestDelivery(t)

		require.NoError(t, d.Validate())
		assert.Equal(t, delivery.StatusAssigned, d.Status())
		assert.False(t, d.AssignedAt().IsZero())
		assert.Nil(t, d.PickedUpAt())
		assert.Nil(t, d.DeliveredAt())
		assert.Nil(t, d.Rating())
	})

	t.Run("rejects_missing_references", func(t *testing.T) {
		_, err := delivery.NewDelivery(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID())
		require.Error(t, err)

		_, err = delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{})
		require.Error(t, err)
	})
}

func TestRestoreDelivery(t *testing.T) {
	t.Run("restores_completed_delivery", func(t *testing.T) {
		assignedAt := time.Now().UTC().Add(-2 * time.Hour)
		pickedUpAt := assignedAt.Add(30 * time.Minute)
		deliveredAt := pickedUpAt.Add(45 * time.Minute)

		d, err := delivery.RestoreDelivery(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			delivery.StatusDelivered, assignedAt, &pickedUpAt, &deliveredAt,
			intPtr(4), "quick and careful", "")
		require.NoError(t, err)

		assert.Equal(t, delivery.StatusDelivered, d.Status())
		require.NotNil(t, d.Rating())
		assert.Equal(t, 4, *d.Rating())
		assert.Equal(t, "quick and careful", d.Feedback())
	})

	t.Run("rejects_invalid_stored_values", func(t *testing.T) {
		now := time.Now().UTC()

		_, err := delivery.RestoreDelivery(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			delivery.StatusUnknown, now, nil, nil, nil, "", "")
		require.Error(t, err)

		_, err = delivery.RestoreDelivery(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			delivery.StatusDelivered, now, nil, nil, intPtr(9), "", "")
		require.Error(t, err)
	})
}

func TestDelivery_MarkPickedUp(t *testing.T) {
	t.Run("stamps_pickup_time", func(t *testing.T) {
		d := newTestDelivery(t)

		require.NoError(t, d.MarkPickedUp())

		assert.Equal(t, delivery.StatusPickedUp, d.Status())
		require.NotNil(t, d.PickedUpAt())
	})

	t.Run("rejected_after_pickup", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.MarkPickedUp())

		require.Error(t, d.MarkPickedUp())
	})
}

func TestDelivery_MarkInTransit(t *testing.T) {
	t.Run("valid_after_pickup", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.MarkPickedUp())

		require.NoError(t, d.MarkInTransit())
		assert.Equal(t, delivery.StatusInTransit, d.Status())
	})

	t.Run("rejected_from_assigned", func(t *testing.T) {
		d := newTestDelivery(t)
		require.Error(t, d.MarkInTransit())
		assert.Equal(t, delivery.StatusAssigned, d.Status())
	})
}

func TestDelivery_Complete(t *testing.T) {
	t.Run("records_rating_and_feedback_from_picked_up", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.MarkPickedUp())

		require.NoError(t, d.Complete(intPtr(5), "left at the door"))

		assert.Equal(t, delivery.StatusDelivered, d.Status())
		require.NotNil(t, d.DeliveredAt())
		require.NotNil(t, d.Rating())
		assert.Equal(t, 5, *d.Rating())
		assert.Equal(t, "left at the door", d.Feedback())
	})

	t.Run("valid_from_in_transit_without_rating", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.MarkPickedUp())
		require.NoError(t, d.MarkInTransit())

		require.NoError(t, d.Complete(nil, ""))
		assert.Nil(t, d.Rating())
	})

	t.Run("rejected_from_assigned", func(t *testing.T) {
		d := newTestDelivery(t)
		require.Error(t, d.Complete(nil, ""))
		assert.Equal(t, delivery.StatusAssigned, d.Status())
	})

	t.Run("rejects_out_of_range_rating_without_mutation", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.MarkPickedUp())

		require.Error(t, d.Complete(intPtr(0), "bad"))
		require.Error(t, d.Complete(intPtr(6), "bad"))

		assert.Equal(t, delivery.StatusPickedUp, d.Status())
		assert.Nil(t, d.DeliveredAt())
	})
}

func TestDelivery_Fail(t *testing.T) {
	t.Run("valid_from_any_non_terminal_state", func(t *testing.T) {
		prepare := map[string]func(*delivery.Delivery){
			"assigned":   func(*delivery.Delivery) {},
			"picked_up":  func(d *delivery.Delivery) { _ = d.MarkPickedUp() },
			"in_transit": func(d *delivery.Delivery) { _ = d.MarkPickedUp(); _ = d.MarkInTransit() },
		}

		for name, setup := range prepare {
			t.Run(name, func(t *testing.T) {
				d := newTestDelivery(t)
				setup(d)

				require.NoError(t, d.Fail("receiver unreachable"))
				assert.Equal(t, delivery.StatusFailed, d.Status())
				assert.Equal(t, "receiver unreachable", d.Notes())
			})
		}
	})

	t.Run("rejected_from_terminal_states", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.MarkPickedUp())
		require.NoError(t, d.Complete(nil, ""))

		require.Error(t, d.Fail("too late"))
		assert.Equal(t, delivery.StatusDelivered, d.Status())

		failed := newTestDelivery(t)
		require.NoError(t, failed.Fail("first failure"))
		require.Error(t, failed.Fail("second failure"))
		assert.Equal(t, "first failure", failed.Notes())
	})
}

func TestDelivery_Validate(t *testing.T) {
	t.Run("default_constructed_delivery_fails", func(t *testing.T) {
		var d delivery.Delivery
		require.ErrorIs(t, d.Validate(), delivery.ErrDeliveryIsNotConstructed)
	})

	t.Run("nil_delivery_fails", func(t *testing.T) {
		var d *delivery.Delivery
		require.ErrorIs(t, d.Validate(), delivery.ErrDeliveryIsNotConstructed)
	})
}
