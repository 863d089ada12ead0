package order_test

import (
	"testing"

	"courier/internal/core/domain/model/order"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentStatus_MarkPaid(t *testing.T) {
	t.Run("succeeds_only_from_unpaid", func(t *testing.T) {
		next, err := order.PaymentUnpaid.MarkPaid()
		require.NoError(t, err)
		assert.Equal(t, order.PaymentPaid, next)
	})

	t.Run("rejected_from_paid_and_refunded", func(t *testing.T) {
		for _, from := range []order.PaymentStatus{order.PaymentPaid, order.PaymentRefunded} {
			_, err := from.MarkPaid()
			require.ErrorIs(t, err, errs.ErrInvalidTransition, "mark-paid from %s must fail", from)
		}
	})
}

func TestPaymentStatus_Refund(t *testing.T) {
	t.Run("succeeds_only_from_paid", func(t *testing.T) {
		next, err := order.PaymentPaid.Refund()
		require.NoError(t, err)
		assert.Equal(t, order.PaymentRefunded, next)
	})

	t.Run("rejected_from_unpaid_and_refunded", func(t *testing.T) {
		for _, from := range []order.PaymentStatus{order.PaymentUnpaid, order.PaymentRefunded} {
			_, err := from.Refund()
			require.ErrorIs(t, err, errs.ErrInvalidTransition, "refund from %s must fail", from)
		}
	})
}

func TestPaymentStatusFromString(t *testing.T) {
	t.Run("parses_valid_values", func(t *testing.T) {
		testCases := []struct {
			value    string
			expected order.PaymentStatus
		}{
			{value: "unpaid", expected: order.PaymentUnpaid},
			{value: "paid", expected: order.PaymentPaid},
			{value: "refunded", expected: order.PaymentRefunded},
		}

		for _, tc := range testCases {
			t.Run(tc.value, func(t *testing.T) {
				status, err := order.PaymentStatusFromString(tc.value)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, status)
			})
		}
	})

	t.Run("rejects_unknown_values", func(t *testing.T) {
		for _, value := range []string{"", "Paid", "pending"} {
			_, err := order.PaymentStatusFromString(value)
			require.Error(t, err, "value %q should be rejected", value)
		}
	})
}

func TestPaymentStatus_String(t *testing.T) {
	assert.Equal(t, "unpaid", order.PaymentUnpaid.String())
	assert.Equal(t, "paid", order.PaymentPaid.String())
	assert.Equal(t, "refunded", order.PaymentRefunded.String())
	assert.Equal(t, "unknown", order.PaymentStatus(42).String())
}
