package order

import (
	"fmt"

	"courier/internal/pkg/errs"
)

// PaymentStatus represents the payment state of an order. Payment moves
// one-way and independently of the order lifecycle:
//
//	Unpaid ──> Paid ──> Refunded
//
// MarkPaid succeeds only from Unpaid; Refund succeeds only from Paid.
// Rejected operations leave the state unchanged.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentUnpaid is the initial payment status of every order.
	PaymentUnpaid

	// PaymentPaid indicates the order amount has been settled.
	PaymentPaid

	// PaymentRefunded indicates a settled amount was returned.
	// Terminal state.
	PaymentRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:  "unknown",
		PaymentUnpaid:   "unpaid",
		PaymentPaid:     "paid",
		PaymentRefunded: "refunded",
	}
}

func getValidPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded as it's invalid
	return map[PaymentStatus]string{
		PaymentUnpaid:   "unpaid",
		PaymentPaid:     "paid",
		PaymentRefunded: "refunded",
	}
}

// PaymentStatusFromString parses a payment status from its wire
// representation ("unpaid", "paid", "refunded").
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getValidPaymentStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("payment status",
		fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks if the PaymentStatus value is valid.
func (s PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the wire representation of the payment status.
// Implements the fmt.Stringer interface; safe on any value.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// MarkPaid transitions the payment status to Paid.
//
// Returns:
//   - (PaymentPaid, nil) when the current status is Unpaid
//   - (0, *errs.InvalidTransitionError) otherwise
func (s PaymentStatus) MarkPaid() (PaymentStatus, error) {
	if s != PaymentUnpaid {
		return PaymentUnknown, errs.NewInvalidTransitionError("payment", s.String(), PaymentPaid.String())
	}
	return PaymentPaid, nil
}

// Refund transitions the payment status to Refunded.
//
// Returns:
//   - (PaymentRefunded, nil) when the current status is Paid
//   - (0, *errs.InvalidTransitionError) otherwise
func (s PaymentStatus) Refund() (PaymentStatus, error) {
	if s != PaymentPaid {
		return PaymentUnknown, errs.NewInvalidTransitionError("payment", s.String(), PaymentRefunded.String())
	}
	return PaymentRefunded, nil
}
