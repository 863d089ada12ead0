package kernel

import (
	"fmt"

	"courier/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a non-negative decimal monetary amount with two-decimal precision,
// used for order totals. Money is immutable; arithmetic is not exposed
// because the domain only stores and compares amounts.
//
// Example:
//
//	amount, err := kernel.NewMoneyFromString("149.90")
//	if err != nil {
//	    // handle invalid amount
//	}
type Money struct {
	amount decimal.Decimal
	valid  bool
}

// NewMoney creates a Money value from a decimal, rounding to two decimal
// places. Negative amounts are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount.String()))
	}
	return Money{amount: amount.Round(2), valid: true}, nil
}

// NewMoneyFromString parses a decimal string such as "149.90".
func NewMoneyFromString(s string) (Money, error) {
	if s == "" {
		return Money{}, errs.NewValueIsRequiredError("amount")
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the amount with exactly two decimal places, e.g. "5.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// IsEqual compares two amounts by value.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Validate checks that the Money value was created through a constructor.
func (m Money) Validate() error {
	if !m.valid {
		return errs.NewValueIsRequiredError("Money must be created via NewMoney or NewMoneyFromString")
	}
	if m.amount.IsNegative() {
		return errs.NewValueIsInvalidError("amount")
	}
	return nil
}
