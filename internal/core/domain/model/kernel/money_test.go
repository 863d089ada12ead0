package kernel_test

import (
	"testing"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("accepts_non_negative_amounts", func(t *testing.T) {
		amount, err := kernel.NewMoney(decimal.NewFromFloat(149.9))

		require.NoError(t, err)
		assert.Equal(t, "149.90", amount.String())
	})

	t.Run("rounds_to_two_decimals", func(t *testing.T) {
		amount, err := kernel.NewMoney(decimal.NewFromFloat(10.005))

		require.NoError(t, err)
		assert.Equal(t, "10.01", amount.String())
	})

	t.Run("accepts_zero", func(t *testing.T) {
		amount, err := kernel.NewMoney(decimal.Zero)

		require.NoError(t, err)
		assert.Equal(t, "0.00", amount.String())
	})

	t.Run("rejects_negative_amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("parses_decimal_strings", func(t *testing.T) {
		amount, err := kernel.NewMoneyFromString("25.50")

		require.NoError(t, err)
		assert.True(t, amount.Decimal().Equal(decimal.NewFromFloat(25.5)))
	})

	t.Run("rejects_empty_string", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_non_numeric_input", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("abc")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var amount kernel.Money
		require.Error(t, amount.Validate())
	})

	t.Run("constructed_value_is_valid", func(t *testing.T) {
		amount, err := kernel.NewMoneyFromString("10.00")
		require.NoError(t, err)
		require.NoError(t, amount.Validate())
	})
}

func TestMoney_IsEqual(t *testing.T) {
	t.Run("compares_by_numeric_value", func(t *testing.T) {
		first, err := kernel.NewMoneyFromString("10.50")
		require.NoError(t, err)
		second, err := kernel.NewMoneyFromString("10.5")
		require.NoError(t, err)

		assert.True(t, first.IsEqual(second))
	})
}
