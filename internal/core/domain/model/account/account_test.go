package account_test

import (
	"testing"
	"time"

	"courier/internal/core/domain/model/account"
	"courier/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAccount(t *testing.T, role account.Role) *account.Account {
	t.Helper()
	acc, err := account.NewAccount(
		kernel.NewUUID(),
		"jane.doe@example.com",
		"correct horse battery",
		"Jane", "Doe",
		role,
		"+1555000111",
		"1 Main St",
	)
	require.NoError(t, err)
	return acc
}

func TestNewAccount(t *testing.T) {
	t.Run("creates_active_account_with_hashed_password", func(t *testing.T) {
		acc := newTestAccount(t, account.RoleCustomer)

		require.NoError(t, acc.Validate())
		assert.True(t, acc.IsActive())
		assert.Equal(t, account.RoleCustomer, acc.Role())
		assert.Equal(t, "jane.doe@example.com", acc.Email())
		assert.NotEmpty(t, acc.PasswordHash())
		assert.NotContains(t, acc.PasswordHash(), "correct horse battery")
	})

	t.Run("rejects_invalid_inputs", func(t *testing.T) {
		testCases := []struct {
			name     string
			email    string
			password string
			role     account.Role
		}{
			{name: "empty_email", email: "", password: "long enough pw", role: account.RoleCustomer},
			{name: "malformed_email", email: "not-an-email", password: "long enough pw", role: account.RoleCustomer},
			{name: "short_password", email: "a@b.example", password: "short", role: account.RoleCustomer},
			{name: "unknown_role", email: "a@b.example", password: "long enough pw", role: account.RoleUnknown},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := account.NewAccount(
					kernel.NewUUID(), tc.email, tc.password, "", "", tc.role, "", "")
				require.Error(t, err)
			})
		}
	})
}

func TestRestoreAccount(t *testing.T) {
	t.Run("preserves_stored_state", func(t *testing.T) {
		created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		acc, err := account.RestoreAccount(
			kernel.NewUUID(),
			"agent@example.com",
			"$2a$10$fakehashfakehashfakehash",
			"Sam", "Rider",
			account.RoleDeliveryAgent,
			"+1555000222", "2 Side St",
			false,
			created, created,
		)

		require.NoError(t, err)
		assert.False(t, acc.IsActive())
		assert.Equal(t, created, acc.CreatedAt())
	})

	t.Run("rejects_empty_password_hash", func(t *testing.T) {
		_, err := account.RestoreAccount(
			kernel.NewUUID(), "agent@example.com", "", "", "",
			account.RoleDeliveryAgent, "", "", true, time.Now(), time.Now())
		require.Error(t, err)
	})
}

func TestAccount_Authenticate(t *testing.T) {
	t.Run("accepts_correct_password", func(t *testing.T) {
		acc := newTestAccount(t, account.RoleCustomer)
		assert.True(t, acc.Authenticate("correct horse battery"))
	})

	t.Run("rejects_wrong_password", func(t *testing.T) {
		acc := newTestAccount(t, account.RoleCustomer)
		assert.False(t, acc.Authenticate("wrong password"))
	})

	t.Run("inactive_account_never_authenticates", func(t *testing.T) {
		acc := newTestAccount(t, account.RoleCustomer)
		acc.Deactivate()
		assert.False(t, acc.Authenticate("correct horse battery"))
	})
}

func TestAccount_ChangeRole(t *testing.T) {
	t.Run("switches_to_valid_role", func(t *testing.T) {
		acc := newTestAccount(t, account.RoleCustomer)

		require.NoError(t, acc.ChangeRole(account.RoleDeliveryAgent))
		assert.Equal(t, account.RoleDeliveryAgent, acc.Role())
	})

	t.Run("rejects_unknown_role", func(t *testing.T) {
		acc := newTestAccount(t, account.RoleCustomer)

		require.Error(t, acc.ChangeRole(account.RoleUnknown))
		assert.Equal(t, account.RoleCustomer, acc.Role())
	})
}

func TestAccount_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var acc account.Account
		require.ErrorIs(t, acc.Validate(), account.ErrAccountIsNotConstructed)
	})

	t.Run("nil_account_is_invalid", func(t *testing.T) {
		var acc *account.Account
		require.ErrorIs(t, acc.Validate(), account.ErrAccountIsNotConstructed)
	})
}
