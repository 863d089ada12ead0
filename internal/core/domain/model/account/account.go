package account

import (
	"errors"
	"fmt"
	"net/mail"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// Domain errors for account operations.
var (
	// ErrAccountIsNotConstructed is returned when using an improperly initialized Account.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")
	// ErrEmailIsRequired is returned when attempting to create an account without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrPasswordTooShort is returned for passwords below the minimum length.
	ErrPasswordTooShort = errs.NewValueIsOutOfRangeError("password length", "too short", minPasswordLength, 72)
)

// Account is the aggregate root for identity and access in the system.
// It holds the login identity (email + bcrypt password hash), the role that
// gates API capabilities, contact details, and an active flag that can
// suspend access without deleting history.
//
// Business rules:
//   - Email is the unique login identity and must be well-formed
//   - Passwords are never stored in clear; only a bcrypt hash is kept
//   - Role is one of admin, delivery_agent, customer
//   - At most one role-specific extension (agent profile) exists per account
type Account struct {
	id           kernel.UUID
	firstName    string
	lastName     string
	email        string
	passwordHash string
	role         Role
	phone        string
	address      string
	active       bool
	createdAt    time.Time
	updatedAt    time.Time
	guard        guard.ConstructorGuard
}

// NewAccount creates a new active Account with a freshly hashed password.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - email: login identity (must be a well-formed address)
//   - password: clear-text password, hashed with bcrypt (min 8 characters)
//   - firstName, lastName: display name (may be empty)
//   - role: capability level (must be a valid role)
//   - phone, address: contact details (may be empty)
//
// Returns the constructed account or a validation error. Creation and update
// timestamps are both set to the current time.
func NewAccount(
	id kernel.UUID,
	email string,
	password string,
	firstName string,
	lastName string,
	role Role,
	phone string,
	address string,
) (*Account, error) {
	now := time.Now().UTC()
	account := &Account{
		firstName: firstName,
		lastName:  lastName,
		phone:     phone,
		address:   address,
		active:    true,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		account.setID(id),
		account.setEmail(email),
		account.setRole(role),
		account.SetPassword(password),
	); err != nil {
		return nil, err
	}

	return account, nil
}

// RestoreAccount reconstructs an Account aggregate from persistent storage.
// Unlike NewAccount it takes the stored password hash as-is and preserves the
// original timestamps. All invariants are re-validated.
func RestoreAccount(
	id kernel.UUID,
	email string,
	passwordHash string,
	firstName string,
	lastName string,
	role Role,
	phone string,
	address string,
	active bool,
	createdAt time.Time,
	updatedAt time.Time,
) (*Account, error) {
	account := &Account{
		firstName:    firstName,
		lastName:     lastName,
		passwordHash: passwordHash,
		phone:        phone,
		address:      address,
		active:       active,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		account.setID(id),
		account.setEmail(email),
		account.setRole(role),
	); err != nil {
		return nil, err
	}

	if passwordHash == "" {
		return nil, errs.NewValueIsRequiredError("passwordHash")
	}

	return account, nil
}

// Validate ensures the Account instance was properly constructed.
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

// IsEqual compares two accounts by their unique identifiers.
func (a *Account) IsEqual(other *Account) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// FirstName returns the account holder's first name.
func (a *Account) FirstName() string {
	return a.firstName
}

// LastName returns the account holder's last name.
func (a *Account) LastName() string {
	return a.lastName
}

// Email returns the login identity of the account.
func (a *Account) Email() string {
	return a.email
}

// PasswordHash returns the stored bcrypt hash, used only by persistence.
func (a *Account) PasswordHash() string {
	return a.passwordHash
}

// Role returns the account's capability level.
func (a *Account) Role() Role {
	return a.role
}

// Phone returns the contact phone number.
func (a *Account) Phone() string {
	return a.phone
}

// Address returns the contact address.
func (a *Account) Address() string {
	return a.address
}

// IsActive reports whether the account may authenticate.
func (a *Account) IsActive() bool {
	return a.active
}

// CreatedAt returns the creation timestamp.
func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (a *Account) UpdatedAt() time.Time {
	return a.updatedAt
}

// Authenticate verifies a clear-text password against the stored hash.
// Inactive accounts never authenticate.
func (a *Account) Authenticate(password string) bool {
	if !a.active {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)) == nil
}

// SetPassword replaces the stored password hash with the bcrypt hash of the
// supplied clear-text password.
func (a *Account) SetPassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("password", err)
	}

	a.passwordHash = string(hash)
	a.touch()
	return nil
}

// UpdateProfile replaces the account's display name and contact details.
func (a *Account) UpdateProfile(firstName, lastName, phone, address string) {
	a.firstName = firstName
	a.lastName = lastName
	a.phone = phone
	a.address = address
	a.touch()
}

// ChangeRole switches the account to a different capability level.
func (a *Account) ChangeRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	a.touch()
	return nil
}

// Activate re-enables a suspended account.
func (a *Account) Activate() {
	a.active = true
	a.touch()
}

// Deactivate suspends the account; it can no longer authenticate.
func (a *Account) Deactivate() {
	a.active = false
	a.touch()
}

func (a *Account) touch() {
	a.updatedAt = time.Now().UTC()
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email",
			fmt.Errorf("%q is not a valid address: %w", email, err))
	}
	a.email = email
	return nil
}

func (a *Account) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
