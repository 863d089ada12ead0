package account

import (
	"fmt"

	"courier/internal/pkg/errs"
)

// Role represents the capability level of an account.
// Every account carries exactly one role; an account with RoleDeliveryAgent
// may additionally own an agent profile in the agent package.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleAdmin grants access to the operator API surface.
	RoleAdmin

	// RoleDeliveryAgent marks accounts of delivery staff.
	RoleDeliveryAgent

	// RoleCustomer is the default role for self-registered accounts.
	RoleCustomer
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:       "unknown",
		RoleAdmin:         "admin",
		RoleDeliveryAgent: "delivery_agent",
		RoleCustomer:      "customer",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleAdmin:         "admin",
		RoleDeliveryAgent: "delivery_agent",
		RoleCustomer:      "customer",
	}
}

// RoleFromString parses a role from its wire representation
// ("admin", "delivery_agent", "customer").
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
// Valid roles are: RoleAdmin, RoleDeliveryAgent, RoleCustomer.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire representation of the role.
// Implements the fmt.Stringer interface; safe on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// IsAdmin reports whether the role grants operator capabilities.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
