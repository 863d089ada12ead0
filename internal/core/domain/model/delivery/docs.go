// Package delivery provides domain entities and business logic for delivery
// assignments in the courier system. It implements the Delivery aggregate
// root linking an order to a delivery agent through the hand-off lifecycle.
//
// The package includes:
//   - Delivery: The aggregate root tracking assignment, pickup, transit, and completion
//   - Status: A state machine value object for the hand-off lifecycle
//
// Key business rules:
//   - A delivery references exactly one order and one agent
//   - Each order has at most one delivery; storage enforces uniqueness
//   - Pickup is valid only from assigned; completion from picked_up or in_transit
//   - Failure is accepted from any non-terminal state and records notes
//   - Completion optionally records a 1-5 rating and feedback
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package delivery
