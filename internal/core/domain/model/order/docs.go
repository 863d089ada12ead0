// Package order provides domain entities and business logic for order
// management in the courier backend. It implements the Order aggregate root
// with two independent state machines.
//
// The package includes:
//   - Order: the aggregate root holding identity, barcode, receiver details,
//     amount, and both lifecycle statuses
//   - Status: the order lifecycle state machine
//   - PaymentStatus: the payment state machine
//
// Key business rules:
//   - The barcode is assigned at creation and immutable afterwards
//   - Status transitions follow pending -> {in_transit, cancelled} and
//     in_transit -> {delivered, cancelled}; delivered and cancelled are
//     terminal
//   - Payment moves one-way: unpaid -> paid -> refunded
//   - An order is deliverable only while pending or in transit AND paid
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
