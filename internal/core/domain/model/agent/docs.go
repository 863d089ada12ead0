// Package agent provides domain entities and business logic for delivery agent
// profiles in the courier system. It implements the Agent aggregate root with
// vehicle details, availability, and derived performance aggregates.
//
// The package includes:
//   - Agent: The aggregate root that manages vehicle identity, availability, and performance
//   - VehicleType: A value object classifying the agent's vehicle
//
// Key business rules:
//   - Each agent profile belongs to exactly one delivery-agent account
//   - Agents must have a valid vehicle type, vehicle number, and license number
//   - Total deliveries and rating are maintained incrementally on delivery completion
//   - Rating is the arithmetic mean of recorded 1-5 ratings, 0.00 while unrated
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package agent
