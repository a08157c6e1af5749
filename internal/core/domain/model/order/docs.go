// Package order provides domain entities and business logic for order
// management in the restaurant ordering backend. It implements the Order
// aggregate root with its line items and the status vocabularies governing
// their lifecycles.
//
// The package includes:
//   - Order: The aggregate root managing identity, customer data, items, and status
//   - Item: One dish-and-quantity line within an order, with its own status
//   - OrderStatus / ItemStatus: Closed, membership-validated status vocabularies
//
// Key business rules:
//   - Orders must contain at least one item at creation time
//   - Item quantities must be positive integers
//   - Status values must belong to their vocabulary; beyond membership there
//     is no transition graph, so any valid status may follow any other
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
