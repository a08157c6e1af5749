package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// OrderStatus represents the lifecycle state of an order as a whole.
//
// The vocabulary is a closed set and validation is pure membership: any
// valid status may replace any other valid status. There is no transition
// graph, no terminal state, and "backward" moves (delivered -> received)
// are not rejected. Tightening this into an ordered state machine is a
// product decision, not something this type does silently.
//
// OrderStatus and ItemStatus share the same members today but are distinct
// types, so the two vocabularies can diverge later without an API break.
type OrderStatus int

const (
	// OrderStatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized OrderStatus values.
	OrderStatusUnknown OrderStatus = iota

	// OrderStatusReceived is the initial status when an order is placed.
	OrderStatusReceived

	// OrderStatusInPreparation indicates the kitchen is working the order.
	OrderStatusInPreparation

	// OrderStatusReady indicates every dish is plated and waiting.
	OrderStatusReady

	// OrderStatusDelivered indicates the order reached the customer.
	OrderStatusDelivered

	// OrderStatusCancelled indicates the order was cancelled.
	OrderStatusCancelled
)

// getOrderStatusStrings returns string forms for all statuses, including
// the invalid Unknown value, to support display of any raw value.
func getOrderStatusStrings() map[OrderStatus]string {
	return map[OrderStatus]string{
		OrderStatusUnknown:       "unknown",
		OrderStatusReceived:      "received",
		OrderStatusInPreparation: "in_preparation",
		OrderStatusReady:         "ready",
		OrderStatusDelivered:     "delivered",
		OrderStatusCancelled:     "cancelled",
	}
}

// getValidOrderStatusStrings returns only vocabulary members.
// Unknown is intentionally excluded to support validation.
func getValidOrderStatusStrings() map[OrderStatus]string {
	return map[OrderStatus]string{
		OrderStatusReceived:      "received",
		OrderStatusInPreparation: "in_preparation",
		OrderStatusReady:         "ready",
		OrderStatusDelivered:     "delivered",
		OrderStatusCancelled:     "cancelled",
	}
}

// AllOrderStatuses enumerates the order status vocabulary in a stable order.
func AllOrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusReceived,
		OrderStatusInPreparation,
		OrderStatusReady,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
}

// Validate checks that the status is a member of the vocabulary.
// Returns nil for valid members and a ValueIsInvalidError otherwise.
func (s OrderStatus) Validate() error {
	if _, ok := getValidOrderStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the wire/storage name of the status, or "unknown" for
// values outside the vocabulary. Implements fmt.Stringer.
func (s OrderStatus) String() string {
	if str, ok := getOrderStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ParseOrderStatus converts an inbound string into an OrderStatus.
// Returns a ValueIsInvalidError when the string is not a vocabulary member.
func ParseOrderStatus(value string) (OrderStatus, error) {
	for status, str := range getValidOrderStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return OrderStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid order status", value),
	)
}

// ItemStatus represents the lifecycle state of a single order item
// (one dish-and-quantity line, a "platillo" entry).
//
// Like OrderStatus it is a closed, membership-validated vocabulary with no
// transition graph. The members coincide with OrderStatus today; the types
// are kept separate so they can diverge without breaking callers.
type ItemStatus int

const (
	// ItemStatusUnknown represents an invalid or undefined status.
	ItemStatusUnknown ItemStatus = iota

	// ItemStatusReceived is the initial status of a freshly ordered item.
	ItemStatusReceived

	// ItemStatusInPreparation indicates the dish is being cooked.
	ItemStatusInPreparation

	// ItemStatusReady indicates the dish is plated and waiting.
	ItemStatusReady

	// ItemStatusDelivered indicates the dish reached the customer.
	ItemStatusDelivered

	// ItemStatusCancelled indicates the item was cancelled.
	ItemStatusCancelled
)

func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		ItemStatusUnknown:       "unknown",
		ItemStatusReceived:      "received",
		ItemStatusInPreparation: "in_preparation",
		ItemStatusReady:         "ready",
		ItemStatusDelivered:     "delivered",
		ItemStatusCancelled:     "cancelled",
	}
}

func getValidItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		ItemStatusReceived:      "received",
		ItemStatusInPreparation: "in_preparation",
		ItemStatusReady:         "ready",
		ItemStatusDelivered:     "delivered",
		ItemStatusCancelled:     "cancelled",
	}
}

// AllItemStatuses enumerates the item status vocabulary in a stable order.
func AllItemStatuses() []ItemStatus {
	return []ItemStatus{
		ItemStatusReceived,
		ItemStatusInPreparation,
		ItemStatusReady,
		ItemStatusDelivered,
		ItemStatusCancelled,
	}
}

// Validate checks that the status is a member of the vocabulary.
func (s ItemStatus) Validate() error {
	if _, ok := getValidItemStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid item status", s))
	}
	return nil
}

// String returns the wire/storage name of the status, or "unknown" for
// values outside the vocabulary. Implements fmt.Stringer.
func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ParseItemStatus converts an inbound string into an ItemStatus.
// Returns a ValueIsInvalidError when the string is not a vocabulary member.
func ParseItemStatus(value string) (ItemStatus, error) {
	for status, str := range getValidItemStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return ItemStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid item status", value),
	)
}
