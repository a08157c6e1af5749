// Package kernel provides shared value objects used across the domain model.
//
// It currently contains the UUID value object, which wraps google/uuid with
// construction-time validation so that identifiers flowing through the
// ordering core are always well formed.
package kernel
