// Package kernel contains shared value objects used across the campuseats domain model.
//
// The kernel provides:
//   - UUID: validated wrapper around google/uuid used for order identifiers
//   - UserID: opaque identifier issued by the external identity provider
//
// All kernel types are immutable value objects that can only be created through
// their constructor functions. Zero values fail Validate, which prevents
// half-initialized identifiers from leaking into aggregates or persistence.
package kernel
