// Package pickup models a waste pickup request and its lifecycle.
//
// The package includes:
//   - Pickup: the aggregate root holding the request, its owner and its volunteer
//   - Status: the Scheduled -> Completed / Cancelled state machine and list priority
//   - Defaults and Options: explicit defaulting of optional creation fields
//
// Key business rules:
//   - name, address, contactNumber, pickupDate and items are required on creation
//   - a new pickup is Scheduled and has no completedAt
//   - Cancel and Accept only succeed from a non-terminal status
//   - completed pickups cannot be deleted
//
// Ownership and role checks live in the domain services package.
package pickup
