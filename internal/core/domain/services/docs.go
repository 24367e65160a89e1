// Package services provides domain services that apply rules spanning the
// pickup aggregate and the acting principal.
//
// The package includes:
//   - PickupAccessPolicy: ownership and role checks for pickup operations
//
// Identity claims are trusted as supplied; the policy only decides what an
// already identified principal may do.
package services
