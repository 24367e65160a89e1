// Package guard lets commands, queries and value objects detect whether they
// were built through their constructor or are zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into types that must only be created through a
// constructor. The zero value reports the type as not constructed.
//
// Example:
//
//	var ErrCancelPickupCommandIsNotConstructed = errors.New("CancelPickupCommand must be created via NewCancelPickupCommand")
//
//	type CancelPickupCommand struct {
//	    pickupID kernel.UUID
//	    guard    guard.ConstructorGuard
//	}
//
//	func (c CancelPickupCommand) Validate() error {
//	    return c.guard.Validate(ErrCancelPickupCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero value it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
