package services

import (
	"wastepickup/internal/core/domain/model/kernel"
	"wastepickup/internal/core/domain/model/pickup"
	"wastepickup/internal/pkg/errs"
)

// ReasonNotVolunteer is the ForbiddenError reason for a non-volunteer accept.
const ReasonNotVolunteer = "only volunteers can accept pickups"

// Actions checked by PickupAccessPolicy.
const (
	ActionCancel = "cancel"
	ActionDelete = "delete"
	ActionAccept = "accept"
)

// PickupAccessPolicy decides whether a principal may change a pickup.
//
// Business rules:
//   - cancel and delete are allowed for the owner, and for anyone when the
//     pickup has no owner
//   - accept requires an authenticated principal with the volunteer role
//
// Example usage:
//
//	policy := services.NewPickupAccessPolicy()
//	if err := policy.CanModify(principal, p, services.ActionCancel); err != nil {
//	    return nil, err // *errs.ForbiddenError
//	}
type PickupAccessPolicy struct{}

func NewPickupAccessPolicy() PickupAccessPolicy {
	return PickupAccessPolicy{}
}

// CanModify checks ownership for cancel and delete.
func (PickupAccessPolicy) CanModify(principal kernel.Principal, p *pickup.Pickup, action string) error {
	if p.IsOwnerless() || p.IsOwnedBy(principal) {
		return nil
	}
	return errs.NewForbiddenError(action, formatReason(action))
}

// CanAccept checks the caller is an authenticated volunteer. The anonymous
// principal gets an UnauthenticatedError, any other role a ForbiddenError.
func (PickupAccessPolicy) CanAccept(principal kernel.Principal) error {
	if !principal.IsAuthenticated() {
		return errs.NewUnauthenticatedError(ActionAccept)
	}
	if !principal.IsVolunteer() {
		return errs.NewForbiddenError(ActionAccept, ReasonNotVolunteer)
	}
	return nil
}

// RequireAuthenticated rejects the anonymous principal for operation.
func (PickupAccessPolicy) RequireAuthenticated(principal kernel.Principal, operation string) error {
	if !principal.IsAuthenticated() {
		return errs.NewUnauthenticatedError(operation)
	}
	return nil
}

func formatReason(action string) string {
	return "you can only " + action + " your own pickups"
}
