package pickup

import (
	"fmt"

	"wastepickup/internal/pkg/errs"
)

// Status is the lifecycle state of a pickup.
//
// State transitions:
//
//	Scheduled ──┬──> Completed   (accept, volunteers only)
//	            └──> Cancelled   (cancel)
//
// Completed and Cancelled are terminal for cancel and accept. Only Completed
// blocks deletion; a Cancelled pickup may still be deleted. Only the three
// named values are ever written. Values read from older records that match
// none of them are kept as-is and sort last.
type Status string

const (
	Unknown   Status = ""
	Scheduled Status = "Scheduled"
	Completed Status = "Completed"
	Cancelled Status = "Cancelled"
)

// otherPriority is the sort weight of any status outside the enumerated set.
const otherPriority = 4

// Conflict messages returned by the transitions.
const (
	MsgAlreadyCancelled   = "pickup is already cancelled"
	MsgCannotCancelDone   = "cannot cancel completed pickup"
	MsgCannotAcceptCancel = "cannot accept a cancelled pickup"
	MsgAlreadyCompleted   = "pickup already completed"
	MsgCannotDeleteDone   = "cannot delete completed pickup"
)

func priorities() map[Status]int {
	return map[Status]int{
		Scheduled: 1,
		Completed: 2,
		Cancelled: 3,
	}
}

// Statuses returns the valid statuses in priority order.
func Statuses() []Status {
	return []Status{Scheduled, Completed, Cancelled}
}

// Validate rejects anything outside Scheduled, Completed and Cancelled.
func (s Status) Validate() error {
	if _, ok := priorities()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

func (s Status) String() string {
	if s == Unknown {
		return "Unknown"
	}
	return string(s)
}

// Priority is the list ordering weight: Scheduled=1, Completed=2,
// Cancelled=3 and 4 for anything else.
func (s Status) Priority() int {
	if p, ok := priorities()[s]; ok {
		return p
	}
	return otherPriority
}

// Cancel returns the status after a cancellation.
func (s Status) Cancel() (Status, error) {
	switch s {
	case Cancelled:
		return s, errs.NewConflictError(MsgAlreadyCancelled)
	case Completed:
		return s, errs.NewConflictError(MsgCannotCancelDone)
	default:
		return Cancelled, nil
	}
}

// Complete returns the status after a volunteer accepts the pickup.
func (s Status) Complete() (Status, error) {
	switch s {
	case Cancelled:
		return s, errs.NewConflictError(MsgCannotAcceptCancel)
	case Completed:
		return s, errs.NewConflictError(MsgAlreadyCompleted)
	default:
		return Completed, nil
	}
}

// ValidateDelete rejects deletion of completed pickups.
func (s Status) ValidateDelete() error {
	if s == Completed {
		return errs.NewConflictError(MsgCannotDeleteDone)
	}
	return nil
}
