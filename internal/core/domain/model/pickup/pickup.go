package pickup

import (
	"errors"
	"slices"
	"strings"
	"time"

	"wastepickup/internal/core/domain/model/kernel"
	"wastepickup/internal/pkg/errs"
	"wastepickup/internal/pkg/guard"
)

// ErrPickupIsNotConstructed is returned when a Pickup was not created through
// NewPickup or RestorePickup.
var ErrPickupIsNotConstructed = errors.New("Pickup must be created via NewPickup or RestorePickup")

// Details are the required descriptive fields of a pickup.
type Details struct {
	Name          string
	Address       string
	ContactNumber string
	PickupDate    time.Time
	Items         string
}

// Validate reports every missing field at once. Blank strings count as missing.
func (d Details) Validate() error {
	var problems []error
	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", d.Name},
		{"address", d.Address},
		{"contactNumber", d.ContactNumber},
	} {
		if strings.TrimSpace(f.value) == "" {
			problems = append(problems, errs.NewValueIsRequiredError(f.name))
		}
	}
	if d.PickupDate.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("pickupDate"))
	}
	if strings.TrimSpace(d.Items) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("items"))
	}
	return errors.Join(problems...)
}

// Pickup is the aggregate root of a waste pickup request.
//
// Invariants:
//   - status only changes through Cancel (to Cancelled) and Accept (to Completed)
//   - completedAt is set by Accept and by nothing else
//   - a nil owner marks a legacy record that predates ownership tracking
type Pickup struct {
	id                    kernel.UUID
	ownerID               *string
	name                  string
	address               string
	contactNumber         string
	pickupDate            time.Time
	items                 string
	additionalNotes       string
	assignedVolunteerID   *string
	assignedVolunteerName string
	status                Status
	completedAt           *time.Time
	wasteTypes            []string
	createdAt             time.Time
	updatedAt             time.Time

	// persistedStatus is the status the store last saw; the store uses it
	// for conditional writes.
	persistedStatus Status

	guard guard.ConstructorGuard
}

// NewPickup creates a Scheduled pickup owned by owner (nil owner for an
// anonymous principal), filling optional fields from StandardDefaults.
//
// Example:
//
//	p, err := pickup.NewPickup(kernel.NewUUID(), principal, pickup.Details{
//	    Name:          "A",
//	    Address:       "1 Main St",
//	    ContactNumber: "555",
//	    PickupDate:    date,
//	    Items:         "Plastic",
//	}, pickup.Options{})
func NewPickup(id kernel.UUID, owner kernel.Principal, details Details, opts Options) (*Pickup, error) {
	return NewPickupWithDefaults(id, owner, details, opts, StandardDefaults())
}

// NewPickupWithDefaults is NewPickup with explicit defaults for optional fields.
func NewPickupWithDefaults(
	id kernel.UUID,
	owner kernel.Principal,
	details Details,
	opts Options,
	defaults Defaults,
) (*Pickup, error) {
	if err := errors.Join(id.Validate(), details.Validate()); err != nil {
		return nil, err
	}

	resolved := defaults.resolve(opts)
	return &Pickup{
		id:                    id,
		ownerID:               owner.OwnerRef(),
		name:                  details.Name,
		address:               details.Address,
		contactNumber:         details.ContactNumber,
		pickupDate:            details.PickupDate,
		items:                 details.Items,
		additionalNotes:       resolved.additionalNotes,
		assignedVolunteerID:   resolved.assignedVolunteerID,
		assignedVolunteerName: resolved.assignedVolunteerName,
		status:                Scheduled,
		wasteTypes:            resolved.wasteTypes,
		guard:                 guard.NewConstructorGuard(),
	}, nil
}

// Snapshot is the full state of a pickup as exchanged with the store.
type Snapshot struct {
	ID                    kernel.UUID
	OwnerID               *string
	Name                  string
	Address               string
	ContactNumber         string
	PickupDate            time.Time
	Items                 string
	AdditionalNotes       string
	AssignedVolunteerID   *string
	AssignedVolunteerName string
	Status                Status
	CompletedAt           *time.Time
	WasteTypes            []string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// RestorePickup rebuilds a stored pickup. Descriptive fields are not
// revalidated and unknown statuses are kept, so old records stay readable.
func RestorePickup(s Snapshot) (*Pickup, error) {
	if err := s.ID.Validate(); err != nil {
		return nil, err
	}
	wasteTypes := s.WasteTypes
	if wasteTypes == nil {
		wasteTypes = []string{}
	}
	return &Pickup{
		id:                    s.ID,
		ownerID:               cloneString(s.OwnerID),
		name:                  s.Name,
		address:               s.Address,
		contactNumber:         s.ContactNumber,
		pickupDate:            s.PickupDate,
		items:                 s.Items,
		additionalNotes:       s.AdditionalNotes,
		assignedVolunteerID:   cloneString(s.AssignedVolunteerID),
		assignedVolunteerName: s.AssignedVolunteerName,
		status:                s.Status,
		completedAt:           cloneTime(s.CompletedAt),
		wasteTypes:            slices.Clone(wasteTypes),
		createdAt:             s.CreatedAt,
		updatedAt:             s.UpdatedAt,
		persistedStatus:       s.Status,
		guard:                 guard.NewConstructorGuard(),
	}, nil
}

// Snapshot returns a copy of the current state.
func (p *Pickup) Snapshot() Snapshot {
	return Snapshot{
		ID:                    p.id,
		OwnerID:               cloneString(p.ownerID),
		Name:                  p.name,
		Address:               p.address,
		ContactNumber:         p.contactNumber,
		PickupDate:            p.pickupDate,
		Items:                 p.items,
		AdditionalNotes:       p.additionalNotes,
		AssignedVolunteerID:   cloneString(p.assignedVolunteerID),
		AssignedVolunteerName: p.assignedVolunteerName,
		Status:                p.status,
		CompletedAt:           cloneTime(p.completedAt),
		WasteTypes:            slices.Clone(p.wasteTypes),
		CreatedAt:             p.createdAt,
		UpdatedAt:             p.updatedAt,
	}
}

// Validate ensures the pickup was built by a constructor.
func (p *Pickup) Validate() error {
	if p == nil {
		return ErrPickupIsNotConstructed
	}
	return p.guard.Validate(ErrPickupIsNotConstructed)
}

func (p *Pickup) ID() kernel.UUID {
	return p.id
}

// OwnerID returns the creating principal's id, or nil for legacy records.
func (p *Pickup) OwnerID() *string {
	return cloneString(p.ownerID)
}

// IsOwnerless reports a legacy record without an owner.
func (p *Pickup) IsOwnerless() bool {
	return p.ownerID == nil || *p.ownerID == ""
}

// IsOwnedBy reports whether principal created the pickup. It is false for
// ownerless pickups.
func (p *Pickup) IsOwnedBy(principal kernel.Principal) bool {
	return !p.IsOwnerless() && principal.IsAuthenticated() && *p.ownerID == principal.ID()
}

func (p *Pickup) Name() string          { return p.name }
func (p *Pickup) Address() string       { return p.address }
func (p *Pickup) ContactNumber() string { return p.contactNumber }
func (p *Pickup) PickupDate() time.Time { return p.pickupDate }
func (p *Pickup) Items() string         { return p.items }
func (p *Pickup) AdditionalNotes() string {
	return p.additionalNotes
}

func (p *Pickup) AssignedVolunteerID() *string {
	return cloneString(p.assignedVolunteerID)
}

func (p *Pickup) AssignedVolunteerName() string {
	return p.assignedVolunteerName
}

func (p *Pickup) Status() Status {
	return p.status
}

// PersistedStatus is the status as last loaded from or written to the store.
func (p *Pickup) PersistedStatus() Status {
	return p.persistedStatus
}

func (p *Pickup) CompletedAt() *time.Time {
	return cloneTime(p.completedAt)
}

func (p *Pickup) WasteTypes() []string {
	return slices.Clone(p.wasteTypes)
}

func (p *Pickup) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Pickup) UpdatedAt() time.Time {
	return p.updatedAt
}

// Cancel moves the pickup to Cancelled. Already cancelled and completed
// pickups are rejected with a ConflictError.
func (p *Pickup) Cancel() error {
	next, err := p.status.Cancel()
	if err != nil {
		return err
	}
	p.status = next
	return nil
}

// Accept marks the pickup Completed on behalf of volunteer and stamps
// completedAt. The accepting volunteer replaces any volunteer assigned at
// creation; a stale pre-assigned name is cleared.
func (p *Pickup) Accept(volunteer kernel.Principal, now time.Time) error {
	if !volunteer.IsAuthenticated() {
		return errs.NewValueIsRequiredError("volunteer")
	}
	next, err := p.status.Complete()
	if err != nil {
		return err
	}

	if p.assignedVolunteerID == nil || *p.assignedVolunteerID != volunteer.ID() {
		p.assignedVolunteerName = ""
	}
	p.assignedVolunteerID = volunteer.OwnerRef()
	p.status = next
	completedAt := now
	p.completedAt = &completedAt
	return nil
}

// ValidateDelete rejects deletion of a completed pickup.
func (p *Pickup) ValidateDelete() error {
	return p.status.ValidateDelete()
}

// MarkPersisted records store-managed timestamps after a successful write.
func (p *Pickup) MarkPersisted(createdAt, updatedAt time.Time) {
	if !createdAt.IsZero() {
		p.createdAt = createdAt
	}
	p.updatedAt = updatedAt
	p.persistedStatus = p.status
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
