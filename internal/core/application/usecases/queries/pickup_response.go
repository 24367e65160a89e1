// Package queries contains read operations over pickups.
// Queries return read models shaped for the HTTP adapter and the jobs.
package queries

import (
	"time"

	"wastepickup/internal/core/domain/model/kernel"
	"wastepickup/internal/core/domain/model/pickup"
)

// PickupResponse is the read model of a pickup. StatusPriority is the list
// ordering weight of Status.
type PickupResponse struct {
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
	Status                pickup.Status
	StatusPriority        int
	CompletedAt           *time.Time
	WasteTypes            []string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// NewPickupResponse builds the read model of p.
func NewPickupResponse(p *pickup.Pickup) PickupResponse {
	s := p.Snapshot()
	return PickupResponse{
		ID:                    s.ID,
		OwnerID:               s.OwnerID,
		Name:                  s.Name,
		Address:               s.Address,
		ContactNumber:         s.ContactNumber,
		PickupDate:            s.PickupDate,
		Items:                 s.Items,
		AdditionalNotes:       s.AdditionalNotes,
		AssignedVolunteerID:   s.AssignedVolunteerID,
		AssignedVolunteerName: s.AssignedVolunteerName,
		Status:                s.Status,
		StatusPriority:        s.Status.Priority(),
		CompletedAt:           s.CompletedAt,
		WasteTypes:            s.WasteTypes,
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
	}
}

func newPickupResponses(pickups []*pickup.Pickup) []PickupResponse {
	out := make([]PickupResponse, 0, len(pickups))
	for _, p := range pickups {
		out = append(out, NewPickupResponse(p))
	}
	return out
}
