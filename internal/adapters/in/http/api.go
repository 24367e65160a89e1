package http

import (
	"strings"
	"time"

	"wastepickup/internal/core/application/usecases/queries"
	"wastepickup/internal/core/domain/model/pickup"
	"wastepickup/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Response messages.
const (
	MsgPickupScheduled = "Pickup scheduled successfully"
	MsgPickupCancelled = "Pickup cancelled successfully"
	MsgPickupCompleted = "Pickup marked as completed"
	MsgPickupDeleted   = "Pickup deleted successfully"
	MsgPickupNotFound  = "Pickup not found"
	MsgInternalError   = "Server error"
)

// Error is the body of every error response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewPickup is the body of POST /api/v1/pickups.
type NewPickup struct {
	Name                  string   `json:"name" validate:"required"`
	Address               string   `json:"address" validate:"required"`
	ContactNumber         string   `json:"contactNumber" validate:"required"`
	PickupDate            string   `json:"pickupDate" validate:"required"`
	Items                 string   `json:"items" validate:"required"`
	AdditionalNotes       *string  `json:"additionalNotes,omitempty"`
	AssignedVolunteerID   *string  `json:"assignedVolunteerId,omitempty"`
	AssignedVolunteerName *string  `json:"assignedVolunteerName,omitempty"`
	WasteTypes            []string `json:"wasteTypes,omitempty" validate:"omitempty,max=32,dive,max=64"`
}

// dateLayouts are the accepted pickupDate formats. Values without an offset,
// such as an HTML datetime-local "2024-01-10T10:00", are read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateOnly,
}

// details converts the body into domain details. A blank date is left zero
// so that the domain reports it as missing alongside the other fields.
func (n NewPickup) details() (pickup.Details, error) {
	d := pickup.Details{
		Name:          n.Name,
		Address:       n.Address,
		ContactNumber: n.ContactNumber,
		Items:         n.Items,
	}

	raw := strings.TrimSpace(n.PickupDate)
	if raw == "" {
		return d, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			d.PickupDate = t.UTC()
			return d, nil
		}
	}
	return d, errs.NewValueIsInvalidError("pickupDate")
}

func (n NewPickup) options() pickup.Options {
	return pickup.Options{
		AdditionalNotes:       n.AdditionalNotes,
		AssignedVolunteerID:   n.AssignedVolunteerID,
		AssignedVolunteerName: n.AssignedVolunteerName,
		WasteTypes:            n.WasteTypes,
	}
}

// Pickup is the JSON representation of a pickup.
type Pickup struct {
	ID                    openapi_types.UUID `json:"id"`
	UserID                *string            `json:"userId"`
	Name                  string             `json:"name"`
	Address               string             `json:"address"`
	ContactNumber         string             `json:"contactNumber"`
	PickupDate            time.Time          `json:"pickupDate"`
	Items                 string             `json:"items"`
	AdditionalNotes       string             `json:"additionalNotes"`
	AssignedVolunteerID   *string            `json:"assignedVolunteerId"`
	AssignedVolunteerName string             `json:"assignedVolunteerName"`
	Status                string             `json:"status"`
	StatusPriority        *int               `json:"statusPriority,omitempty"`
	CompletedAt           *time.Time         `json:"completedAt"`
	WasteTypes            []string           `json:"wasteTypes"`
	CreatedAt             time.Time          `json:"createdAt"`
	UpdatedAt             time.Time          `json:"updatedAt"`
}

// CreatedPickup is the body of a successful create.
type CreatedPickup struct {
	Message string `json:"message"`
	Pickup  Pickup `json:"pickup"`
}

// PickupEnvelope is the body of get, cancel and accept.
type PickupEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Pickup  Pickup `json:"pickup"`
}

// Acknowledgement is the body of a successful delete.
type Acknowledgement struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func toPickup(r queries.PickupResponse) Pickup {
	wasteTypes := r.WasteTypes
	if wasteTypes == nil {
		wasteTypes = []string{}
	}
	return Pickup{
		ID:                    r.ID.Bytes(),
		UserID:                r.OwnerID,
		Name:                  r.Name,
		Address:               r.Address,
		ContactNumber:         r.ContactNumber,
		PickupDate:            r.PickupDate,
		Items:                 r.Items,
		AdditionalNotes:       r.AdditionalNotes,
		AssignedVolunteerID:   r.AssignedVolunteerID,
		AssignedVolunteerName: r.AssignedVolunteerName,
		Status:                string(r.Status),
		CompletedAt:           r.CompletedAt,
		WasteTypes:            wasteTypes,
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
	}
}

// toPrioritizedList renders a list response, each item carrying its status priority.
func toPrioritizedList(rs []queries.PickupResponse) []Pickup {
	out := make([]Pickup, len(rs))
	for i, r := range rs {
		out[i] = toPickup(r)
		priority := r.StatusPriority
		out[i].StatusPriority = &priority
	}
	return out
}

func toPickupList(rs []queries.PickupResponse) []Pickup {
	out := make([]Pickup, len(rs))
	for i, r := range rs {
		out[i] = toPickup(r)
	}
	return out
}
