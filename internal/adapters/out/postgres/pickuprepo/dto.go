// Package pickuprepo persists pickup aggregates in PostgreSQL through GORM,
// handling the conversion between domain entities and database rows.
package pickuprepo

import (
	"time"

	"wastepickup/internal/core/domain/model/kernel"
	"wastepickup/internal/core/domain/model/pickup"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PickupDTO is the row of the pickups table. UserID is NULL for pickups
// created before ownership was recorded.
type PickupDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID                *string   `gorm:"index"`
	Name                  string
	Address               string
	ContactNumber         string
	PickupDate            time.Time `gorm:"index"`
	Items                 string
	AdditionalNotes       string
	AssignedVolunteerID   *string `gorm:"index"`
	AssignedVolunteerName string
	Status                string `gorm:"index"`
	CompletedAt           *time.Time
	WasteTypes            pq.StringArray `gorm:"type:text[]"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (PickupDTO) TableName() string {
	return "pickups"
}

func fromDomain(aggregate *pickup.Pickup) PickupDTO {
	s := aggregate.Snapshot()
	wasteTypes := pq.StringArray(s.WasteTypes)
	if wasteTypes == nil {
		wasteTypes = pq.StringArray{}
	}

	return PickupDTO{
		ID:                    s.ID.Bytes(),
		UserID:                s.OwnerID,
		Name:                  s.Name,
		Address:               s.Address,
		ContactNumber:         s.ContactNumber,
		PickupDate:            s.PickupDate,
		Items:                 s.Items,
		AdditionalNotes:       s.AdditionalNotes,
		AssignedVolunteerID:   s.AssignedVolunteerID,
		AssignedVolunteerName: s.AssignedVolunteerName,
		Status:                string(s.Status),
		CompletedAt:           s.CompletedAt,
		WasteTypes:            wasteTypes,
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
	}
}

// toDomain rebuilds the aggregate with RestorePickup. Unknown statuses are
// kept as stored.
func toDomain(dto PickupDTO) (*pickup.Pickup, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	return pickup.RestorePickup(pickup.Snapshot{
		ID:                    id,
		OwnerID:               dto.UserID,
		Name:                  dto.Name,
		Address:               dto.Address,
		ContactNumber:         dto.ContactNumber,
		PickupDate:            dto.PickupDate,
		Items:                 dto.Items,
		AdditionalNotes:       dto.AdditionalNotes,
		AssignedVolunteerID:   dto.AssignedVolunteerID,
		AssignedVolunteerName: dto.AssignedVolunteerName,
		Status:                pickup.Status(dto.Status),
		CompletedAt:           dto.CompletedAt,
		WasteTypes:            []string(dto.WasteTypes),
		CreatedAt:             dto.CreatedAt,
		UpdatedAt:             dto.UpdatedAt,
	})
}

func toDomainList(dtos []PickupDTO) ([]*pickup.Pickup, error) {
	out := make([]*pickup.Pickup, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
