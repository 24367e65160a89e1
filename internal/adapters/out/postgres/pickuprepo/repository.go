package pickuprepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"wastepickup/internal/core/domain/model/kernel"
	"wastepickup/internal/core/domain/model/pickup"
	"wastepickup/internal/core/ports"
	"wastepickup/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MsgConcurrentModification is the conflict reported when a conditional write
// finds the stored status changed since the pickup was loaded.
const MsgConcurrentModification = "pickup was modified concurrently"

// GormPickupRepository implements ports.PickupRepository and
// ports.PickupQueryRepository using GORM.
type GormPickupRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	now     func() time.Time
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

var (
	_ ports.PickupRepository      = (*GormPickupRepository)(nil)
	_ ports.PickupQueryRepository = (*GormPickupRepository)(nil)
)

// NewGormPickupRepository creates a repository on db. tracker may be nil for
// read-only use.
func NewGormPickupRepository(db *gorm.DB, tracker aggregateTracker) *GormPickupRepository {
	return &GormPickupRepository{
		db:      db,
		tracker: tracker,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Add inserts a new pickup and stamps its createdAt and updatedAt.
func (r *GormPickupRepository) Add(ctx context.Context, aggregate *pickup.Pickup) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	now := r.now()
	dto.CreatedAt, dto.UpdatedAt = now, now
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStoreError("insert pickup", err)
	}

	aggregate.MarkPersisted(dto.CreatedAt, dto.UpdatedAt)
	r.track(aggregate)
	return nil
}

// Update writes the mutable fields while the stored status still equals the
// status the aggregate was loaded with.
func (r *GormPickupRepository) Update(ctx context.Context, aggregate *pickup.Pickup) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	now := r.now()
	result := r.db.WithContext(ctx).
		Model(&PickupDTO{}).
		Where("id = ? AND status = ?", dto.ID, string(aggregate.PersistedStatus())).
		Updates(map[string]any{
			"status":                  dto.Status,
			"assigned_volunteer_id":   dto.AssignedVolunteerID,
			"assigned_volunteer_name": dto.AssignedVolunteerName,
			"completed_at":            dto.CompletedAt,
			"updated_at":              now,
		})
	if result.Error != nil {
		return errs.NewStoreError("update pickup", result.Error)
	}

	if result.RowsAffected == 0 {
		return r.explainMiss(ctx, aggregate.ID())
	}

	aggregate.MarkPersisted(time.Time{}, now)
	r.track(aggregate)
	return nil
}

// Delete removes the pickup under the same status condition as Update.
func (r *GormPickupRepository) Delete(ctx context.Context, aggregate *pickup.Pickup) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), string(aggregate.PersistedStatus())).
		Delete(&PickupDTO{})
	if result.Error != nil {
		return errs.NewStoreError("delete pickup", result.Error)
	}

	if result.RowsAffected == 0 {
		return r.explainMiss(ctx, aggregate.ID())
	}

	r.track(aggregate)
	return nil
}

// Get retrieves a pickup by ID.
func (r *GormPickupRepository) Get(ctx context.Context, id kernel.UUID) (*pickup.Pickup, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PickupDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pickup", id.String())
		}
		return nil, errs.NewStoreError("get pickup", err)
	}

	return toDomain(dto)
}

// ListByPriority returns pickups ordered by status priority, then pickup date.
func (r *GormPickupRepository) ListByPriority(ctx context.Context, filter ports.PickupFilter) ([]*pickup.Pickup, error) {
	q := r.db.WithContext(ctx).Model(&PickupDTO{})
	if filter.OwnerID != nil {
		if filter.IncludeOwnerless {
			q = q.Where("user_id = ? OR user_id IS NULL", *filter.OwnerID)
		} else {
			q = q.Where("user_id = ?", *filter.OwnerID)
		}
	}

	var dtos []PickupDTO
	if err := q.Order(priorityOrder()).Find(&dtos).Error; err != nil {
		return nil, errs.NewStoreError("list pickups", err)
	}

	return toDomainList(dtos)
}

// ListAssignedToVolunteer returns the volunteer's pickups, newest pickup date first.
func (r *GormPickupRepository) ListAssignedToVolunteer(
	ctx context.Context,
	volunteerID string,
) ([]*pickup.Pickup, error) {
	var dtos []PickupDTO
	err := r.db.WithContext(ctx).
		Where("assigned_volunteer_id = ?", volunteerID).
		Order("pickup_date DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewStoreError("list volunteer pickups", err)
	}

	return toDomainList(dtos)
}

// CountByStatus groups stored pickups by their raw status value.
func (r *GormPickupRepository) CountByStatus(ctx context.Context) (map[pickup.Status]int64, error) {
	var rows []struct {
		Status string
		Total  int64
	}
	err := r.db.WithContext(ctx).
		Model(&PickupDTO{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, errs.NewStoreError("count pickups by status", err)
	}

	counts := make(map[pickup.Status]int64, len(rows))
	for _, row := range rows {
		counts[pickup.Status(row.Status)] = row.Total
	}
	return counts, nil
}

// explainMiss tells apart a deleted row from a concurrent status change after
// a conditional write matched nothing.
func (r *GormPickupRepository) explainMiss(ctx context.Context, id kernel.UUID) error {
	var status string
	err := r.db.WithContext(ctx).
		Model(&PickupDTO{}).
		Select("status").
		Where("id = ?", id.Bytes()).
		Take(&status).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError("pickup", id.String())
	}
	if err != nil {
		return errs.NewStoreError("reload pickup status", err)
	}

	return errs.NewConflictErrorWithCause(
		MsgConcurrentModification,
		fmt.Errorf("status is now %s", pickup.Status(status)),
	)
}

func (r *GormPickupRepository) track(aggregate *pickup.Pickup) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
}

// priorityOrder sorts by status priority (unknown statuses last), then by
// pickup date ascending.
func priorityOrder() clause.OrderBy {
	statuses := pickup.Statuses()
	var sql strings.Builder
	vars := make([]any, 0, len(statuses))

	sql.WriteString("CASE status")
	for _, s := range statuses {
		fmt.Fprintf(&sql, " WHEN ? THEN %d", s.Priority())
		vars = append(vars, string(s))
	}
	fmt.Fprintf(&sql, " ELSE %d END, pickup_date ASC", pickup.Unknown.Priority())

	return clause.OrderBy{
		Expression: clause.Expr{SQL: sql.String(), Vars: vars, WithoutParentheses: true},
	}
}
