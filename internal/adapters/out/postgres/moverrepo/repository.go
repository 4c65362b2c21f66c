package moverrepo

import (
	"context"
	"errors"

	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/core/domain/model/mover"
	"moveout/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMoverRepository implements MoverRepository using GORM.
type GormMoverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMoverRepository creates a new GORM mover repository.
func NewGormMoverRepository(db *gorm.DB, tracker aggregateTracker) *GormMoverRepository {
	return &GormMoverRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new mover to the database.
func (r *GormMoverRepository) Add(ctx context.Context, aggregate *mover.Mover) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewAlreadyExistsError("mover", aggregate.ID().String())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing mover to the database.
func (r *GormMoverRepository) Update(ctx context.Context, aggregate *mover.Mover) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Model(&MoverDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("mover", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a mover by ID.
func (r *GormMoverRepository) Get(ctx context.Context, id kernel.UUID) (*mover.Mover, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MoverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("mover", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
