// Package moverrepo provides data transfer objects and mapping functions for
// mover persistence. This package implements the repository pattern for the
// mover domain aggregate, handling the conversion between domain entities
// and database representations.
package moverrepo

import (
	"encoding/json"
	"time"

	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/core/domain/model/mover"

	"github.com/google/uuid"
)

// MoverDTO represents the database structure for persisting mover
// aggregates. The weekly availability schedule is stored as a JSONB
// document; it is read as a whole for planning and never queried by field.
type MoverDTO struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name         string      `gorm:"type:varchar(255);not null"`
	Location     LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	Balance      float64     `gorm:"type:numeric;not null"`
	Availability []byte      `gorm:"type:jsonb;not null"`
	CreatedAt    time.Time   `gorm:"not null"`
	UpdatedAt    time.Time   `gorm:"not null"`
}

// TableName specifies the database table name for mover entities.
// Overrides GORM's default naming convention to use "movers".
func (MoverDTO) TableName() string {
	return "movers"
}

// LocationDTO represents the embedded location coordinates within the mover
// table. Stores the mover's home position on the campus grid.
type LocationDTO struct {
	X kernel.Coordinate `gorm:"type:smallint"`
	Y kernel.Coordinate `gorm:"type:smallint"`
}

// fromDomain converts a mover domain aggregate to its database
// representation.
func fromDomain(m *mover.Mover) (MoverDTO, error) {
	availability, err := json.Marshal(m.Availability())
	if err != nil {
		return MoverDTO{}, err
	}

	return MoverDTO{
		ID:   m.ID().Bytes(),
		Name: m.Name(),
		Location: LocationDTO{
			X: m.Location().X(),
			Y: m.Location().Y(),
		},
		Balance:      m.Balance(),
		Availability: availability,
		CreatedAt:    m.CreatedAt(),
		UpdatedAt:    m.UpdatedAt(),
	}, nil
}

// toDomain converts a database DTO to a mover domain aggregate using
// RestoreMover.
func toDomain(dto MoverDTO) (*mover.Mover, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	loc, err := kernel.NewLocation(dto.Location.X, dto.Location.Y)
	if err != nil {
		return nil, err
	}

	var availability mover.Availability
	if err = json.Unmarshal(dto.Availability, &availability); err != nil {
		return nil, err
	}

	return mover.RestoreMover(id, dto.Name, loc, dto.Balance, availability,
		dto.CreatedAt, dto.UpdatedAt)
}
