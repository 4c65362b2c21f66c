// Package jobrepo provides data transfer objects and mapping functions for
// job persistence. This package implements the repository pattern for the
// job domain aggregate, handling the conversion between domain entities and
// database representations.
package jobrepo

import (
	"time"

	"moveout/internal/core/domain/model/job"
	"moveout/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobDTO represents the database structure for persisting job aggregates.
// The status column drives the conditional assignment update, so it is
// indexed together with the scheduled time the job board sorts by.
type JobDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	StudentID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	MoverID       *uuid.UUID `gorm:"type:uuid;index"`
	JobType       int        `gorm:"type:int;not null"`
	Status        int        `gorm:"type:int;not null;index:idx_jobs_status_scheduled"`
	Volume        int        `gorm:"type:int;not null"`
	Price         float64    `gorm:"type:numeric;not null"`
	Pickup        AddressDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Dropoff       AddressDTO `gorm:"embedded;embeddedPrefix:dropoff_"`
	ScheduledTime time.Time  `gorm:"not null;index:idx_jobs_status_scheduled"`
	CreatedAt     time.Time  `gorm:"not null"`
	UpdatedAt     time.Time  `gorm:"not null"`
}

// TableName specifies the database table name for job entities.
// Overrides GORM's default naming convention to use "jobs".
func (JobDTO) TableName() string {
	return "jobs"
}

// AddressDTO represents an embedded address within the job table.
type AddressDTO struct {
	Line string            `gorm:"type:varchar(255);not null"`
	X    kernel.Coordinate `gorm:"type:smallint"`
	Y    kernel.Coordinate `gorm:"type:smallint"`
}

// fromDomain converts a job domain aggregate to its database representation.
func fromDomain(j *job.Job) JobDTO {
	var moverID *uuid.UUID
	if id := j.Mover(); id != nil {
		raw := id.Bytes()
		moverID = &raw
	}

	return JobDTO{
		ID:            j.ID().Bytes(),
		OrderID:       j.OrderID().Bytes(),
		StudentID:     j.StudentID().Bytes(),
		MoverID:       moverID,
		JobType:       int(j.JobType()),
		Status:        int(j.Status()),
		Volume:        j.Volume(),
		Price:         j.Price(),
		Pickup:        addressFromDomain(j.PickupAddress()),
		Dropoff:       addressFromDomain(j.DropoffAddress()),
		ScheduledTime: j.ScheduledTime(),
		CreatedAt:     j.CreatedAt(),
		UpdatedAt:     j.UpdatedAt(),
	}
}

func addressFromDomain(addr kernel.Address) AddressDTO {
	return AddressDTO{
		Line: addr.Line(),
		X:    addr.Location().X(),
		Y:    addr.Location().Y(),
	}
}

// toDomain converts a database DTO to a job domain aggregate using
// RestoreJob, re-validating the stored state on the way in.
func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	studentID, err := kernel.UUIDFromBytes(dto.StudentID[:])
	if err != nil {
		return nil, err
	}

	var moverID *kernel.UUID
	if dto.MoverID != nil {
		mID, moverErr := kernel.UUIDFromBytes((*dto.MoverID)[:])
		if moverErr != nil {
			return nil, moverErr
		}
		moverID = &mID
	}

	pickup, err := addressToDomain(dto.Pickup)
	if err != nil {
		return nil, err
	}

	dropoff, err := addressToDomain(dto.Dropoff)
	if err != nil {
		return nil, err
	}

	return job.RestoreJob(
		id, orderID, studentID, moverID,
		job.Type(dto.JobType), job.Status(dto.Status),
		dto.Volume, dto.Price,
		pickup, dropoff,
		dto.ScheduledTime, dto.CreatedAt, dto.UpdatedAt,
	)
}

func addressToDomain(dto AddressDTO) (kernel.Address, error) {
	loc, err := kernel.NewLocation(dto.X, dto.Y)
	if err != nil {
		return kernel.Address{}, err
	}
	return kernel.NewAddress(dto.Line, loc)
}
