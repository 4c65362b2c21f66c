// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order domain aggregate, handling the conversion between domain entities
// and database representations.
package orderrepo

import (
	"time"

	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The idempotency key is stored as a nullable unique column so
// requests without a key never collide with each other.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	// The partial unique index enforces at most one active order per
	// student; 5 and 6 are the Completed and Cancelled status values.
	StudentID        uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_orders_student_active,where:status NOT IN (5, 6)"`
	Status           int        `gorm:"type:int;not null;index"`
	Volume           int        `gorm:"type:int;not null"`
	TotalPrice       float64    `gorm:"type:numeric;not null"`
	Student          AddressDTO `gorm:"embedded;embeddedPrefix:student_"`
	Warehouse        AddressDTO `gorm:"embedded;embeddedPrefix:warehouse_"`
	ReturnLine       *string    `gorm:"type:varchar(255)"`
	ReturnX          *int16     `gorm:"type:smallint"`
	ReturnY          *int16     `gorm:"type:smallint"`
	PickupTime       time.Time  `gorm:"not null"`
	ReturnTime       time.Time  `gorm:"not null"`
	ActualReturnTime *time.Time
	IdempotencyKey   *string   `gorm:"type:varchar(255);uniqueIndex"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents an embedded address within the order table.
type AddressDTO struct {
	Line string            `gorm:"type:varchar(255);not null"`
	X    kernel.Coordinate `gorm:"type:smallint"`
	Y    kernel.Coordinate `gorm:"type:smallint"`
}

// fromDomain converts an order domain aggregate to its database
// representation.
func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:         o.ID().Bytes(),
		StudentID:  o.StudentID().Bytes(),
		Status:     int(o.Status()),
		Volume:     o.Volume(),
		TotalPrice: o.TotalPrice(),
		Student:    addressFromDomain(o.StudentAddress()),
		Warehouse:  addressFromDomain(o.WarehouseAddress()),
		PickupTime: o.PickupTime(),
		ReturnTime: o.ReturnTime(),
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
	}

	if addr := o.ReturnAddress(); addr != nil {
		line := addr.Line()
		x := int16(addr.Location().X())
		y := int16(addr.Location().Y())
		dto.ReturnLine = &line
		dto.ReturnX = &x
		dto.ReturnY = &y
	}

	if t := o.ActualReturnTime(); t != nil {
		actual := *t
		dto.ActualReturnTime = &actual
	}

	if key := o.IdempotencyKey(); key != "" {
		dto.IdempotencyKey = &key
	}

	return dto
}

func addressFromDomain(addr kernel.Address) AddressDTO {
	return AddressDTO{
		Line: addr.Line(),
		X:    addr.Location().X(),
		Y:    addr.Location().Y(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	studentID, err := kernel.UUIDFromBytes(dto.StudentID[:])
	if err != nil {
		return nil, err
	}

	student, err := addressToDomain(dto.Student)
	if err != nil {
		return nil, err
	}

	warehouse, err := addressToDomain(dto.Warehouse)
	if err != nil {
		return nil, err
	}

	var returnAddress *kernel.Address
	if dto.ReturnLine != nil && dto.ReturnX != nil && dto.ReturnY != nil {
		addr, addrErr := addressToDomain(AddressDTO{
			Line: *dto.ReturnLine,
			X:    kernel.Coordinate(*dto.ReturnX),
			Y:    kernel.Coordinate(*dto.ReturnY),
		})
		if addrErr != nil {
			return nil, addrErr
		}
		returnAddress = &addr
	}

	idempotencyKey := ""
	if dto.IdempotencyKey != nil {
		idempotencyKey = *dto.IdempotencyKey
	}

	return order.RestoreOrder(
		id, studentID, order.Status(dto.Status),
		dto.Volume, dto.TotalPrice,
		student, warehouse, returnAddress,
		dto.PickupTime, dto.ReturnTime, dto.ActualReturnTime,
		idempotencyKey,
		dto.CreatedAt, dto.UpdatedAt,
	)
}

func addressToDomain(dto AddressDTO) (kernel.Address, error) {
	loc, err := kernel.NewLocation(dto.X, dto.Y)
	if err != nil {
		return kernel.Address{}, err
	}
	return kernel.NewAddress(dto.Line, loc)
}
