package models

import (
	"time"

	"github.com/google/uuid"
)

type Driver struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	Name          string     `db:"name" json:"name"`
	Phone         string     `db:"phone" json:"phone"`
	Email         string     `db:"email" json:"email"`
	IsActive      bool       `db:"is_active" json:"is_active"`
	VehicleType   string     `db:"vehicle_type" json:"vehicle_type"`
	LicenseNumber string     `db:"license_number" json:"license_number"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

type DeliveryStatus string

const (
	DeliveryPending    DeliveryStatus = "pending"
	DeliveryInProgress DeliveryStatus = "in_progress"
	DeliveryDelivered  DeliveryStatus = "delivered"
	DeliveryFailed     DeliveryStatus = "failed"
)

func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliveryPending, DeliveryInProgress, DeliveryDelivered, DeliveryFailed:
		return true
	}
	return false
}

type Delivery struct {
	ID        uuid.UUID      `db:"id" json:"id"`
	OrderID   uuid.UUID      `db:"order_id" json:"order_id"`
	DriverID  *uuid.UUID     `db:"driver_id" json:"driver_id"`
	Status    DeliveryStatus `db:"status" json:"status"`
	Address   *string        `db:"address" json:"address"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time     `db:"updated_at" json:"updated_at,omitempty"`
}
