package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderPlaced      OrderStatus = "ORDER_PLACED"
	OrderPreparing   OrderStatus = "PREPARING"
	OrderReady       OrderStatus = "READY_FOR_DELIVERY"
	OrderOutForDeliv OrderStatus = "OUT_FOR_DELIVERY"
	OrderDelivered   OrderStatus = "DELIVERED"
	OrderCancelled   OrderStatus = "CANCELLED"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPlaced, OrderPreparing, OrderReady, OrderOutForDeliv, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentFailed   PaymentStatus = "FAILED"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

type DeliveryMethod string

const (
	MethodPickup   DeliveryMethod = "PICKUP"
	MethodDelivery DeliveryMethod = "DELIVERY"
)

// OrderItem is one line of an order. Lines live inside the orders row as a
// JSON document, matching how the store persists them.
type OrderItem struct {
	ID       string                   `json:"id"`
	Name     string                   `json:"name"`
	Quantity int                      `json:"quantity"`
	Price    float64                  `json:"price"`
	Notes    string                   `json:"notes,omitempty"`
	Options  []map[string]interface{} `json:"options,omitempty"`
}

type Order struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	OrderItems      []OrderItem     `db:"order_items" json:"order_items"`
	TotalAmount     float64         `db:"total_amount" json:"total_amount"`
	DeliveryAddress *string         `db:"delivery_address" json:"delivery_address"`
	PhoneNumber     *string         `db:"phone_number" json:"phone_number"`
	DeliveryMethod  *DeliveryMethod `db:"delivery_method" json:"delivery_method"`
	DeliveryAmount  *float64        `db:"delivery_amount" json:"delivery_amount"`
	Status          OrderStatus     `db:"status" json:"status"`
	PaymentStatus   PaymentStatus   `db:"payment_status" json:"payment_status"`
	PaymentMethod   *string         `db:"payment_method" json:"payment_method"`
	OrderNote       *string         `db:"order_note" json:"order_note"`
	UserID          *uuid.UUID      `db:"user_id" json:"user_id"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt       *time.Time      `db:"updated_at" json:"updated_at,omitempty"`
}
