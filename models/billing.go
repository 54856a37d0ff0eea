package models

import (
	"time"

	"github.com/google/uuid"
)

type Invoice struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	InvoiceNumber string     `db:"invoice_number" json:"invoice_number"`
	CustomerName  *string    `db:"customer_name" json:"customer_name"`
	TotalAmount   float64    `db:"total_amount" json:"total_amount"`
	Status        string     `db:"status" json:"status"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

type InvoiceItem struct {
	ID             uuid.UUID `db:"id" json:"id"`
	InvoiceID      uuid.UUID `db:"invoice_id" json:"invoice_id"`
	MenuItemID     *int64    `db:"menu_item_id" json:"menu_item_id"`
	Quantity       int       `db:"quantity" json:"quantity"`
	UnitPrice      float64   `db:"unit_price" json:"unit_price"`
	DiscountAmount float64   `db:"discount_amount" json:"discount_amount"`
	Subtotal       float64   `db:"subtotal" json:"subtotal"`
	Notes          *string   `db:"notes" json:"notes"`
}

type InvoiceWithItems struct {
	Invoice Invoice       `json:"invoice"`
	Items   []InvoiceItem `json:"items"`
}

type PaymentMethod string

const (
	PayCash          PaymentMethod = "cash"
	PayCreditCard    PaymentMethod = "credit_card"
	PayDebitCard     PaymentMethod = "debit_card"
	PayMobilePayment PaymentMethod = "mobile_payment"
	PayGiftCard      PaymentMethod = "gift_card"
	PayOther         PaymentMethod = "other"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PayCash, PayCreditCard, PayDebitCard, PayMobilePayment, PayGiftCard, PayOther:
		return true
	}
	return false
}

type PaymentState string

const (
	PaymentStatePending           PaymentState = "pending"
	PaymentStateCompleted         PaymentState = "completed"
	PaymentStateFailed            PaymentState = "failed"
	PaymentStateRefunded          PaymentState = "refunded"
	PaymentStatePartiallyRefunded PaymentState = "partially_refunded"
)

func (s PaymentState) IsValid() bool {
	switch s {
	case PaymentStatePending, PaymentStateCompleted, PaymentStateFailed,
		PaymentStateRefunded, PaymentStatePartiallyRefunded:
		return true
	}
	return false
}

type Payment struct {
	ID        uuid.UUID     `db:"id" json:"id"`
	InvoiceID *uuid.UUID    `db:"invoice_id" json:"invoice_id"`
	OrderID   *uuid.UUID    `db:"order_id" json:"order_id"`
	Amount    float64       `db:"amount" json:"amount"`
	Method    PaymentMethod `db:"method" json:"method"`
	Status    PaymentState  `db:"status" json:"status"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
}
