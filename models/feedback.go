package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderFeedback is unique per (order_id, user_id); the store enforces it.
type OrderFeedback struct {
	ID        uuid.UUID `db:"id" json:"id"`
	OrderID   uuid.UUID `db:"order_id" json:"order_id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Rating    int       `db:"rating" json:"rating"`
	Comment   *string   `db:"comment" json:"comment"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Reward struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	Points      int       `db:"points" json:"points"`
	LastUpdated time.Time `db:"last_updated" json:"last_updated"`
}
