package dbhelper

import (
	"github.com/google/uuid"
	"github.com/ray-remotestate/backoffice/database"
	"github.com/ray-remotestate/backoffice/models"
)

func ListOrderFeedback(db *database.DB) ([]models.OrderFeedback, error) {
	rows, err := db.Query(`
		SELECT id, order_id, user_id, rating, comment, created_at
		FROM order_feedback
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feedback []models.OrderFeedback
	for rows.Next() {
		var f models.OrderFeedback
		if err := rows.Scan(&f.ID, &f.OrderID, &f.UserID, &f.Rating, &f.Comment, &f.CreatedAt); err != nil {
			return nil, err
		}
		feedback = append(feedback, f)
	}
	return feedback, rows.Err()
}

func GetOrderFeedbackByID(db *database.DB, id uuid.UUID) (models.OrderFeedback, error) {
	var f models.OrderFeedback
	err := db.QueryRow(`
		SELECT id, order_id, user_id, rating, comment, created_at
		FROM order_feedback
		WHERE id = $1`, id).
		Scan(&f.ID, &f.OrderID, &f.UserID, &f.Rating, &f.Comment, &f.CreatedAt)
	return f, err
}

// CreateOrderFeedback inserts a feedback row. A duplicate (order_id, user_id)
// pair comes back as the store's uniqueness violation; the handler maps it to
// a conflict.
func CreateOrderFeedback(db *database.DB, f models.OrderFeedback) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(`
		INSERT INTO order_feedback (order_id, user_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		f.OrderID, f.UserID, f.Rating, f.Comment).Scan(&id)
	return id, err
}

func DeleteOrderFeedback(db *database.DB, id uuid.UUID) error {
	res, err := db.Exec(`DELETE FROM order_feedback WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func ListRewards(db *database.DB) ([]models.Reward, error) {
	rows, err := db.Query(`
		SELECT id, user_id, points, last_updated
		FROM rewards
		ORDER BY last_updated DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rewards []models.Reward
	for rows.Next() {
		var r models.Reward
		if err := rows.Scan(&r.ID, &r.UserID, &r.Points, &r.LastUpdated); err != nil {
			return nil, err
		}
		rewards = append(rewards, r)
	}
	return rewards, rows.Err()
}

func GetRewardByUser(db *database.DB, userID uuid.UUID) (models.Reward, error) {
	var r models.Reward
	err := db.QueryRow(`
		SELECT id, user_id, points, last_updated
		FROM rewards
		WHERE user_id = $1`, userID).
		Scan(&r.ID, &r.UserID, &r.Points, &r.LastUpdated)
	return r, err
}

// AdjustRewardPoints applies a signed delta and returns the new balance.
// The balance never goes below zero.
func AdjustRewardPoints(db *database.DB, id uuid.UUID, delta int) (models.Reward, error) {
	var r models.Reward
	err := db.QueryRow(`
		UPDATE rewards
		SET points = GREATEST(points + $2, 0), last_updated = now()
		WHERE id = $1
		RETURNING id, user_id, points, last_updated`, id, delta).
		Scan(&r.ID, &r.UserID, &r.Points, &r.LastUpdated)
	return r, err
}
