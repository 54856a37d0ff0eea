package dbhelper

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/ray-remotestate/backoffice/database"
	"github.com/ray-remotestate/backoffice/models"
)

type OrderFilter struct {
	Status        *models.OrderStatus
	PaymentStatus *models.PaymentStatus
	Limit         int
	Offset        int
}

const orderColumns = `id, order_items, total_amount, delivery_address, phone_number,
	delivery_method, delivery_amount, status, payment_status, payment_method,
	order_note, user_id, created_at, updated_at`

func ListOrders(db *database.DB, filter OrderFilter) ([]models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	args := []interface{}{}

	clause := " WHERE"
	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf("%s status = $%d", clause, len(args))
		clause = " AND"
	}
	if filter.PaymentStatus != nil {
		args = append(args, *filter.PaymentStatus)
		query += fmt.Sprintf("%s payment_status = $%d", clause, len(args))
	}

	query += ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		o, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func GetOrderByID(db *database.DB, id uuid.UUID) (models.Order, error) {
	row := db.QueryRow(`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	return scanOrder(row.Scan)
}

func scanOrder(scan func(dest ...interface{}) error) (models.Order, error) {
	var o models.Order
	var items []byte
	if err := scan(&o.ID, &items, &o.TotalAmount, &o.DeliveryAddress, &o.PhoneNumber,
		&o.DeliveryMethod, &o.DeliveryAmount, &o.Status, &o.PaymentStatus, &o.PaymentMethod,
		&o.OrderNote, &o.UserID, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return o, err
	}

	// order_items is a JSON document in the row; a malformed one degrades to
	// an empty line-item list rather than failing the whole read.
	if len(items) > 0 {
		if err := json.Unmarshal(items, &o.OrderItems); err != nil {
			o.OrderItems = []models.OrderItem{}
		}
	}
	if o.OrderItems == nil {
		o.OrderItems = []models.OrderItem{}
	}
	return o, nil
}

func UpdateOrderStatus(db *database.DB, id uuid.UUID, status models.OrderStatus) error {
	res, err := db.Exec(`
		UPDATE orders
		SET status = $2, updated_at = now()
		WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func UpdateOrderPaymentStatus(db *database.DB, id uuid.UUID, status models.PaymentStatus) error {
	res, err := db.Exec(`
		UPDATE orders
		SET payment_status = $2, updated_at = now()
		WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	return requireRow(res)
}
