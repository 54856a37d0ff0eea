package dbhelper

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/ray-remotestate/backoffice/database"
	"github.com/ray-remotestate/backoffice/models"
)

type InvoicePage struct {
	Invoices []models.Invoice `json:"invoices"`
	Count    int              `json:"count"`
}

// ListInvoices pages through invoices, optionally matched by invoice number
// or customer name. Count covers the whole match, not just the page.
func ListInvoices(db *database.DB, search string, limit, offset int) (InvoicePage, error) {
	page := InvoicePage{Invoices: []models.Invoice{}}

	query := `
		SELECT id, invoice_number, customer_name, total_amount, status, created_at, updated_at,
		       COUNT(*) OVER() AS total
		FROM invoices`
	args := []interface{}{}
	if search != "" {
		args = append(args, "%"+search+"%")
		query += ` WHERE invoice_number ILIKE $1 OR customer_name ILIKE $1`
	}
	query += ` ORDER BY created_at DESC`
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if offset > 0 {
		args = append(args, offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return page, err
	}
	defer rows.Close()

	for rows.Next() {
		var inv models.Invoice
		if err := rows.Scan(&inv.ID, &inv.InvoiceNumber, &inv.CustomerName,
			&inv.TotalAmount, &inv.Status, &inv.CreatedAt, &inv.UpdatedAt, &page.Count); err != nil {
			return page, err
		}
		page.Invoices = append(page.Invoices, inv)
	}
	return page, rows.Err()
}

func GetInvoiceWithItems(db *database.DB, id uuid.UUID) (models.InvoiceWithItems, error) {
	var out models.InvoiceWithItems
	err := db.QueryRow(`
		SELECT id, invoice_number, customer_name, total_amount, status, created_at, updated_at
		FROM invoices
		WHERE id = $1`, id).
		Scan(&out.Invoice.ID, &out.Invoice.InvoiceNumber, &out.Invoice.CustomerName,
			&out.Invoice.TotalAmount, &out.Invoice.Status, &out.Invoice.CreatedAt, &out.Invoice.UpdatedAt)
	if err != nil {
		return out, err
	}

	rows, err := db.Query(`
		SELECT id, invoice_id, menu_item_id, quantity, unit_price, discount_amount, subtotal, notes
		FROM invoice_items
		WHERE invoice_id = $1`, id)
	if err != nil {
		return out, err
	}
	defer rows.Close()

	out.Items = []models.InvoiceItem{}
	for rows.Next() {
		var item models.InvoiceItem
		if err := rows.Scan(&item.ID, &item.InvoiceID, &item.MenuItemID, &item.Quantity,
			&item.UnitPrice, &item.DiscountAmount, &item.Subtotal, &item.Notes); err != nil {
			return out, err
		}
		out.Items = append(out.Items, item)
	}
	return out, rows.Err()
}

// CreateInvoice writes the invoice and its items in one transaction; a
// header without lines is never left behind.
func CreateInvoice(db *database.DB, inv models.Invoice, items []models.InvoiceItem) (uuid.UUID, error) {
	var id uuid.UUID
	txErr := db.Tx(func(tx *sql.Tx) error {
		if err := tx.QueryRow(`
			INSERT INTO invoices (invoice_number, customer_name, total_amount, status)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			inv.InvoiceNumber, inv.CustomerName, inv.TotalAmount, inv.Status).Scan(&id); err != nil {
			return err
		}
		for _, item := range items {
			if _, err := tx.Exec(`
				INSERT INTO invoice_items (invoice_id, menu_item_id, quantity, unit_price, discount_amount, subtotal, notes)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				id, item.MenuItemID, item.Quantity, item.UnitPrice,
				item.DiscountAmount, item.Subtotal, item.Notes); err != nil {
				return err
			}
		}
		return nil
	})
	return id, txErr
}

func UpdateInvoice(db *database.DB, inv models.Invoice) error {
	res, err := db.Exec(`
		UPDATE invoices
		SET customer_name = $2, total_amount = $3, status = $4, updated_at = now()
		WHERE id = $1`,
		inv.ID, inv.CustomerName, inv.TotalAmount, inv.Status)
	if err != nil {
		return err
	}
	return requireRow(res)
}

type PaymentFilter struct {
	Status *models.PaymentState
	Method *models.PaymentMethod
	Limit  int
	Offset int
}

func ListPayments(db *database.DB, filter PaymentFilter) ([]models.Payment, error) {
	query := `
		SELECT id, invoice_id, order_id, amount, method, status, created_at
		FROM payments`
	args := []interface{}{}

	clause := " WHERE"
	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf("%s status = $%d", clause, len(args))
		clause = " AND"
	}
	if filter.Method != nil {
		args = append(args, *filter.Method)
		query += fmt.Sprintf("%s method = $%d", clause, len(args))
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

	var payments []models.Payment
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.InvoiceID, &p.OrderID, &p.Amount,
			&p.Method, &p.Status, &p.CreatedAt); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func GetPaymentByID(db *database.DB, id uuid.UUID) (models.Payment, error) {
	var p models.Payment
	err := db.QueryRow(`
		SELECT id, invoice_id, order_id, amount, method, status, created_at
		FROM payments
		WHERE id = $1`, id).
		Scan(&p.ID, &p.InvoiceID, &p.OrderID, &p.Amount, &p.Method, &p.Status, &p.CreatedAt)
	return p, err
}

func CreatePayment(db *database.DB, p models.Payment) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(`
		INSERT INTO payments (invoice_id, order_id, amount, method, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		p.InvoiceID, p.OrderID, p.Amount, p.Method, p.Status).Scan(&id)
	return id, err
}
