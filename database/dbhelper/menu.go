package dbhelper

import (
	"github.com/ray-remotestate/backoffice/database"
	"github.com/ray-remotestate/backoffice/models"
)

func ListMenuItems(db *database.DB, categoryID *int64) ([]models.MenuItem, error) {
	query := `
		SELECT id, name, description, image_url, price, category_id, is_popular, view_order, created_at
		FROM menus`
	args := []interface{}{}
	if categoryID != nil {
		query += ` WHERE category_id = $1`
		args = append(args, *categoryID)
	}
	query += ` ORDER BY view_order`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var m models.MenuItem
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.ImageURL,
			&m.Price, &m.CategoryID, &m.IsPopular, &m.ViewOrder, &m.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func GetMenuItemByID(db *database.DB, id int64) (models.MenuItem, error) {
	var m models.MenuItem
	err := db.QueryRow(`
		SELECT id, name, description, image_url, price, category_id, is_popular, view_order, created_at
		FROM menus
		WHERE id = $1`, id).
		Scan(&m.ID, &m.Name, &m.Description, &m.ImageURL,
			&m.Price, &m.CategoryID, &m.IsPopular, &m.ViewOrder, &m.CreatedAt)
	return m, err
}

func CreateMenuItem(db *database.DB, m models.MenuItem) (int64, error) {
	var id int64
	err := db.QueryRow(`
		INSERT INTO menus (name, description, image_url, price, category_id, is_popular, view_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		m.Name, m.Description, m.ImageURL, m.Price, m.CategoryID, m.IsPopular, m.ViewOrder).Scan(&id)
	return id, err
}

func UpdateMenuItem(db *database.DB, m models.MenuItem) error {
	res, err := db.Exec(`
		UPDATE menus
		SET name = $2, description = $3, image_url = $4, price = $5, category_id = $6, is_popular = $7, view_order = $8
		WHERE id = $1`,
		m.ID, m.Name, m.Description, m.ImageURL, m.Price, m.CategoryID, m.IsPopular, m.ViewOrder)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func DeleteMenuItem(db *database.DB, id int64) error {
	res, err := db.Exec(`DELETE FROM menus WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
