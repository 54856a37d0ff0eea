package dbhelper

import (
	"github.com/ray-remotestate/backoffice/database"
	"github.com/ray-remotestate/backoffice/models"
)

func ListCategories(db *database.DB) ([]models.Category, error) {
	rows, err := db.Query(`
		SELECT id, name, description, image_url, parent_id, view_order, created_at, updated_at
		FROM categories
		ORDER BY view_order`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.ImageURL,
			&c.ParentID, &c.ViewOrder, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func GetCategoryByID(db *database.DB, id int64) (models.Category, error) {
	var c models.Category
	err := db.QueryRow(`
		SELECT id, name, description, image_url, parent_id, view_order, created_at, updated_at
		FROM categories
		WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Description, &c.ImageURL,
			&c.ParentID, &c.ViewOrder, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func CreateCategory(db *database.DB, c models.Category) (int64, error) {
	var id int64
	err := db.QueryRow(`
		INSERT INTO categories (name, description, image_url, parent_id, view_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		c.Name, c.Description, c.ImageURL, c.ParentID, c.ViewOrder).Scan(&id)
	return id, err
}

func UpdateCategory(db *database.DB, c models.Category) error {
	res, err := db.Exec(`
		UPDATE categories
		SET name = $2, description = $3, image_url = $4, parent_id = $5, view_order = $6, updated_at = now()
		WHERE id = $1`,
		c.ID, c.Name, c.Description, c.ImageURL, c.ParentID, c.ViewOrder)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// CountCategoryDependents reports how many child categories and menu items
// still reference the category. Deletion is refused while either is nonzero.
func CountCategoryDependents(db *database.DB, id int64) (children int, menuItems int, err error) {
	err = db.QueryRow(`
		SELECT
			(SELECT COUNT(*) FROM categories WHERE parent_id = $1),
			(SELECT COUNT(*) FROM menus WHERE category_id = $1)`, id).
		Scan(&children, &menuItems)
	return children, menuItems, err
}

func DeleteCategory(db *database.DB, id int64) error {
	res, err := db.Exec(`DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
