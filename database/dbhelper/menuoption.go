package dbhelper

import (
	"github.com/google/uuid"
	"github.com/ray-remotestate/backoffice/database"
	"github.com/ray-remotestate/backoffice/models"
)

func ListMenuOptions(db *database.DB) ([]models.MenuOption, error) {
	rows, err := db.Query(`
		SELECT id, name, description, price_adjustment, is_active, created_at
		FROM menu_options
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var options []models.MenuOption
	for rows.Next() {
		var o models.MenuOption
		if err := rows.Scan(&o.ID, &o.Name, &o.Description, &o.PriceAdjustment, &o.IsActive, &o.CreatedAt); err != nil {
			return nil, err
		}
		options = append(options, o)
	}
	return options, rows.Err()
}

func GetMenuOptionByID(db *database.DB, id uuid.UUID) (models.MenuOption, error) {
	var o models.MenuOption
	err := db.QueryRow(`
		SELECT id, name, description, price_adjustment, is_active, created_at
		FROM menu_options
		WHERE id = $1`, id).
		Scan(&o.ID, &o.Name, &o.Description, &o.PriceAdjustment, &o.IsActive, &o.CreatedAt)
	return o, err
}

func CreateMenuOption(db *database.DB, o models.MenuOption) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(`
		INSERT INTO menu_options (name, description, price_adjustment, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		o.Name, o.Description, o.PriceAdjustment, o.IsActive).Scan(&id)
	return id, err
}

func UpdateMenuOption(db *database.DB, o models.MenuOption) error {
	res, err := db.Exec(`
		UPDATE menu_options
		SET name = $2, description = $3, price_adjustment = $4, is_active = $5
		WHERE id = $1`,
		o.ID, o.Name, o.Description, o.PriceAdjustment, o.IsActive)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func DeleteMenuOption(db *database.DB, id uuid.UUID) error {
	res, err := db.Exec(`DELETE FROM menu_options WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
