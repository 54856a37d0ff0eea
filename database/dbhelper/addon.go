package dbhelper

import (
	"github.com/google/uuid"
	"github.com/ray-remotestate/backoffice/database"
	"github.com/ray-remotestate/backoffice/models"
)

func ListAddons(db *database.DB) ([]models.Addon, error) {
	rows, err := db.Query(`
		SELECT id, name, description, price, is_available, created_at
		FROM addons
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var addons []models.Addon
	for rows.Next() {
		var a models.Addon
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Price, &a.IsAvailable, &a.CreatedAt); err != nil {
			return nil, err
		}
		addons = append(addons, a)
	}
	return addons, rows.Err()
}

func GetAddonByID(db *database.DB, id uuid.UUID) (models.Addon, error) {
	var a models.Addon
	err := db.QueryRow(`
		SELECT id, name, description, price, is_available, created_at
		FROM addons
		WHERE id = $1`, id).
		Scan(&a.ID, &a.Name, &a.Description, &a.Price, &a.IsAvailable, &a.CreatedAt)
	return a, err
}

func CreateAddon(db *database.DB, a models.Addon) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(`
		INSERT INTO addons (name, description, price, is_available)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		a.Name, a.Description, a.Price, a.IsAvailable).Scan(&id)
	return id, err
}

func UpdateAddon(db *database.DB, a models.Addon) error {
	res, err := db.Exec(`
		UPDATE addons
		SET name = $2, description = $3, price = $4, is_available = $5
		WHERE id = $1`,
		a.ID, a.Name, a.Description, a.Price, a.IsAvailable)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func DeleteAddon(db *database.DB, id uuid.UUID) error {
	res, err := db.Exec(`DELETE FROM addons WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// ListMenuItemAddons returns the addon links for a menu item, each carrying
// the addon row it points at.
func ListMenuItemAddons(db *database.DB, menuItemID int64) ([]models.MenuItemAddon, error) {
	rows, err := db.Query(`
		SELECT mia.id, mia.menu_item_id, mia.addon_id, mia.is_default, mia.is_required, mia.max_quantity,
		       a.id, a.name, a.description, a.price, a.is_available, a.created_at
		FROM menu_item_addons mia
		JOIN addons a ON a.id = mia.addon_id
		WHERE mia.menu_item_id = $1
		ORDER BY a.name`, menuItemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []models.MenuItemAddon
	for rows.Next() {
		var l models.MenuItemAddon
		var a models.Addon
		if err := rows.Scan(&l.ID, &l.MenuItemID, &l.AddonID, &l.IsDefault, &l.IsRequired, &l.MaxQuantity,
			&a.ID, &a.Name, &a.Description, &a.Price, &a.IsAvailable, &a.CreatedAt); err != nil {
			return nil, err
		}
		l.Addon = &a
		links = append(links, l)
	}
	return links, rows.Err()
}

// LinkAddon creates the join row. max_quantity is floored to 1 before the
// write. The store's uniqueness constraint rejects a duplicate pairing.
func LinkAddon(db *database.DB, link models.MenuItemAddon) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(`
		INSERT INTO menu_item_addons (menu_item_id, addon_id, is_default, is_required, max_quantity)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		link.MenuItemID, link.AddonID, link.IsDefault, link.IsRequired,
		models.NormalizeMaxQuantity(link.MaxQuantity)).Scan(&id)
	return id, err
}

func UpdateMenuItemAddon(db *database.DB, linkID uuid.UUID, isDefault, isRequired bool, maxQuantity int) error {
	res, err := db.Exec(`
		UPDATE menu_item_addons
		SET is_default = $2, is_required = $3, max_quantity = $4
		WHERE id = $1`,
		linkID, isDefault, isRequired, models.NormalizeMaxQuantity(maxQuantity))
	if err != nil {
		return err
	}
	return requireRow(res)
}

// UnlinkAddon removes the join row for the pairing. Removing a pairing that
// does not exist is not an error; zero rows affected counts as done.
func UnlinkAddon(db *database.DB, menuItemID int64, addonID uuid.UUID) error {
	_, err := db.Exec(`
		DELETE FROM menu_item_addons
		WHERE menu_item_id = $1 AND addon_id = $2`, menuItemID, addonID)
	return err
}
