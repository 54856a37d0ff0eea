package dbhelper

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/ray-remotestate/backoffice/database"
	"github.com/ray-remotestate/backoffice/models"
)

func ListOptionGroups(db *database.DB) ([]models.OptionGroup, error) {
	rows, err := db.Query(`
		SELECT id, name, description, is_active, created_at
		FROM menu_option_groups
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []models.OptionGroup
	for rows.Next() {
		var g models.OptionGroup
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.IsActive, &g.CreatedAt); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func GetOptionGroupByID(db *database.DB, id uuid.UUID) (models.OptionGroup, error) {
	var g models.OptionGroup
	err := db.QueryRow(`
		SELECT id, name, description, is_active, created_at
		FROM menu_option_groups
		WHERE id = $1`, id).
		Scan(&g.ID, &g.Name, &g.Description, &g.IsActive, &g.CreatedAt)
	return g, err
}

func CreateOptionGroup(db *database.DB, g models.OptionGroup) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(`
		INSERT INTO menu_option_groups (name, description, is_active)
		VALUES ($1, $2, $3)
		RETURNING id`,
		g.Name, g.Description, g.IsActive).Scan(&id)
	return id, err
}

func UpdateOptionGroup(db *database.DB, g models.OptionGroup) error {
	res, err := db.Exec(`
		UPDATE menu_option_groups
		SET name = $2, description = $3, is_active = $4
		WHERE id = $1`,
		g.ID, g.Name, g.Description, g.IsActive)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// DeleteOptionGroupCascade removes an option group and its join rows. The
// store has no cascade constraint for these relations, so the join tables are
// cleared first and the parent row last. The three statements are not wrapped
// in a transaction: a failure partway through leaves the earlier deletes
// applied, and the caller gets the error of the step that failed.
func DeleteOptionGroupCascade(db *database.DB, id uuid.UUID) error {
	if _, err := db.Exec(`
		DELETE FROM menu_option_group_options
		WHERE option_group_id = $1`, id); err != nil {
		return fmt.Errorf("removing option memberships: %w", err)
	}

	if _, err := db.Exec(`
		DELETE FROM menu_item_option_groups
		WHERE option_group_id = $1`, id); err != nil {
		return fmt.Errorf("removing menu item links: %w", err)
	}

	res, err := db.Exec(`DELETE FROM menu_option_groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("removing option group: %w", err)
	}
	return requireRow(res)
}

func ListOptionGroupOptionIDs(db *database.DB, groupID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := db.Query(`
		SELECT option_id FROM menu_option_group_options
		WHERE option_group_id = $1`, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// SetOptionGroupOptions replaces the membership set of a group. Both
// statements target the same relation, so they commit together.
func SetOptionGroupOptions(db *database.DB, groupID uuid.UUID, optionIDs []uuid.UUID) error {
	return db.Tx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`
			DELETE FROM menu_option_group_options
			WHERE option_group_id = $1`, groupID); err != nil {
			return err
		}
		for _, optionID := range optionIDs {
			if _, err := tx.Exec(`
				INSERT INTO menu_option_group_options (option_group_id, option_id)
				VALUES ($1, $2)`, groupID, optionID); err != nil {
				return err
			}
		}
		return nil
	})
}

// ListMenuItemOptionGroups returns the option-group links for a menu item,
// each carrying the group row it points at.
func ListMenuItemOptionGroups(db *database.DB, menuItemID int64) ([]models.MenuItemOptionGroup, error) {
	rows, err := db.Query(`
		SELECT miog.id, miog.menu_item_id, miog.option_group_id,
		       g.id, g.name, g.description, g.is_active, g.created_at
		FROM menu_item_option_groups miog
		JOIN menu_option_groups g ON g.id = miog.option_group_id
		WHERE miog.menu_item_id = $1
		ORDER BY g.name`, menuItemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []models.MenuItemOptionGroup
	for rows.Next() {
		var l models.MenuItemOptionGroup
		var g models.OptionGroup
		if err := rows.Scan(&l.ID, &l.MenuItemID, &l.OptionGroupID,
			&g.ID, &g.Name, &g.Description, &g.IsActive, &g.CreatedAt); err != nil {
			return nil, err
		}
		l.OptionGroup = &g
		links = append(links, l)
	}
	return links, rows.Err()
}

func LinkOptionGroup(db *database.DB, menuItemID int64, groupID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(`
		INSERT INTO menu_item_option_groups (menu_item_id, option_group_id)
		VALUES ($1, $2)
		RETURNING id`, menuItemID, groupID).Scan(&id)
	return id, err
}

// UnlinkOptionGroup removes the pairing; absent pairings are a no-op.
func UnlinkOptionGroup(db *database.DB, menuItemID int64, groupID uuid.UUID) error {
	_, err := db.Exec(`
		DELETE FROM menu_item_option_groups
		WHERE menu_item_id = $1 AND option_group_id = $2`, menuItemID, groupID)
	return err
}
