package models

import (
	"time"

	"github.com/google/uuid"
)

type MenuItem struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description"`
	ImageURL    *string   `db:"image_url" json:"image_url"`
	Price       float64   `db:"price" json:"price"`
	CategoryID  *int64    `db:"category_id" json:"category_id"`
	// IsPopular is kept as a nullable integer on purpose: the column holds
	// null, 0 or 1 and all three values are observable by consumers.
	IsPopular *int      `db:"is_popular" json:"is_popular"`
	ViewOrder int       `db:"view_order" json:"view_order"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Addon struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description"`
	Price       float64   `db:"price" json:"price"`
	IsAvailable bool      `db:"is_available" json:"is_available"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// MenuItemAddon links a menu item to an addon and carries the selection
// attributes for that pairing. Unique per (menu_item_id, addon_id).
type MenuItemAddon struct {
	ID          uuid.UUID `db:"id" json:"id"`
	MenuItemID  int64     `db:"menu_item_id" json:"menu_item_id"`
	AddonID     uuid.UUID `db:"addon_id" json:"addon_id"`
	IsDefault   bool      `db:"is_default" json:"is_default"`
	IsRequired  bool      `db:"is_required" json:"is_required"`
	MaxQuantity int       `db:"max_quantity" json:"max_quantity"`
	Addon       *Addon    `db:"-" json:"addon,omitempty"`
}

type OptionGroup struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type MenuOption struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Description     *string   `db:"description" json:"description"`
	PriceAdjustment float64   `db:"price_adjustment" json:"price_adjustment"`
	IsActive        bool      `db:"is_active" json:"is_active"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type MenuItemOptionGroup struct {
	ID            uuid.UUID    `db:"id" json:"id"`
	MenuItemID    int64        `db:"menu_item_id" json:"menu_item_id"`
	OptionGroupID uuid.UUID    `db:"option_group_id" json:"option_group_id"`
	OptionGroup   *OptionGroup `db:"-" json:"option_group,omitempty"`
}

// MinAddonQuantity is the floor applied to max_quantity on every save.
const MinAddonQuantity = 1

func NormalizeMaxQuantity(q int) int {
	if q < MinAddonQuantity {
		return MinAddonQuantity
	}
	return q
}

// AvailableAddons returns the addons not yet linked to a menu item, so an
// already linked addon cannot be offered for linking twice.
func AvailableAddons(all []Addon, linked []MenuItemAddon) []Addon {
	taken := make(map[uuid.UUID]struct{}, len(linked))
	for _, l := range linked {
		taken[l.AddonID] = struct{}{}
	}

	available := make([]Addon, 0, len(all))
	for _, a := range all {
		if _, ok := taken[a.ID]; !ok {
			available = append(available, a)
		}
	}
	return available
}

// AvailableOptionGroups is the option-group counterpart of AvailableAddons.
func AvailableOptionGroups(all []OptionGroup, linked []MenuItemOptionGroup) []OptionGroup {
	taken := make(map[uuid.UUID]struct{}, len(linked))
	for _, l := range linked {
		taken[l.OptionGroupID] = struct{}{}
	}

	available := make([]OptionGroup, 0, len(all))
	for _, g := range all {
		if _, ok := taken[g.ID]; !ok {
			available = append(available, g)
		}
	}
	return available
}
