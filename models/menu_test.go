package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMaxQuantity(t *testing.T) {
	assert.Equal(t, 1, NormalizeMaxQuantity(0))
	assert.Equal(t, 1, NormalizeMaxQuantity(-3))
	assert.Equal(t, 1, NormalizeMaxQuantity(1))
	assert.Equal(t, 5, NormalizeMaxQuantity(5))
}

func TestAvailableAddons(t *testing.T) {
	a := Addon{ID: uuid.New(), Name: "Extra Cheese"}
	b := Addon{ID: uuid.New(), Name: "Bacon"}
	c := Addon{ID: uuid.New(), Name: "Olives"}

	linked := []MenuItemAddon{
		{ID: uuid.New(), AddonID: b.ID},
	}

	available := AvailableAddons([]Addon{a, b, c}, linked)
	require.Len(t, available, 2)
	assert.Equal(t, a.ID, available[0].ID)
	assert.Equal(t, c.ID, available[1].ID)
}

func TestAvailableAddonsAllLinked(t *testing.T) {
	a := Addon{ID: uuid.New()}
	linked := []MenuItemAddon{{AddonID: a.ID}}

	available := AvailableAddons([]Addon{a}, linked)
	assert.NotNil(t, available, "must encode as [] not null")
	assert.Empty(t, available)
}

func TestAvailableAddonsNoneLinked(t *testing.T) {
	all := []Addon{{ID: uuid.New()}, {ID: uuid.New()}}

	available := AvailableAddons(all, nil)
	assert.Len(t, available, len(all))
}

func TestAvailableOptionGroups(t *testing.T) {
	g1 := OptionGroup{ID: uuid.New(), Name: "Size"}
	g2 := OptionGroup{ID: uuid.New(), Name: "Spice Level"}

	linked := []MenuItemOptionGroup{
		{ID: uuid.New(), OptionGroupID: g1.ID},
	}

	available := AvailableOptionGroups([]OptionGroup{g1, g2}, linked)
	require.Len(t, available, 1)
	assert.Equal(t, g2.ID, available[0].ID)
}

func TestAvailableOptionGroupsEmptyCatalog(t *testing.T) {
	available := AvailableOptionGroups(nil, nil)
	assert.NotNil(t, available)
	assert.Empty(t, available)
}
