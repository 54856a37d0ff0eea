package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestBuildCategoryTree(t *testing.T) {
	flat := []Category{
		{ID: 1, Name: "Drinks", ViewOrder: 2},
		{ID: 2, Name: "Food", ViewOrder: 1},
		{ID: 3, Name: "Hot", ParentID: int64Ptr(1), ViewOrder: 2},
		{ID: 4, Name: "Cold", ParentID: int64Ptr(1), ViewOrder: 1},
		{ID: 5, Name: "Starters", ParentID: int64Ptr(2), ViewOrder: 1},
	}

	roots := BuildCategoryTree(flat)
	require.Len(t, roots, 2)

	// roots are ordered by view_order, not input order
	assert.Equal(t, "Food", roots[0].Name)
	assert.Equal(t, "Drinks", roots[1].Name)

	require.Len(t, roots[1].Children, 2)
	assert.Equal(t, "Cold", roots[1].Children[0].Name)
	assert.Equal(t, "Hot", roots[1].Children[1].Name)

	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, "Starters", roots[0].Children[0].Name)
}

func TestBuildCategoryTreePreservesAllNodes(t *testing.T) {
	flat := []Category{
		{ID: 1, ViewOrder: 1},
		{ID: 2, ParentID: int64Ptr(1), ViewOrder: 1},
		{ID: 3, ParentID: int64Ptr(2), ViewOrder: 1},
		{ID: 4, ParentID: int64Ptr(1), ViewOrder: 2},
		{ID: 5, ViewOrder: 2},
	}

	roots := BuildCategoryTree(flat)

	seen := make(map[int64]int)
	var walk func(nodes []*CategoryNode)
	walk = func(nodes []*CategoryNode) {
		for _, n := range nodes {
			seen[n.ID]++
			walk(n.Children)
		}
	}
	walk(roots)

	assert.Len(t, seen, len(flat), "every input category appears in the tree")
	for id, count := range seen {
		assert.Equalf(t, 1, count, "category %d appears exactly once", id)
	}
}

func TestBuildCategoryTreeChildrenNeverNil(t *testing.T) {
	roots := BuildCategoryTree([]Category{{ID: 1}})
	require.Len(t, roots, 1)
	assert.NotNil(t, roots[0].Children, "leaf children must encode as [] not null")
	assert.Empty(t, roots[0].Children)
}

func TestBuildCategoryTreeDropsDanglingParent(t *testing.T) {
	flat := []Category{
		{ID: 1, ViewOrder: 1},
		{ID: 2, ParentID: int64Ptr(99), ViewOrder: 1},
	}

	roots := BuildCategoryTree(flat)
	require.Len(t, roots, 1)
	assert.Equal(t, int64(1), roots[0].ID)
}

func TestBuildCategoryTreeEmptyInput(t *testing.T) {
	assert.Empty(t, BuildCategoryTree(nil))
	assert.Empty(t, BuildCategoryTree([]Category{}))
}

func TestValidateCategoryParentsOK(t *testing.T) {
	flat := []Category{
		{ID: 1},
		{ID: 2, ParentID: int64Ptr(1)},
		{ID: 3, ParentID: int64Ptr(2)},
	}
	assert.NoError(t, ValidateCategoryParents(flat))
}

func TestValidateCategoryParentsDangling(t *testing.T) {
	flat := []Category{
		{ID: 1},
		{ID: 2, ParentID: int64Ptr(42)},
	}
	err := ValidateCategoryParents(flat)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing parent 42")
}

func TestValidateCategoryParentsCycle(t *testing.T) {
	flat := []Category{
		{ID: 1, ParentID: int64Ptr(2)},
		{ID: 2, ParentID: int64Ptr(1)},
		{ID: 3},
	}
	err := ValidateCategoryParents(flat)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parent cycle")
}

func TestValidateCategoryParentsSelfReference(t *testing.T) {
	flat := []Category{
		{ID: 7, ParentID: int64Ptr(7)},
	}
	err := ValidateCategoryParents(flat)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "category 7 is part of a parent cycle")
}
