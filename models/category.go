package models

import (
	"fmt"
	"sort"
	"time"

	"github.com/hashicorp/go-multierror"
)

type Category struct {
	ID          int64      `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	Description *string    `db:"description" json:"description"`
	ImageURL    *string    `db:"image_url" json:"image_url"`
	ParentID    *int64     `db:"parent_id" json:"parent_id"`
	ViewOrder   int        `db:"view_order" json:"view_order"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// CategoryNode is a category plus its immediate descendants, used for the
// drill-down navigation tree.
type CategoryNode struct {
	Category
	Children []*CategoryNode `json:"children"`
}

// BuildCategoryTree converts a flat category list into an ordered forest.
// Nodes are owned by a single id lookup; the flat and tree views never
// diverge. Every level, roots included, is sorted by view_order ascending.
// A record whose parent_id does not resolve within the input is dropped from
// the result; run ValidateCategoryParents first if that should be reported.
func BuildCategoryTree(flat []Category) []*CategoryNode {
	nodes := make(map[int64]*CategoryNode, len(flat))
	for _, c := range flat {
		nodes[c.ID] = &CategoryNode{Category: c, Children: []*CategoryNode{}}
	}

	roots := make([]*CategoryNode, 0)
	for _, c := range flat {
		node := nodes[c.ID]
		if c.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*c.ParentID]
		if !ok {
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	sortByViewOrder(roots)
	for _, node := range nodes {
		sortByViewOrder(node.Children)
	}
	return roots
}

func sortByViewOrder(nodes []*CategoryNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].ViewOrder < nodes[j].ViewOrder
	})
}

// ValidateCategoryParents reports every dangling parent reference and every
// parent cycle in the flat list. It returns nil when the list forms a proper
// forest. Callers use it as a diagnostic pass; BuildCategoryTree tolerates
// bad input on its own.
func ValidateCategoryParents(flat []Category) error {
	byID := make(map[int64]Category, len(flat))
	for _, c := range flat {
		byID[c.ID] = c
	}

	var result *multierror.Error

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[int64]int, len(flat))

	for _, c := range flat {
		if c.ParentID != nil {
			if _, ok := byID[*c.ParentID]; !ok {
				result = multierror.Append(result,
					fmt.Errorf("category %d references missing parent %d", c.ID, *c.ParentID))
			}
		}

		if state[c.ID] != unvisited {
			continue
		}
		// Walk the ancestor chain; revisiting a node from the current walk
		// means the chain loops back on itself.
		var path []int64
		cur := c
		for {
			if state[cur.ID] == done {
				break
			}
			if state[cur.ID] == visiting {
				result = multierror.Append(result,
					fmt.Errorf("category %d is part of a parent cycle", cur.ID))
				break
			}
			state[cur.ID] = visiting
			path = append(path, cur.ID)

			if cur.ParentID == nil {
				break
			}
			next, ok := byID[*cur.ParentID]
			if !ok {
				break
			}
			cur = next
		}
		for _, id := range path {
			state[id] = done
		}
	}

	return result.ErrorOrNil()
}
