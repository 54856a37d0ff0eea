package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/backoffice/database/dbhelper"
	"github.com/ray-remotestate/backoffice/models"
)

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := dbhelper.ListCategories(h.DB)
	if err != nil {
		storeError(w, err, "failed to list categories")
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	respondJSON(w, http.StatusOK, categories)
}

// CategoryTree serves the drill-down forest. Malformed parentage is logged
// as a warning; the tree is still served with the bad nodes dropped.
func (h *Handler) CategoryTree(w http.ResponseWriter, r *http.Request) {
	categories, err := dbhelper.ListCategories(h.DB)
	if err != nil {
		storeError(w, err, "failed to list categories")
		return
	}

	if err := models.ValidateCategoryParents(categories); err != nil {
		logrus.WithError(err).Warn("category parentage is inconsistent")
	}
	respondJSON(w, http.StatusOK, models.BuildCategoryTree(categories))
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.Category
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	id, err := dbhelper.CreateCategory(h.DB, req)
	if err != nil {
		storeError(w, err, "failed to create category")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	category, err := dbhelper.GetCategoryByID(h.DB, id)
	if err != nil {
		storeError(w, err, "failed to fetch category")
		return
	}
	respondJSON(w, http.StatusOK, category)
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req models.Category
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.ParentID != nil && *req.ParentID == id {
		respondError(w, http.StatusBadRequest, "category cannot be its own parent")
		return
	}
	req.ID = id

	if err := dbhelper.UpdateCategory(h.DB, req); err != nil {
		storeError(w, err, "failed to update category")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "category updated"})
}

// DeleteCategory refuses to remove a category that still has child
// categories or menu items; callers reassign or remove those first.
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	children, menuItems, err := dbhelper.CountCategoryDependents(h.DB, id)
	if err != nil {
		storeError(w, err, "failed to check category dependents")
		return
	}
	if children > 0 || menuItems > 0 {
		respondError(w, http.StatusConflict, "category still has child categories or menu items")
		return
	}

	if err := dbhelper.DeleteCategory(h.DB, id); err != nil {
		storeError(w, err, "failed to delete category")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "category deleted"})
}

// pathID parses the numeric {id} path variable used by categories and menus.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
