package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/ray-remotestate/backoffice/database/dbhelper"
	"github.com/ray-remotestate/backoffice/models"
)

func (h *Handler) ListMenuItems(w http.ResponseWriter, r *http.Request) {
	var categoryID *int64
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid category_id")
			return
		}
		categoryID = &id
	}

	items, err := dbhelper.ListMenuItems(h.DB, categoryID)
	if err != nil {
		storeError(w, err, "failed to list menu items")
		return
	}
	if items == nil {
		items = []models.MenuItem{}
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *Handler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	item, err := dbhelper.GetMenuItemByID(h.DB, id)
	if err != nil {
		storeError(w, err, "failed to fetch menu item")
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (h *Handler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var req models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	id, err := dbhelper.CreateMenuItem(h.DB, req)
	if err != nil {
		storeError(w, err, "failed to create menu item")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (h *Handler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	req.ID = id

	if err := dbhelper.UpdateMenuItem(h.DB, req); err != nil {
		storeError(w, err, "failed to update menu item")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "menu item updated"})
}

func (h *Handler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := dbhelper.DeleteMenuItem(h.DB, id); err != nil {
		storeError(w, err, "failed to delete menu item")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "menu item deleted"})
}

// pathUUID parses a UUID path variable by name.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
