package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/ray-remotestate/backoffice/database/dbhelper"
	"github.com/ray-remotestate/backoffice/models"
)

func (h *Handler) ListMenuOptions(w http.ResponseWriter, r *http.Request) {
	options, err := dbhelper.ListMenuOptions(h.DB)
	if err != nil {
		storeError(w, err, "failed to list menu options")
		return
	}
	if options == nil {
		options = []models.MenuOption{}
	}
	respondJSON(w, http.StatusOK, options)
}

func (h *Handler) GetMenuOption(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	option, err := dbhelper.GetMenuOptionByID(h.DB, id)
	if err != nil {
		storeError(w, err, "failed to fetch menu option")
		return
	}
	respondJSON(w, http.StatusOK, option)
}

func (h *Handler) CreateMenuOption(w http.ResponseWriter, r *http.Request) {
	var req models.MenuOption
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	id, err := dbhelper.CreateMenuOption(h.DB, req)
	if err != nil {
		storeError(w, err, "failed to create menu option")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]uuid.UUID{"id": id})
}

func (h *Handler) UpdateMenuOption(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req models.MenuOption
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	req.ID = id

	if err := dbhelper.UpdateMenuOption(h.DB, req); err != nil {
		storeError(w, err, "failed to update menu option")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "menu option updated"})
}

func (h *Handler) DeleteMenuOption(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := dbhelper.DeleteMenuOption(h.DB, id); err != nil {
		storeError(w, err, "failed to delete menu option")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "menu option deleted"})
}
