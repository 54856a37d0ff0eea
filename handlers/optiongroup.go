package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/ray-remotestate/backoffice/database/dbhelper"
	"github.com/ray-remotestate/backoffice/models"
)

func (h *Handler) ListOptionGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := dbhelper.ListOptionGroups(h.DB)
	if err != nil {
		storeError(w, err, "failed to list option groups")
		return
	}
	if groups == nil {
		groups = []models.OptionGroup{}
	}
	respondJSON(w, http.StatusOK, groups)
}

func (h *Handler) GetOptionGroup(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	group, err := dbhelper.GetOptionGroupByID(h.DB, id)
	if err != nil {
		storeError(w, err, "failed to fetch option group")
		return
	}
	respondJSON(w, http.StatusOK, group)
}

func (h *Handler) CreateOptionGroup(w http.ResponseWriter, r *http.Request) {
	var req models.OptionGroup
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	id, err := dbhelper.CreateOptionGroup(h.DB, req)
	if err != nil {
		storeError(w, err, "failed to create option group")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]uuid.UUID{"id": id})
}

func (h *Handler) UpdateOptionGroup(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req models.OptionGroup
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	req.ID = id

	if err := dbhelper.UpdateOptionGroup(h.DB, req); err != nil {
		storeError(w, err, "failed to update option group")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "option group updated"})
}

// DeleteOptionGroup clears the group's join rows and then the group itself.
// The steps are sequential and not atomic; a failure is reported for the
// step that hit it and completed steps stay applied.
func (h *Handler) DeleteOptionGroup(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := dbhelper.DeleteOptionGroupCascade(h.DB, id); err != nil {
		storeError(w, err, "failed to delete option group")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "option group deleted"})
}

func (h *Handler) ListOptionGroupOptions(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	ids, err := dbhelper.ListOptionGroupOptionIDs(h.DB, id)
	if err != nil {
		storeError(w, err, "failed to list option group options")
		return
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	respondJSON(w, http.StatusOK, map[string][]uuid.UUID{"option_ids": ids})
}

func (h *Handler) SetOptionGroupOptions(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	type request struct {
		OptionIDs []uuid.UUID `json:"option_ids"`
	}
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := dbhelper.SetOptionGroupOptions(h.DB, id, req.OptionIDs); err != nil {
		storeError(w, err, "failed to set option group options")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "option group options updated"})
}

func (h *Handler) ListMenuItemOptionGroups(w http.ResponseWriter, r *http.Request) {
	menuID, ok := pathID(w, r)
	if !ok {
		return
	}
	links, err := dbhelper.ListMenuItemOptionGroups(h.DB, menuID)
	if err != nil {
		storeError(w, err, "failed to list menu item option groups")
		return
	}
	if links == nil {
		links = []models.MenuItemOptionGroup{}
	}
	respondJSON(w, http.StatusOK, links)
}

func (h *Handler) AvailableMenuItemOptionGroups(w http.ResponseWriter, r *http.Request) {
	menuID, ok := pathID(w, r)
	if !ok {
		return
	}

	groups, err := dbhelper.ListOptionGroups(h.DB)
	if err != nil {
		storeError(w, err, "failed to list option groups")
		return
	}
	linked, err := dbhelper.ListMenuItemOptionGroups(h.DB, menuID)
	if err != nil {
		storeError(w, err, "failed to list menu item option groups")
		return
	}
	respondJSON(w, http.StatusOK, models.AvailableOptionGroups(groups, linked))
}

func (h *Handler) LinkMenuItemOptionGroup(w http.ResponseWriter, r *http.Request) {
	menuID, ok := pathID(w, r)
	if !ok {
		return
	}

	type request struct {
		OptionGroupID uuid.UUID `json:"option_group_id"`
	}
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.OptionGroupID == uuid.Nil {
		respondError(w, http.StatusBadRequest, "option_group_id is required")
		return
	}

	id, err := dbhelper.LinkOptionGroup(h.DB, menuID, req.OptionGroupID)
	if err != nil {
		storeError(w, err, "failed to link option group")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]uuid.UUID{"id": id})
}

func (h *Handler) UnlinkMenuItemOptionGroup(w http.ResponseWriter, r *http.Request) {
	menuID, ok := pathID(w, r)
	if !ok {
		return
	}
	groupID, ok := pathUUID(w, r, "groupID")
	if !ok {
		return
	}

	if err := dbhelper.UnlinkOptionGroup(h.DB, menuID, groupID); err != nil {
		storeError(w, err, "failed to unlink option group")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "option group unlinked"})
}
