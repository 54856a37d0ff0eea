package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/ray-remotestate/backoffice/database/dbhelper"
	"github.com/ray-remotestate/backoffice/models"
)

func (h *Handler) ListAddons(w http.ResponseWriter, r *http.Request) {
	addons, err := dbhelper.ListAddons(h.DB)
	if err != nil {
		storeError(w, err, "failed to list addons")
		return
	}
	if addons == nil {
		addons = []models.Addon{}
	}
	respondJSON(w, http.StatusOK, addons)
}

func (h *Handler) GetAddon(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	addon, err := dbhelper.GetAddonByID(h.DB, id)
	if err != nil {
		storeError(w, err, "failed to fetch addon")
		return
	}
	respondJSON(w, http.StatusOK, addon)
}

func (h *Handler) CreateAddon(w http.ResponseWriter, r *http.Request) {
	var req models.Addon
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	id, err := dbhelper.CreateAddon(h.DB, req)
	if err != nil {
		storeError(w, err, "failed to create addon")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]uuid.UUID{"id": id})
}

func (h *Handler) UpdateAddon(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req models.Addon
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	req.ID = id

	if err := dbhelper.UpdateAddon(h.DB, req); err != nil {
		storeError(w, err, "failed to update addon")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "addon updated"})
}

func (h *Handler) DeleteAddon(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := dbhelper.DeleteAddon(h.DB, id); err != nil {
		storeError(w, err, "failed to delete addon")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "addon deleted"})
}

func (h *Handler) ListMenuItemAddons(w http.ResponseWriter, r *http.Request) {
	menuID, ok := pathID(w, r)
	if !ok {
		return
	}
	links, err := dbhelper.ListMenuItemAddons(h.DB, menuID)
	if err != nil {
		storeError(w, err, "failed to list menu item addons")
		return
	}
	if links == nil {
		links = []models.MenuItemAddon{}
	}
	respondJSON(w, http.StatusOK, links)
}

// AvailableMenuItemAddons feeds the "add addon" picker: the full addon list
// minus whatever the menu item already has.
func (h *Handler) AvailableMenuItemAddons(w http.ResponseWriter, r *http.Request) {
	menuID, ok := pathID(w, r)
	if !ok {
		return
	}

	addons, err := dbhelper.ListAddons(h.DB)
	if err != nil {
		storeError(w, err, "failed to list addons")
		return
	}
	linked, err := dbhelper.ListMenuItemAddons(h.DB, menuID)
	if err != nil {
		storeError(w, err, "failed to list menu item addons")
		return
	}
	respondJSON(w, http.StatusOK, models.AvailableAddons(addons, linked))
}

func (h *Handler) LinkMenuItemAddon(w http.ResponseWriter, r *http.Request) {
	menuID, ok := pathID(w, r)
	if !ok {
		return
	}

	type request struct {
		AddonID     uuid.UUID `json:"addon_id"`
		IsDefault   bool      `json:"is_default"`
		IsRequired  bool      `json:"is_required"`
		MaxQuantity int       `json:"max_quantity"`
	}
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.AddonID == uuid.Nil {
		respondError(w, http.StatusBadRequest, "addon_id is required")
		return
	}

	id, err := dbhelper.LinkAddon(h.DB, models.MenuItemAddon{
		MenuItemID:  menuID,
		AddonID:     req.AddonID,
		IsDefault:   req.IsDefault,
		IsRequired:  req.IsRequired,
		MaxQuantity: req.MaxQuantity,
	})
	if err != nil {
		storeError(w, err, "failed to link addon")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]uuid.UUID{"id": id})
}

func (h *Handler) UpdateMenuItemAddon(w http.ResponseWriter, r *http.Request) {
	linkID, ok := pathUUID(w, r, "addonLinkID")
	if !ok {
		return
	}

	type request struct {
		IsDefault   bool `json:"is_default"`
		IsRequired  bool `json:"is_required"`
		MaxQuantity int  `json:"max_quantity"`
	}
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := dbhelper.UpdateMenuItemAddon(h.DB, linkID, req.IsDefault, req.IsRequired, req.MaxQuantity); err != nil {
		storeError(w, err, "failed to update addon link")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "addon link updated"})
}

// UnlinkMenuItemAddon removes the pairing. Unlinking an addon that is not
// linked succeeds; there is nothing to undo.
func (h *Handler) UnlinkMenuItemAddon(w http.ResponseWriter, r *http.Request) {
	menuID, ok := pathID(w, r)
	if !ok {
		return
	}
	addonID, ok := pathUUID(w, r, "addonID")
	if !ok {
		return
	}

	if err := dbhelper.UnlinkAddon(h.DB, menuID, addonID); err != nil {
		storeError(w, err, "failed to unlink addon")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "addon unlinked"})
}
