package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/ray-remotestate/backoffice/database/dbhelper"
	"github.com/ray-remotestate/backoffice/models"
)

func (h *Handler) ListDrivers(w http.ResponseWriter, r *http.Request) {
	drivers, err := dbhelper.ListDrivers(h.DB)
	if err != nil {
		storeError(w, err, "failed to list drivers")
		return
	}
	if drivers == nil {
		drivers = []models.Driver{}
	}
	respondJSON(w, http.StatusOK, drivers)
}

func (h *Handler) GetDriver(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	driver, err := dbhelper.GetDriverByID(h.DB, id)
	if err != nil {
		storeError(w, err, "failed to fetch driver")
		return
	}
	respondJSON(w, http.StatusOK, driver)
}

func (h *Handler) CreateDriver(w http.ResponseWriter, r *http.Request) {
	var req models.Driver
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Phone == "" {
		respondError(w, http.StatusBadRequest, "name and phone are required")
		return
	}

	id, err := dbhelper.CreateDriver(h.DB, req)
	if err != nil {
		storeError(w, err, "failed to create driver")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]uuid.UUID{"id": id})
}

func (h *Handler) UpdateDriver(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req models.Driver
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Phone == "" {
		respondError(w, http.StatusBadRequest, "name and phone are required")
		return
	}
	req.ID = id

	if err := dbhelper.UpdateDriver(h.DB, req); err != nil {
		storeError(w, err, "failed to update driver")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "driver updated"})
}

func (h *Handler) SetDriverActive(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	type request struct {
		IsActive bool `json:"is_active"`
	}
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := dbhelper.SetDriverActive(h.DB, id, req.IsActive); err != nil {
		storeError(w, err, "failed to update driver status")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "driver status updated"})
}

func (h *Handler) DeleteDriver(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := dbhelper.DeleteDriver(h.DB, id); err != nil {
		storeError(w, err, "failed to delete driver")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "driver deleted"})
}

func (h *Handler) ListDeliveries(w http.ResponseWriter, r *http.Request) {
	var status *models.DeliveryStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := models.DeliveryStatus(raw)
		if !s.IsValid() {
			respondError(w, http.StatusBadRequest, "invalid status")
			return
		}
		status = &s
	}

	deliveries, err := dbhelper.ListDeliveries(h.DB, status)
	if err != nil {
		storeError(w, err, "failed to list deliveries")
		return
	}
	if deliveries == nil {
		deliveries = []models.Delivery{}
	}
	respondJSON(w, http.StatusOK, deliveries)
}

func (h *Handler) UpdateDeliveryStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	type request struct {
		Status models.DeliveryStatus `json:"status"`
	}
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !req.Status.IsValid() {
		respondError(w, http.StatusBadRequest, "invalid status")
		return
	}

	if err := dbhelper.UpdateDeliveryStatus(h.DB, id, req.Status); err != nil {
		storeError(w, err, "failed to update delivery status")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "delivery status updated"})
}

func (h *Handler) AssignDelivery(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	type request struct {
		DriverID uuid.UUID `json:"driver_id"`
	}
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.DriverID == uuid.Nil {
		respondError(w, http.StatusBadRequest, "driver_id is required")
		return
	}

	if err := dbhelper.AssignDriver(h.DB, id, req.DriverID); err != nil {
		storeError(w, err, "failed to assign driver")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "driver assigned"})
}
