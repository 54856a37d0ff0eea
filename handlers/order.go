package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ray-remotestate/backoffice/database/dbhelper"
	"github.com/ray-remotestate/backoffice/models"
)

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	var filter dbhelper.OrderFilter

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := models.OrderStatus(raw)
		if !status.IsValid() {
			respondError(w, http.StatusBadRequest, "invalid status")
			return
		}
		filter.Status = &status
	}
	if raw := r.URL.Query().Get("payment_status"); raw != "" {
		status := models.PaymentStatus(raw)
		if !status.IsValid() {
			respondError(w, http.StatusBadRequest, "invalid payment_status")
			return
		}
		filter.PaymentStatus = &status
	}
	filter.Limit = queryInt(r, "limit")
	filter.Offset = queryInt(r, "offset")

	orders, err := dbhelper.ListOrders(h.DB, filter)
	if err != nil {
		storeError(w, err, "failed to list orders")
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	respondJSON(w, http.StatusOK, orders)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	order, err := dbhelper.GetOrderByID(h.DB, id)
	if err != nil {
		storeError(w, err, "failed to fetch order")
		return
	}
	respondJSON(w, http.StatusOK, order)
}

// UpdateOrderStatus applies one explicit admin-triggered transition.
func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	type request struct {
		Status models.OrderStatus `json:"status"`
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

	if err := dbhelper.UpdateOrderStatus(h.DB, id, req.Status); err != nil {
		storeError(w, err, "failed to update order status")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "order status updated"})
}

func (h *Handler) UpdateOrderPaymentStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	type request struct {
		PaymentStatus models.PaymentStatus `json:"payment_status"`
	}
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !req.PaymentStatus.IsValid() {
		respondError(w, http.StatusBadRequest, "invalid payment_status")
		return
	}

	if err := dbhelper.UpdateOrderPaymentStatus(h.DB, id, req.PaymentStatus); err != nil {
		storeError(w, err, "failed to update payment status")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "payment status updated"})
}

// queryInt reads a non-negative integer query parameter; absent or malformed
// values read as zero.
func queryInt(r *http.Request, name string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
