package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/ray-remotestate/backoffice/database/dbhelper"
	"github.com/ray-remotestate/backoffice/models"
)

func (h *Handler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit")
	if limit == 0 {
		limit = 10
	}

	page, err := dbhelper.ListInvoices(h.DB, r.URL.Query().Get("search"), limit, queryInt(r, "offset"))
	if err != nil {
		storeError(w, err, "failed to list invoices")
		return
	}
	respondJSON(w, http.StatusOK, page)
}

func (h *Handler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	invoice, err := dbhelper.GetInvoiceWithItems(h.DB, id)
	if err != nil {
		storeError(w, err, "failed to fetch invoice")
		return
	}
	respondJSON(w, http.StatusOK, invoice)
}

func (h *Handler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	type request struct {
		models.Invoice
		Items []models.InvoiceItem `json:"items"`
	}
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var invalid *multierror.Error
	if req.InvoiceNumber == "" {
		invalid = multierror.Append(invalid, errors.New("invoice_number is required"))
	}
	if req.TotalAmount < 0 {
		invalid = multierror.Append(invalid, errors.New("total_amount must not be negative"))
	}
	for _, item := range req.Items {
		if item.Quantity < 1 {
			invalid = multierror.Append(invalid, errors.New("item quantity must be at least 1"))
			break
		}
	}
	if err := invalid.ErrorOrNil(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Status == "" {
		req.Status = "open"
	}

	id, err := dbhelper.CreateInvoice(h.DB, req.Invoice, req.Items)
	if err != nil {
		storeError(w, err, "failed to create invoice")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]uuid.UUID{"id": id})
}

func (h *Handler) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req models.Invoice
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.ID = id

	if err := dbhelper.UpdateInvoice(h.DB, req); err != nil {
		storeError(w, err, "failed to update invoice")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "invoice updated"})
}

func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	var filter dbhelper.PaymentFilter

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := models.PaymentState(raw)
		if !status.IsValid() {
			respondError(w, http.StatusBadRequest, "invalid status")
			return
		}
		filter.Status = &status
	}
	if raw := r.URL.Query().Get("method"); raw != "" {
		method := models.PaymentMethod(raw)
		if !method.IsValid() {
			respondError(w, http.StatusBadRequest, "invalid method")
			return
		}
		filter.Method = &method
	}
	filter.Limit = queryInt(r, "limit")
	filter.Offset = queryInt(r, "offset")

	payments, err := dbhelper.ListPayments(h.DB, filter)
	if err != nil {
		storeError(w, err, "failed to list payments")
		return
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	respondJSON(w, http.StatusOK, payments)
}

func (h *Handler) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	payment, err := dbhelper.GetPaymentByID(h.DB, id)
	if err != nil {
		storeError(w, err, "failed to fetch payment")
		return
	}
	respondJSON(w, http.StatusOK, payment)
}

func (h *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req models.Payment
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var invalid *multierror.Error
	if req.Amount <= 0 {
		invalid = multierror.Append(invalid, errors.New("amount must be positive"))
	}
	if !req.Method.IsValid() {
		invalid = multierror.Append(invalid, errors.New("invalid payment method"))
	}
	if req.InvoiceID == nil && req.OrderID == nil {
		invalid = multierror.Append(invalid, errors.New("invoice_id or order_id is required"))
	}
	if err := invalid.ErrorOrNil(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Status == "" {
		req.Status = models.PaymentStatePending
	}

	id, err := dbhelper.CreatePayment(h.DB, req)
	if err != nil {
		storeError(w, err, "failed to create payment")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]uuid.UUID{"id": id})
}
