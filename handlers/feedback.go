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

func (h *Handler) ListOrderFeedback(w http.ResponseWriter, r *http.Request) {
	feedback, err := dbhelper.ListOrderFeedback(h.DB)
	if err != nil {
		storeError(w, err, "failed to list order feedback")
		return
	}
	if feedback == nil {
		feedback = []models.OrderFeedback{}
	}
	respondJSON(w, http.StatusOK, feedback)
}

func (h *Handler) GetOrderFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	feedback, err := dbhelper.GetOrderFeedbackByID(h.DB, id)
	if err != nil {
		storeError(w, err, "failed to fetch order feedback")
		return
	}
	respondJSON(w, http.StatusOK, feedback)
}

// CreateOrderFeedback validates the payload before touching the store; a
// duplicate (order, user) pair surfaces as a conflict.
func (h *Handler) CreateOrderFeedback(w http.ResponseWriter, r *http.Request) {
	var req models.OrderFeedback
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var invalid *multierror.Error
	if req.OrderID == uuid.Nil {
		invalid = multierror.Append(invalid, errors.New("order_id is required"))
	}
	if req.UserID == uuid.Nil {
		invalid = multierror.Append(invalid, errors.New("user_id is required"))
	}
	if req.Rating < 1 || req.Rating > 5 {
		invalid = multierror.Append(invalid, errors.New("rating must be between 1 and 5"))
	}
	if err := invalid.ErrorOrNil(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := dbhelper.CreateOrderFeedback(h.DB, req)
	if err != nil {
		storeError(w, err, "failed to create order feedback")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]uuid.UUID{"id": id})
}

func (h *Handler) DeleteOrderFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := dbhelper.DeleteOrderFeedback(h.DB, id); err != nil {
		storeError(w, err, "failed to delete order feedback")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "order feedback deleted"})
}

func (h *Handler) ListRewards(w http.ResponseWriter, r *http.Request) {
	rewards, err := dbhelper.ListRewards(h.DB)
	if err != nil {
		storeError(w, err, "failed to list rewards")
		return
	}
	if rewards == nil {
		rewards = []models.Reward{}
	}
	respondJSON(w, http.StatusOK, rewards)
}

func (h *Handler) GetRewardByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userID")
	if !ok {
		return
	}
	reward, err := dbhelper.GetRewardByUser(h.DB, userID)
	if err != nil {
		storeError(w, err, "failed to fetch reward")
		return
	}
	respondJSON(w, http.StatusOK, reward)
}

// AdjustReward applies a signed points delta to a reward balance.
func (h *Handler) AdjustReward(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	type request struct {
		Delta int `json:"delta"`
	}
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Delta == 0 {
		respondError(w, http.StatusBadRequest, "delta must be nonzero")
		return
	}

	reward, err := dbhelper.AdjustRewardPoints(h.DB, id, req.Delta)
	if err != nil {
		storeError(w, err, "failed to adjust reward points")
		return
	}
	respondJSON(w, http.StatusOK, reward)
}
