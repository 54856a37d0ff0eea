package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/backoffice/database"
)

// Handler carries the entity-store connection into every route. The store
// handle is injected here once instead of living in a package global.
type Handler struct {
	DB *database.DB
}

func New(db *database.DB) *Handler {
	return &Handler{DB: db}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// storeError maps entity-store failures onto the HTTP surface: missing rows
// become 404, uniqueness violations 409, everything else 500. The underlying
// error is logged, not returned to the client.
func storeError(w http.ResponseWriter, err error, message string) {
	if errors.Is(err, sql.ErrNoRows) {
		respondError(w, http.StatusNotFound, message+": not found")
		return
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		respondError(w, http.StatusConflict, message+": already exists")
		return
	}
	logrus.WithError(err).Error(message)
	respondError(w, http.StatusInternalServerError, message)
}
