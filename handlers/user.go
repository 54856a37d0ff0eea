package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/backoffice/config"
	"github.com/ray-remotestate/backoffice/database/dbhelper"
	"github.com/ray-remotestate/backoffice/middlewares"
	"github.com/ray-remotestate/backoffice/models"
	"github.com/ray-remotestate/backoffice/utils"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	userID, name, err := dbhelper.GetUserByPassword(h.DB, req.Email, req.Password)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	roles, err := dbhelper.GetUserRoles(h.DB, userID)
	if err != nil {
		storeError(w, err, "failed to fetch roles")
		return
	}
	if len(roles) == 0 {
		respondError(w, http.StatusForbidden, "no roles assigned")
		return
	}

	accessToken, refreshToken, err := utils.GenerateTokens(userID, roles)
	if err != nil {
		logrus.WithError(err).Error("failed to generate tokens")
		respondError(w, http.StatusInternalServerError, "failed to generate tokens")
		return
	}

	setRefreshCookie(w, refreshToken, time.Now().Add(7*24*time.Hour))
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"user_id":      userID,
		"name":         name,
		"email":        req.Email,
		"roles":        roles,
		"access_token": accessToken,
	})
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil {
		respondError(w, http.StatusUnauthorized, "refresh token missing")
		return
	}

	claims := &middlewares.Claims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
		return config.SecretKey, nil
	})
	if err != nil || !token.Valid {
		respondError(w, http.StatusUnauthorized, "invalid or expired refresh token")
		return
	}

	accessToken, refreshToken, err := utils.GenerateTokens(claims.UserID, claims.Roles)
	if err != nil {
		logrus.WithError(err).Error("failed to generate tokens")
		respondError(w, http.StatusInternalServerError, "failed to generate tokens")
		return
	}

	setRefreshCookie(w, refreshToken, time.Now().Add(7*24*time.Hour))
	respondJSON(w, http.StatusOK, map[string]string{"access_token": accessToken})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	setRefreshCookie(w, "", time.Unix(0, 0))
	respondJSON(w, http.StatusOK, map[string]string{"message": "successfully logged out"})
}

// CreateSubAdmin registers a back-office operator. An existing account just
// gets the subadmin role; a new one is created with its role in a single
// transaction.
func (h *Handler) CreateSubAdmin(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" {
		respondError(w, http.StatusBadRequest, "name and email are required")
		return
	}

	userID, err := dbhelper.GetUserByEmail(h.DB, req.Email)
	if err != nil && err != sql.ErrNoRows {
		storeError(w, err, "failed to look up user")
		return
	}

	if err == sql.ErrNoRows {
		if len(req.Password) < 6 {
			respondError(w, http.StatusBadRequest, "password must be at least 6 characters")
			return
		}
		hashedPassword, hashErr := utils.HashPassword(req.Password)
		if hashErr != nil {
			logrus.WithError(hashErr).Error("failed to hash password")
			respondError(w, http.StatusInternalServerError, "failed to create operator")
			return
		}

		txErr := h.DB.Tx(func(tx *sql.Tx) error {
			var txe error
			userID, txe = dbhelper.CreateUser(tx, req.Name, req.Email, hashedPassword)
			if txe != nil {
				return txe
			}
			return dbhelper.AssignRole(tx, userID, models.RoleSubAdmin)
		})
		if txErr != nil {
			storeError(w, txErr, "failed to create operator")
			return
		}
		respondJSON(w, http.StatusCreated, map[string]interface{}{"user_id": userID})
		return
	}

	isSubAdmin, err := dbhelper.IsSubAdmin(h.DB, userID)
	if err != nil {
		storeError(w, err, "failed to check roles")
		return
	}
	if isSubAdmin {
		respondError(w, http.StatusConflict, "user is already a subadmin")
		return
	}

	if err := dbhelper.MakeSubAdmin(h.DB, userID); err != nil {
		storeError(w, err, "failed to assign subadmin role")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"user_id": userID})
}

func (h *Handler) ListSubAdmins(w http.ResponseWriter, r *http.Request) {
	users, err := dbhelper.ListSubAdmins(h.DB)
	if err != nil {
		storeError(w, err, "failed to list subadmins")
		return
	}
	if users == nil {
		users = []models.User{}
	}
	respondJSON(w, http.StatusOK, users)
}

func setRefreshCookie(w http.ResponseWriter, value string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    value,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		Expires:  expires,
	})
}
