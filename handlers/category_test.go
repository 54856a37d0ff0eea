package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ray-remotestate/backoffice/models"
)

var categoryColumns = []string{
	"id", "name", "description", "image_url", "parent_id", "view_order", "created_at", "updated_at",
}

func TestCategoryTree(t *testing.T) {
	h, mock := newTestHandler(t)

	now := time.Now()
	mock.ExpectQuery(`SELECT id, name, description, image_url, parent_id, view_order, created_at, updated_at\s+FROM categories`).
		WillReturnRows(sqlmock.NewRows(categoryColumns).
			AddRow(1, "Drinks", nil, nil, nil, 2, now, nil).
			AddRow(2, "Food", nil, nil, nil, 1, now, nil).
			AddRow(3, "Cold", nil, nil, 1, 1, now, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/categories/tree", nil)
	rec := httptest.NewRecorder()

	h.CategoryTree(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var tree []models.CategoryNode
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tree))
	require.Len(t, tree, 2)
	assert.Equal(t, "Food", tree[0].Name)
	assert.Equal(t, "Drinks", tree[1].Name)
	require.Len(t, tree[1].Children, 1)
	assert.Equal(t, "Cold", tree[1].Children[0].Name)

	// leaves serialize children as [], never null
	assert.Contains(t, rec.Body.String(), `"children":[]`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCategoryRejectsSelfParent(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPut, "/api/categories/5",
		strings.NewReader(`{"name":"Drinks","parent_id":5}`))
	req = mux.SetURLVars(req, map[string]string{"id": "5"})
	rec := httptest.NewRecorder()

	h.UpdateCategory(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "cannot be its own parent")
}

func TestDeleteCategoryWithDependents(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectQuery(`SELECT`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"children", "menu_items"}).AddRow(2, 0))

	req := httptest.NewRequest(http.MethodDelete, "/api/categories/5", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "5"})
	rec := httptest.NewRecorder()

	h.DeleteCategory(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "still has child categories or menu items")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCategoryWithoutDependents(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectQuery(`SELECT`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"children", "menu_items"}).AddRow(0, 0))
	mock.ExpectExec(`DELETE FROM categories`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := httptest.NewRequest(http.MethodDelete, "/api/categories/5", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "5"})
	rec := httptest.NewRecorder()

	h.DeleteCategory(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCategoryInvalidID(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/categories/abc", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "abc"})
	rec := httptest.NewRecorder()

	h.GetCategory(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
