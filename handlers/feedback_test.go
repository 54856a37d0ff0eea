package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ray-remotestate/backoffice/database"
)

func newTestHandler(t *testing.T) (*Handler, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return New(&database.DB{DB: mockDB}), mock
}

func TestCreateOrderFeedbackValidation(t *testing.T) {
	h, _ := newTestHandler(t)

	cases := []struct {
		name string
		body string
		want string
	}{
		{"malformed body", `{not json`, "invalid request body"},
		{"missing order", `{"user_id":"` + uuid.NewString() + `","rating":4}`, "order_id is required"},
		{"missing user", `{"order_id":"` + uuid.NewString() + `","rating":4}`, "user_id is required"},
		{"rating too low", `{"order_id":"` + uuid.NewString() + `","user_id":"` + uuid.NewString() + `","rating":0}`, "rating must be between 1 and 5"},
		{"rating too high", `{"order_id":"` + uuid.NewString() + `","user_id":"` + uuid.NewString() + `","rating":6}`, "rating must be between 1 and 5"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/order-feedback", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			h.CreateOrderFeedback(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.want)
		})
	}
}

func TestCreateOrderFeedbackSuccess(t *testing.T) {
	h, mock := newTestHandler(t)

	orderID, userID, feedbackID := uuid.New(), uuid.New(), uuid.New()
	mock.ExpectQuery(`INSERT INTO order_feedback`).
		WithArgs(orderID, userID, 5, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(feedbackID))

	body := `{"order_id":"` + orderID.String() + `","user_id":"` + userID.String() + `","rating":5}`
	req := httptest.NewRequest(http.MethodPost, "/api/order-feedback", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.CreateOrderFeedback(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), feedbackID.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrderFeedbackDuplicateConflict(t *testing.T) {
	h, mock := newTestHandler(t)

	orderID, userID := uuid.New(), uuid.New()
	mock.ExpectQuery(`INSERT INTO order_feedback`).
		WithArgs(orderID, userID, 3, nil).
		WillReturnError(&pq.Error{Code: "23505"})

	body := `{"order_id":"` + orderID.String() + `","user_id":"` + userID.String() + `","rating":3}`
	req := httptest.NewRequest(http.MethodPost, "/api/order-feedback", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.CreateOrderFeedback(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "already exists")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdjustRewardRejectsZeroDelta(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/rewards/"+uuid.NewString()+"/adjust",
		strings.NewReader(`{"delta":0}`))
	req = mux.SetURLVars(req, map[string]string{"id": uuid.NewString()})
	rec := httptest.NewRecorder()

	h.AdjustReward(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "delta must be nonzero")
}
