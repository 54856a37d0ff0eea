package dbhelper

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ray-remotestate/backoffice/database"
	"github.com/ray-remotestate/backoffice/models"
)

func newMockDB(t *testing.T) (*database.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return &database.DB{DB: mockDB}, mock
}

func TestDeleteOptionGroupCascadeOrder(t *testing.T) {
	db, mock := newMockDB(t)
	groupID := uuid.New()

	// join tables go first, parent row last
	mock.ExpectExec(`DELETE FROM menu_option_group_options`).
		WithArgs(groupID).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM menu_item_option_groups`).
		WithArgs(groupID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM menu_option_groups`).
		WithArgs(groupID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, DeleteOptionGroupCascade(db, groupID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteOptionGroupCascadeMissingGroup(t *testing.T) {
	db, mock := newMockDB(t)
	groupID := uuid.New()

	mock.ExpectExec(`DELETE FROM menu_option_group_options`).
		WithArgs(groupID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM menu_item_option_groups`).
		WithArgs(groupID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM menu_option_groups`).
		WithArgs(groupID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := DeleteOptionGroupCascade(db, groupID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteOptionGroupCascadeStopsOnFirstFailure(t *testing.T) {
	db, mock := newMockDB(t)
	groupID := uuid.New()
	boom := errors.New("connection reset")

	mock.ExpectExec(`DELETE FROM menu_option_group_options`).
		WithArgs(groupID).
		WillReturnError(boom)

	err := DeleteOptionGroupCascade(db, groupID)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnlinkOptionGroupIdempotent(t *testing.T) {
	db, mock := newMockDB(t)
	groupID := uuid.New()

	mock.ExpectExec(`DELETE FROM menu_item_option_groups`).
		WithArgs(int64(12), groupID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, UnlinkOptionGroup(db, 12, groupID),
		"unlinking an absent pairing is not an error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetOptionGroupOptionsReplacesInTx(t *testing.T) {
	db, mock := newMockDB(t)
	groupID := uuid.New()
	optA, optB := uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM menu_option_group_options`).
		WithArgs(groupID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO menu_option_group_options`).
		WithArgs(groupID, optA).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO menu_option_group_options`).
		WithArgs(groupID, optB).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, SetOptionGroupOptions(db, groupID, []uuid.UUID{optA, optB}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetOptionGroupOptionsRollsBackOnInsertFailure(t *testing.T) {
	db, mock := newMockDB(t)
	groupID := uuid.New()
	opt := uuid.New()
	boom := errors.New("insert failed")

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM menu_option_group_options`).
		WithArgs(groupID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO menu_option_group_options`).
		WithArgs(groupID, opt).
		WillReturnError(boom)
	mock.ExpectRollback()

	err := SetOptionGroupOptions(db, groupID, []uuid.UUID{opt})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLinkAddonFloorsMaxQuantity(t *testing.T) {
	db, mock := newMockDB(t)
	addonID := uuid.New()
	linkID := uuid.New()

	mock.ExpectQuery(`INSERT INTO menu_item_addons`).
		WithArgs(int64(7), addonID, false, true, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(linkID))

	got, err := LinkAddon(db, models.MenuItemAddon{
		MenuItemID:  7,
		AddonID:     addonID,
		IsRequired:  true,
		MaxQuantity: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, linkID, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnlinkAddonIdempotent(t *testing.T) {
	db, mock := newMockDB(t)
	addonID := uuid.New()

	mock.ExpectExec(`DELETE FROM menu_item_addons`).
		WithArgs(int64(7), addonID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, UnlinkAddon(db, 7, addonID))
	assert.NoError(t, mock.ExpectationsWereMet())
}
