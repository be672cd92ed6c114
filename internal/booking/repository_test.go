package booking

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookingRows = []string{
	"id", "experience_id", "user_id", "date", "time", "quantity",
	"subtotal", "taxes", "total", "promo_code", "discount_amount",
	"status", "notes", "created_at", "updated_at",
}

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	dbx := sqlx.NewDb(db, "sqlmock")
	return NewRepository(dbx), mock, func() { db.Close() }
}

func addBookingRow(rows *sqlmock.Rows, id, userID, status string) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(
		id, "7c9e6679-7425-40de-944b-e07fc1f90ae7", userID, "2025-10-22", "09:00 am", 2,
		int64(1998), int64(120), int64(2118), nil, nil,
		status, nil, now, now,
	)
}

func TestCreateBooking(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	rows := sqlmock.NewRows(bookingRows)
	addBookingRow(rows, "f47ac10b-58cc-4372-a567-0e02b2c3d479", "jane@example.com", StatusConfirmed)

	mock.ExpectQuery(`INSERT INTO bookings.*RETURNING`).
		WithArgs(
			"7c9e6679-7425-40de-944b-e07fc1f90ae7", "jane@example.com", "2025-10-22", "09:00 am",
			2, int64(1998), int64(120), int64(2118), nil, nil, nil, StatusConfirmed,
		).
		WillReturnRows(rows)

	b, err := repo.Create(context.Background(), validCreateRequest(), StatusConfirmed)
	require.NoError(t, err)

	assert.Equal(t, "f47ac10b-58cc-4372-a567-0e02b2c3d479", b.ID)
	assert.Equal(t, StatusConfirmed, b.Status)
	assert.Equal(t, int64(2118), b.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBookingByID(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	rows := sqlmock.NewRows(bookingRows)
	addBookingRow(rows, "f47ac10b-58cc-4372-a567-0e02b2c3d479", "jane@example.com", StatusConfirmed)

	mock.ExpectQuery(`SELECT .* FROM bookings WHERE id = \$1`).
		WithArgs("f47ac10b-58cc-4372-a567-0e02b2c3d479").
		WillReturnRows(rows)

	b, err := repo.GetByID(context.Background(), "f47ac10b-58cc-4372-a567-0e02b2c3d479")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", b.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBookingByIDNotFound(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	mock.ExpectQuery(`SELECT .* FROM bookings WHERE id = \$1`).
		WithArgs("f47ac10b-58cc-4372-a567-0e02b2c3d479").
		WillReturnRows(sqlmock.NewRows(bookingRows))

	_, err := repo.GetByID(context.Background(), "f47ac10b-58cc-4372-a567-0e02b2c3d479")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByUserNewestFirst(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	rows := sqlmock.NewRows(bookingRows)
	addBookingRow(rows, "f47ac10b-58cc-4372-a567-0e02b2c3d479", "jane@example.com", StatusConfirmed)
	addBookingRow(rows, "9b2ddcaa-0d5e-4e9e-8f2a-0a9c6f3a1b2c", "jane@example.com", StatusCancelled)

	mock.ExpectQuery(`SELECT .* FROM bookings WHERE user_id = \$1 ORDER BY created_at DESC`).
		WithArgs("jane@example.com").
		WillReturnRows(rows)

	bookings, err := repo.ListByUser(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.Len(t, bookings, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByUserEmpty(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	mock.ExpectQuery(`SELECT .* FROM bookings WHERE user_id = \$1 ORDER BY created_at DESC`).
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows(bookingRows))

	bookings, err := repo.ListByUser(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	rows := sqlmock.NewRows(bookingRows)
	addBookingRow(rows, "f47ac10b-58cc-4372-a567-0e02b2c3d479", "jane@example.com", StatusCancelled)

	mock.ExpectQuery(`UPDATE bookings.*SET status.*RETURNING`).
		WithArgs(StatusCancelled, "f47ac10b-58cc-4372-a567-0e02b2c3d479").
		WillReturnRows(rows)

	b, err := repo.UpdateStatus(context.Background(), "f47ac10b-58cc-4372-a567-0e02b2c3d479", StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, b.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusNotFound(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	mock.ExpectQuery(`UPDATE bookings.*SET status.*RETURNING`).
		WithArgs(StatusConfirmed, "f47ac10b-58cc-4372-a567-0e02b2c3d479").
		WillReturnRows(sqlmock.NewRows(bookingRows))

	_, err := repo.UpdateStatus(context.Background(), "f47ac10b-58cc-4372-a567-0e02b2c3d479", StatusConfirmed)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
