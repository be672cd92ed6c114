package experience

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

var experienceRows = []string{"id", "title", "location", "price", "image", "description", "category", "created_at", "updated_at"}

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	dbx := sqlx.NewDb(db, "sqlmock")
	return NewRepository(dbx), mock, func() { db.Close() }
}

func addExperienceRow(rows *sqlmock.Rows, id, title, location string, price int64) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(id, title, location, price, "https://img.example/x.jpg", "A great time", "Water Sports", now, now)
}

func TestList(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	rows := sqlmock.NewRows(experienceRows)
	addExperienceRow(rows, "7c9e6679-7425-40de-944b-e07fc1f90ae7", "Kayaking", "Udupi", 999)
	addExperienceRow(rows, "9b2ddcaa-0d5e-4e9e-8f2a-0a9c6f3a1b2c", "Surfing", "Mulki", 1499)

	mock.ExpectQuery(`SELECT id, title, location, price, image, description, category, created_at, updated_at FROM experiences ORDER BY created_at DESC`).
		WillReturnRows(rows)

	experiences, err := repo.List(context.Background(), Filter{})
	assert.NoError(t, err)
	assert.Len(t, experiences, 2)
	assert.Equal(t, "Kayaking", experiences[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListFilterByCategory(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	rows := sqlmock.NewRows(experienceRows)
	addExperienceRow(rows, "7c9e6679-7425-40de-944b-e07fc1f90ae7", "Kayaking", "Udupi", 999)

	mock.ExpectQuery(`SELECT .* FROM experiences WHERE category = \$1 ORDER BY created_at DESC`).
		WithArgs("Water Sports").
		WillReturnRows(rows)

	experiences, err := repo.List(context.Background(), Filter{Category: "Water Sports"})
	assert.NoError(t, err)
	assert.Len(t, experiences, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListFilterByLocationSubstring(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	rows := sqlmock.NewRows(experienceRows)
	addExperienceRow(rows, "7c9e6679-7425-40de-944b-e07fc1f90ae7", "Kayaking", "Udupi", 999)

	mock.ExpectQuery(`SELECT .* FROM experiences WHERE location ILIKE \$1 ORDER BY created_at DESC`).
		WithArgs("%dup%").
		WillReturnRows(rows)

	experiences, err := repo.List(context.Background(), Filter{Location: "dup"})
	assert.NoError(t, err)
	assert.Len(t, experiences, 1)
	assert.Equal(t, "Udupi", experiences[0].Location)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListFilterByCategoryAndLocation(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	mock.ExpectQuery(`SELECT .* FROM experiences WHERE category = \$1 AND location ILIKE \$2 ORDER BY created_at DESC`).
		WithArgs("Water Sports", "%dup%").
		WillReturnRows(sqlmock.NewRows(experienceRows))

	experiences, err := repo.List(context.Background(), Filter{Category: "Water Sports", Location: "dup"})
	assert.NoError(t, err)
	assert.Empty(t, experiences)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	rows := sqlmock.NewRows(experienceRows)
	addExperienceRow(rows, "7c9e6679-7425-40de-944b-e07fc1f90ae7", "Kayaking", "Udupi", 999)

	mock.ExpectQuery(`SELECT .* FROM experiences WHERE id = \$1`).
		WithArgs("7c9e6679-7425-40de-944b-e07fc1f90ae7").
		WillReturnRows(rows)

	exp, err := repo.GetByID(context.Background(), "7c9e6679-7425-40de-944b-e07fc1f90ae7")
	assert.NoError(t, err)
	assert.Equal(t, "Kayaking", exp.Title)
	assert.Equal(t, int64(999), exp.Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	mock.ExpectQuery(`SELECT .* FROM experiences WHERE id = \$1`).
		WithArgs("7c9e6679-7425-40de-944b-e07fc1f90ae7").
		WillReturnRows(sqlmock.NewRows(experienceRows))

	_, err := repo.GetByID(context.Background(), "7c9e6679-7425-40de-944b-e07fc1f90ae7")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	rows := sqlmock.NewRows(experienceRows)
	addExperienceRow(rows, "7c9e6679-7425-40de-944b-e07fc1f90ae7", "Kayaking", "Udupi", 999)

	price := int64(999)
	mock.ExpectQuery(`INSERT INTO experiences.*RETURNING`).
		WithArgs("Kayaking", "Udupi", price, "https://img.example/x.jpg", "A great time", "Water Sports").
		WillReturnRows(rows)

	exp, err := repo.Create(context.Background(), CreateRequest{
		Title:       "Kayaking",
		Location:    "Udupi",
		Price:       &price,
		Image:       "https://img.example/x.jpg",
		Description: "A great time",
		Category:    "Water Sports",
	})
	assert.NoError(t, err)
	assert.Equal(t, "7c9e6679-7425-40de-944b-e07fc1f90ae7", exp.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateNotFound(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	price := int64(1099)
	mock.ExpectQuery(`UPDATE experiences.*RETURNING`).
		WillReturnRows(sqlmock.NewRows(experienceRows))

	_, err := repo.Update(context.Background(), "7c9e6679-7425-40de-944b-e07fc1f90ae7", UpdateRequest{
		Title:       "Kayaking",
		Location:    "Udupi",
		Price:       &price,
		Image:       "https://img.example/x.jpg",
		Description: "A great time",
		Category:    "Water Sports",
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	mock.ExpectExec(`DELETE FROM experiences WHERE id = \$1`).
		WithArgs("7c9e6679-7425-40de-944b-e07fc1f90ae7").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), "7c9e6679-7425-40de-944b-e07fc1f90ae7")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
