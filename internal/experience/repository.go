package experience

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("experience not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const experienceColumns = "id, title, location, price, image, description, category, created_at, updated_at"

func (r *repository) List(ctx context.Context, filter Filter) ([]Experience, error) {
	query := "SELECT " + experienceColumns + " FROM experiences"
	args := []interface{}{}

	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" WHERE category = $%d", len(args))
	}
	if filter.Location != "" {
		args = append(args, "%"+filter.Location+"%")
		if len(args) == 1 {
			query += fmt.Sprintf(" WHERE location ILIKE $%d", len(args))
		} else {
			query += fmt.Sprintf(" AND location ILIKE $%d", len(args))
		}
	}

	query += " ORDER BY created_at DESC"

	experiences := []Experience{}
	if err := r.db.SelectContext(ctx, &experiences, query, args...); err != nil {
		return nil, err
	}

	return experiences, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Experience, error) {
	query := "SELECT " + experienceColumns + " FROM experiences WHERE id = $1"

	var exp Experience
	if err := r.db.GetContext(ctx, &exp, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &exp, nil
}

func (r *repository) Create(ctx context.Context, req CreateRequest) (*Experience, error) {
	query := `
		INSERT INTO experiences (title, location, price, image, description, category)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + experienceColumns

	var exp Experience
	err := r.db.GetContext(ctx, &exp, query,
		req.Title, req.Location, *req.Price, req.Image, req.Description, req.Category)
	if err != nil {
		return nil, err
	}

	return &exp, nil
}

func (r *repository) Update(ctx context.Context, id string, req UpdateRequest) (*Experience, error) {
	query := `
		UPDATE experiences
		SET title = $1, location = $2, price = $3, image = $4, description = $5, category = $6, updated_at = now()
		WHERE id = $7
		RETURNING ` + experienceColumns

	var exp Experience
	err := r.db.GetContext(ctx, &exp, query,
		req.Title, req.Location, *req.Price, req.Image, req.Description, req.Category, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &exp, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM experiences WHERE id = $1", id)
	return err
}
