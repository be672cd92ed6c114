package booking

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("booking not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const bookingColumns = "id, experience_id, user_id, date, time, quantity, subtotal, taxes, total, promo_code, discount_amount, status, notes, created_at, updated_at"

func (r *repository) Create(ctx context.Context, req CreateRequest, status string) (*Booking, error) {
	query := `
		INSERT INTO bookings (experience_id, user_id, date, time, quantity, subtotal, taxes, total, promo_code, discount_amount, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + bookingColumns

	var b Booking
	err := r.db.GetContext(ctx, &b, query,
		req.ExperienceID, req.UserID, req.Date, req.Time,
		*req.Quantity, *req.Subtotal, *req.Taxes, *req.Total,
		req.PromoCode, req.DiscountAmount, req.Notes, status)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query := "SELECT " + bookingColumns + " FROM bookings WHERE id = $1"

	var b Booking
	if err := r.db.GetContext(ctx, &b, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &b, nil
}

func (r *repository) ListByUser(ctx context.Context, userID string) ([]Booking, error) {
	query := "SELECT " + bookingColumns + " FROM bookings WHERE user_id = $1 ORDER BY created_at DESC"

	bookings := []Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, userID); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id, status string) (*Booking, error) {
	query := `
		UPDATE bookings
		SET status = $1, updated_at = now()
		WHERE id = $2
		RETURNING ` + bookingColumns

	var b Booking
	if err := r.db.GetContext(ctx, &b, query, status, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &b, nil
}
