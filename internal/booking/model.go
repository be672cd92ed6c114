package booking

import "time"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is one of the booking status values.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// PaymentStatusCompleted is reported on create responses. No payment is
// captured; the field is response-only.
const PaymentStatusCompleted = "completed"

// Booking is a persisted booking row. Amounts are whole currency units
// submitted by the client; the server stores them as-is.
type Booking struct {
	ID             string    `db:"id" json:"id"`
	ExperienceID   string    `db:"experience_id" json:"experience_id"`
	UserID         string    `db:"user_id" json:"user_id"`
	Date           string    `db:"date" json:"date"`
	Time           string    `db:"time" json:"time"`
	Quantity       int       `db:"quantity" json:"quantity"`
	Subtotal       int64     `db:"subtotal" json:"subtotal"`
	Taxes          int64     `db:"taxes" json:"taxes"`
	Total          int64     `db:"total" json:"total"`
	PromoCode      *string   `db:"promo_code" json:"promo_code"`
	DiscountAmount *int64    `db:"discount_amount" json:"discount_amount"`
	Status         string    `db:"status" json:"status"`
	Notes          *string   `db:"notes" json:"notes"`
	PaymentStatus  string    `db:"-" json:"payment_status,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// CreateRequest is the checkout payload. Field names follow the client's
// camelCase convention. Numeric fields are pointers so that an absent
// field can be told apart from zero.
type CreateRequest struct {
	ExperienceID   string  `json:"experienceId"`
	UserID         string  `json:"userId"`
	Date           string  `json:"date"`
	Time           string  `json:"time"`
	Quantity       *int    `json:"quantity"`
	Subtotal       *int64  `json:"subtotal"`
	Taxes          *int64  `json:"taxes"`
	Total          *int64  `json:"total"`
	PromoCode      *string `json:"promoCode"`
	DiscountAmount *int64  `json:"discountAmount"`
	Notes          *string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
