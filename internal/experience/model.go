package experience

import "time"

// Experience is a bookable activity listing. Rows are returned with
// snake_case fields, matching what the hosted store used to serve.
type Experience struct {
	ID          string    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Location    string    `db:"location" json:"location"`
	Price       int64     `db:"price" json:"price"`
	Image       string    `db:"image" json:"image"`
	Description string    `db:"description" json:"description"`
	Category    string    `db:"category" json:"category"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

type CreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Price       *int64 `json:"price" binding:"required,gte=0"`
	Image       string `json:"image" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
}

type UpdateRequest struct {
	Title       string `json:"title" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Price       *int64 `json:"price" binding:"required,gte=0"`
	Image       string `json:"image" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
}

// Filter narrows a catalog listing. Category is an exact match, Location
// a case-insensitive substring match.
type Filter struct {
	Category string
	Location string
}

// Detail is the experience detail payload: the listing plus the
// synthesized availability window.
type Detail struct {
	Experience     *Experience `json:"experience"`
	AvailableSlots []DaySlots  `json:"availableSlots"`
}
