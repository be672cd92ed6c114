package booking

import "context"

type Repository interface {
	Create(ctx context.Context, req CreateRequest, status string) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	ListByUser(ctx context.Context, userID string) ([]Booking, error)
	UpdateStatus(ctx context.Context, id, status string) (*Booking, error)
}
