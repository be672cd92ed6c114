package experience

import "context"

type Repository interface {
	List(ctx context.Context, filter Filter) ([]Experience, error)
	GetByID(ctx context.Context, id string) (*Experience, error)
	Create(ctx context.Context, req CreateRequest) (*Experience, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Experience, error)
	Delete(ctx context.Context, id string) error
}
