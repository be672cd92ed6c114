package experience

import "context"

type Service interface {
	List(ctx context.Context, filter Filter) ([]Experience, error)
	GetWithAvailability(ctx context.Context, id string) (*Detail, error)
	Create(ctx context.Context, req CreateRequest) (*Experience, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Experience, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	schedule Schedule
}

// NewService builds the catalog service. The schedule is the injected
// availability fixture served with every detail response.
func NewService(repo Repository, schedule Schedule) Service {
	return &service{
		repo:     repo,
		schedule: schedule,
	}
}

func (s *service) List(ctx context.Context, filter Filter) ([]Experience, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) GetWithAvailability(ctx context.Context, id string) (*Detail, error) {
	exp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &Detail{
		Experience:     exp,
		AvailableSlots: s.schedule.Slots(),
	}, nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Experience, error) {
	return s.repo.Create(ctx, req)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Experience, error) {
	return s.repo.Update(ctx, id, req)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
