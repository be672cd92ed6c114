package booking

import (
	"context"
	"errors"
	"strings"

	"github.com/SUDHEER176/Bookit/internal/experience"
	"github.com/SUDHEER176/Bookit/internal/logger"
	"github.com/SUDHEER176/Bookit/internal/metrics"
	"github.com/SUDHEER176/Bookit/internal/pricing"
)

var ErrInvalidStatus = errors.New("invalid booking status")

// Notifier queues a confirmation for a created booking.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, to, experienceTitle, date, timeLabel, bookingID string) error
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	ListByUser(ctx context.Context, userID string) ([]Booking, error)
	UpdateStatus(ctx context.Context, id, status string) (*Booking, error)
}

type service struct {
	repo        Repository
	experiences experience.Repository
	notifier    Notifier
}

func NewService(repo Repository, experiences experience.Repository, notifier Notifier) Service {
	return &service{
		repo:        repo,
		experiences: experiences,
		notifier:    notifier,
	}
}

// Create validates the request, persists the booking with status
// confirmed and queues a confirmation notification. The client-submitted
// amounts are stored as-is; the server only recomputes them to flag
// drift, never to reject.
func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if err := ValidateCreate(req); err != nil {
		return nil, err
	}

	s.checkPricing(req)

	b, err := s.repo.Create(ctx, req, StatusConfirmed)
	if err != nil {
		return nil, err
	}

	metrics.RecordBooking(b.Status)
	b.PaymentStatus = PaymentStatusCompleted

	// The client uses the customer email as the user identifier.
	if s.notifier != nil && strings.Contains(b.UserID, "@") {
		title := b.ExperienceID
		if s.experiences != nil {
			if exp, err := s.experiences.GetByID(ctx, b.ExperienceID); err == nil {
				title = exp.Title
			}
		}
		if err := s.notifier.SendBookingConfirmation(ctx, b.UserID, title, b.Date, b.Time, b.ID); err != nil {
			logger.Error("Failed to queue booking confirmation", "booking_id", b.ID, "error", err.Error())
		}
	}

	return b, nil
}

// checkPricing recomputes taxes and total from the submitted subtotal
// and logs a warning on drift.
func (s *service) checkPricing(req CreateRequest) {
	expectedTaxes := pricing.TaxOn(*req.Subtotal)

	var discount int64
	if req.DiscountAmount != nil {
		discount = *req.DiscountAmount
	}

	quote := pricing.Quote{
		Subtotal: *req.Subtotal,
		Taxes:    expectedTaxes,
		Total:    *req.Subtotal + expectedTaxes,
	}
	expectedTotal := pricing.ApplyDiscount(quote, discount)

	if *req.Taxes != expectedTaxes || *req.Total != expectedTotal {
		metrics.RecordPricingMismatch()
		logger.Warn("Submitted pricing differs from server recomputation",
			"subtotal", *req.Subtotal,
			"submitted_taxes", *req.Taxes,
			"expected_taxes", expectedTaxes,
			"submitted_total", *req.Total,
			"expected_total", expectedTotal,
		)
	}
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]Booking, error) {
	return s.repo.ListByUser(ctx, userID)
}

// UpdateStatus sets a booking's status. Any transition between valid
// statuses is permitted; there is no state-machine guard.
func (s *service) UpdateStatus(ctx context.Context, id, status string) (*Booking, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	b, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	metrics.RecordStatusUpdate(status)
	return b, nil
}
