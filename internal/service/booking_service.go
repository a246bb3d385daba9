// Package service holds the booking lifecycle service and the
// query/filter engine.  The lifecycle service is the only component
// that creates or mutates booking records; everything else works on
// copies routed through it.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/appayon/table-reservation/internal/model"
)

// ErrInvalidStatus is returned when a transition names a status outside
// the pending/confirmed/cancelled set.
var ErrInvalidStatus = errors.New("invalid booking status")

// BookingStore is the subset of the repository the lifecycle service
// needs.  It is satisfied by *repository.BookingRepo.
type BookingStore interface {
	ListAll(ctx context.Context) ([]model.Booking, error)
	GetByID(ctx context.Context, id string) (model.Booking, error)
	Append(ctx context.Context, b model.Booking) error
	UpdateByID(ctx context.Context, id string, mutate func(model.Booking) model.Booking) (model.Booking, error)
}

// BookingService validates incoming booking requests, assigns identity
// and initial state, and governs status transitions.
type BookingService struct {
	store BookingStore
	log   zerolog.Logger
	now   func() time.Time
}

// NewBookingService returns a lifecycle service backed by the given
// store.
func NewBookingService(store BookingStore, log zerolog.Logger) *BookingService {
	return &BookingService{
		store: store,
		log:   log.With().Str("component", "booking_service").Logger(),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Submit validates req, constructs a new booking with a fresh id,
// status pending and createdAt stamped, appends it to the store and
// returns the stored record.  Validation failures are returned as
// *model.ValidationError and nothing is appended.
func (s *BookingService) Submit(ctx context.Context, req model.BookingRequest) (model.Booking, error) {
	if err := req.Validate(); err != nil {
		return model.Booking{}, err
	}
	b := model.Booking{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Phone:           req.Phone,
		Email:           req.Email,
		Guests:          req.Guests,
		Date:            req.Date,
		Time:            req.Time,
		Occasion:        req.Occasion,
		SpecialRequests: req.SpecialRequests,
		Status:          model.StatusPending,
		CreatedAt:       s.now(),
	}
	if err := s.store.Append(ctx, b); err != nil {
		return model.Booking{}, err
	}
	s.log.Info().Str("booking_id", b.ID).Str("date", b.Date).Str("time", b.Time).
		Int("guests", b.Guests).Msg("booking submitted")
	return b, nil
}

// Transition moves the booking with the given id into status, stamping
// updatedAt.  Any of the three states may be set at any time; there is
// no forward-only ordering.  Returns ErrInvalidStatus for an unknown
// status and repository.ErrBookingNotFound for an unknown id.
func (s *BookingService) Transition(ctx context.Context, id string, status model.Status) (model.Booking, error) {
	if !status.Valid() {
		return model.Booking{}, ErrInvalidStatus
	}
	updated, err := s.store.UpdateByID(ctx, id, func(b model.Booking) model.Booking {
		now := s.now()
		b.Status = status
		b.UpdatedAt = &now
		return b
	})
	if err != nil {
		return model.Booking{}, err
	}
	s.log.Info().Str("booking_id", id).Str("status", string(status)).Msg("booking status updated")
	return updated, nil
}

// Get returns a single booking by id.
func (s *BookingService) Get(ctx context.Context, id string) (model.Booking, error) {
	return s.store.GetByID(ctx, id)
}

// List returns every booking in append order.
func (s *BookingService) List(ctx context.Context) ([]model.Booking, error) {
	return s.store.ListAll(ctx)
}
