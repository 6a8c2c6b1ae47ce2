package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fortistravel/fortis-tourism-backend/internal/domain"
	"github.com/fortistravel/fortis-tourism-backend/internal/repository/ports"
)

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrBookingForbidden = errors.New("booking belongs to another user")
	ErrBadTransition    = errors.New("booking status transition not allowed")
)

type BookingCreateInput struct {
	DestinationID   uuid.UUID
	StartDate       time.Time
	EndDate         time.Time
	Travelers       int
	SpecialRequests *string
	ContactEmail    string
	ContactPhone    string
}

type BookingService struct {
	bookings     ports.BookingRepository
	destinations ports.DestinationRepository
}

func NewBookingService(bookingRepo ports.BookingRepository, destinationRepo ports.DestinationRepository) *BookingService {
	return &BookingService{
		bookings:     bookingRepo,
		destinations: destinationRepo,
	}
}

// Create prices the booking from the destination's current unit price
// and starts it in the pending/pending state. Payment confirmation
// arrives later through RecordPayment; no availability or capacity
// model exists, overlapping bookings are accepted.
func (s *BookingService) Create(ctx context.Context, userID uuid.UUID, input BookingCreateInput) (*domain.Booking, error) {
	if input.Travelers <= 0 {
		return nil, NewValidationError("travelers must be positive")
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return nil, NewValidationError("start and end dates are required")
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, NewValidationError("end date must not precede start date")
	}
	if strings.TrimSpace(input.ContactEmail) == "" {
		return nil, NewValidationError("contact email is required")
	}

	dest, err := s.destinations.FindByID(ctx, input.DestinationID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrDestinationNotFound
		}
		return nil, err
	}

	return s.bookings.Create(ctx, ports.NewBooking{
		UserID:          userID,
		DestinationID:   dest.ID,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		Travelers:       input.Travelers,
		TotalPrice:      dest.Price * float64(input.Travelers),
		Status:          domain.BookingPending,
		PaymentStatus:   domain.PaymentPending,
		SpecialRequests: input.SpecialRequests,
		ContactEmail:    strings.TrimSpace(input.ContactEmail),
		ContactPhone:    strings.TrimSpace(input.ContactPhone),
	})
}

// Get returns a booking only to its owner.
func (s *BookingService) Get(ctx context.Context, userID, bookingID uuid.UUID) (*domain.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if booking.UserID != userID {
		return nil, ErrBookingForbidden
	}
	return booking, nil
}

func (s *BookingService) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

// Cancel moves an owner's booking to cancelled, if the lifecycle
// allows it from the current state.
func (s *BookingService) Cancel(ctx context.Context, userID, bookingID uuid.UUID) (*domain.Booking, error) {
	booking, err := s.Get(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, booking, domain.BookingCancelled)
}

// UpdateStatus is the admin path for advancing a booking through its
// lifecycle. Ownership is not checked here; callers gate on role.
func (s *BookingService) UpdateStatus(ctx context.Context, bookingID uuid.UUID, next domain.BookingStatus) (*domain.Booking, error) {
	if !next.Valid() {
		return nil, NewValidationError(fmt.Sprintf("unknown status %q", next))
	}
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return s.transition(ctx, booking, next)
}

// RecordPayment stores the outcome the API layer received from the
// payment processor. The core never calls the processor itself; it
// only keeps the reported status and intent id. A paid report also
// confirms a still-pending booking.
func (s *BookingService) RecordPayment(ctx context.Context, bookingID uuid.UUID, status domain.PaymentStatus, paymentIntentID *string) (*domain.Booking, error) {
	if !status.Valid() {
		return nil, NewValidationError(fmt.Sprintf("unknown payment status %q", status))
	}
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	update := domain.BookingUpdate{
		PaymentStatus:         &status,
		StripePaymentIntentID: paymentIntentID,
	}
	if status == domain.PaymentPaid && booking.Status == domain.BookingPending {
		confirmed := domain.BookingConfirmed
		update.Status = &confirmed
	}
	return s.bookings.Update(ctx, bookingID, update)
}

func (s *BookingService) transition(ctx context.Context, booking *domain.Booking, next domain.BookingStatus) (*domain.Booking, error) {
	if !booking.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s to %s", ErrBadTransition, booking.Status, next)
	}
	return s.bookings.Update(ctx, booking.ID, domain.BookingUpdate{Status: &next})
}
