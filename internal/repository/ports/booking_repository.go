package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fortistravel/fortis-tourism-backend/internal/domain"
)

type NewBooking struct {
	UserID          uuid.UUID
	DestinationID   uuid.UUID
	StartDate       time.Time
	EndDate         time.Time
	Travelers       int
	TotalPrice      float64
	Status          domain.BookingStatus
	PaymentStatus   domain.PaymentStatus
	SpecialRequests *string
	ContactEmail    string
	ContactPhone    string
}

type BookingRepository interface {
	Create(ctx context.Context, booking NewBooking) (*domain.Booking, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error)
	Update(ctx context.Context, id uuid.UUID, update domain.BookingUpdate) (*domain.Booking, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*domain.BookingStats, error)
	// PaidRevenue sums total_price over paid bookings created in
	// [from, to). Zero bounds widen the window on that side.
	PaidRevenue(ctx context.Context, from, to time.Time) (float64, error)
}
