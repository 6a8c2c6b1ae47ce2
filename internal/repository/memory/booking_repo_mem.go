package memory

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/fortistravel/fortis-tourism-backend/internal/domain"
	"github.com/fortistravel/fortis-tourism-backend/internal/repository/ports"
)

type BookingRepository struct {
	store *Store
}

func (r *BookingRepository) Create(ctx context.Context, booking ports.NewBooking) (*domain.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	created := domain.Booking{
		ID:              uuid.New(),
		UserID:          booking.UserID,
		DestinationID:   booking.DestinationID,
		StartDate:       booking.StartDate,
		EndDate:         booking.EndDate,
		Travelers:       booking.Travelers,
		TotalPrice:      booking.TotalPrice,
		Status:          booking.Status,
		PaymentStatus:   booking.PaymentStatus,
		SpecialRequests: booking.SpecialRequests,
		ContactEmail:    booking.ContactEmail,
		ContactPhone:    booking.ContactPhone,
		CreatedAt:       r.store.now().UTC(),
	}
	r.store.bookings[created.ID] = created
	out := created
	return &out, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	booking, ok := r.store.bookings[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	out := booking
	return &out, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	bookings := make([]domain.Booking, 0)
	for _, booking := range r.store.bookings {
		if booking.UserID == userID {
			bookings = append(bookings, booking)
		}
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
	return bookings, nil
}

func (r *BookingRepository) Update(ctx context.Context, id uuid.UUID, update domain.BookingUpdate) (*domain.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	booking, ok := r.store.bookings[id]
	if !ok {
		return nil, sql.ErrNoRows
	}

	if update.Status != nil {
		booking.Status = *update.Status
	}
	if update.PaymentStatus != nil {
		booking.PaymentStatus = *update.PaymentStatus
	}
	if update.StripePaymentIntentID != nil {
		booking.StripePaymentIntentID = update.StripePaymentIntentID
	}
	if update.SpecialRequests != nil {
		booking.SpecialRequests = update.SpecialRequests
	}

	r.store.bookings[id] = booking
	out := booking
	return &out, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.bookings, id)
	return nil
}

func (r *BookingRepository) Stats(ctx context.Context) (*domain.BookingStats, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	stats := domain.BookingStats{}
	for _, booking := range r.store.bookings {
		stats.Total++
		switch booking.Status {
		case domain.BookingConfirmed:
			stats.Confirmed++
		case domain.BookingPending:
			stats.Pending++
		}
		stats.GrossValue += booking.TotalPrice
	}
	return &stats, nil
}

func (r *BookingRepository) PaidRevenue(ctx context.Context, from, to time.Time) (float64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var revenue float64
	for _, booking := range r.store.bookings {
		if booking.PaymentStatus != domain.PaymentPaid {
			continue
		}
		if !from.IsZero() && booking.CreatedAt.Before(from) {
			continue
		}
		if !to.IsZero() && !booking.CreatedAt.Before(to) {
			continue
		}
		revenue += booking.TotalPrice
	}
	return revenue, nil
}

var _ ports.BookingRepository = (*BookingRepository)(nil)
