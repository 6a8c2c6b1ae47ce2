package service

import (
	"context"
	"time"

	"github.com/fortistravel/fortis-tourism-backend/internal/domain"
	"github.com/fortistravel/fortis-tourism-backend/internal/repository/ports"
)

// StatsService aggregates the admin dashboard figures by scanning the
// booking and user collections. Nothing is maintained incrementally;
// every call recomputes from the store.
type StatsService struct {
	bookings ports.BookingRepository
	users    ports.UserRepository
	now      func() time.Time
}

func NewStatsService(bookingRepo ports.BookingRepository, userRepo ports.UserRepository) *StatsService {
	return &StatsService{
		bookings: bookingRepo,
		users:    userRepo,
		now:      time.Now,
	}
}

// BookingStats counts bookings by status and sums total_price across
// every booking. The sum is gross booking value, not revenue: unpaid
// and cancelled bookings are included on purpose, RevenueStats has the
// paid-only view.
func (s *StatsService) BookingStats(ctx context.Context) (*domain.BookingStats, error) {
	return s.bookings.Stats(ctx)
}

// RevenueStats sums paid bookings only. ThisMonth buckets by booking
// creation date in UTC; Growth is the percent change against the
// previous month's bucket (zero when the previous month had no paid
// revenue).
func (s *StatsService) RevenueStats(ctx context.Context) (*domain.RevenueStats, error) {
	total, err := s.bookings.PaidRevenue(ctx, time.Time{}, time.Time{})
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	prevStart := monthStart.AddDate(0, -1, 0)

	thisMonth, err := s.bookings.PaidRevenue(ctx, monthStart, time.Time{})
	if err != nil {
		return nil, err
	}
	prevMonth, err := s.bookings.PaidRevenue(ctx, prevStart, monthStart)
	if err != nil {
		return nil, err
	}

	growth := 0.0
	if prevMonth > 0 {
		growth = (thisMonth - prevMonth) / prevMonth * 100
	}

	return &domain.RevenueStats{
		Total:     total,
		ThisMonth: thisMonth,
		Growth:    growth,
	}, nil
}

// UserStats reports registered users and, as the activity measure,
// users that have placed at least one booking.
func (s *StatsService) UserStats(ctx context.Context) (*domain.UserStats, error) {
	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	active, err := s.users.CountWithBookings(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.UserStats{Total: total, Active: active}, nil
}

func (s *StatsService) AdminStats(ctx context.Context) (*domain.AdminStats, error) {
	bookingStats, err := s.BookingStats(ctx)
	if err != nil {
		return nil, err
	}
	userStats, err := s.UserStats(ctx)
	if err != nil {
		return nil, err
	}
	revenueStats, err := s.RevenueStats(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.AdminStats{
		Bookings: *bookingStats,
		Users:    *userStats,
		Revenue:  *revenueStats,
	}, nil
}
