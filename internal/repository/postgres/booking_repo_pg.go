package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/fortistravel/fortis-tourism-backend/internal/domain"
	"github.com/fortistravel/fortis-tourism-backend/internal/repository/ports"
)

const bookingColumns = `id, user_id, destination_id, start_date, end_date, travelers, total_price,
           status, payment_status, stripe_payment_intent_id, special_requests,
           contact_email, contact_phone, created_at`

type BookingRepository struct {
	db *sqlx.DB
}

func NewBookingRepo(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, booking ports.NewBooking) (*domain.Booking, error) {
	const query = `
        INSERT INTO booking (
            user_id, destination_id, start_date, end_date, travelers, total_price,
            status, payment_status, special_requests, contact_email, contact_phone
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING ` + bookingColumns

	row := r.db.QueryRowxContext(ctx, query,
		booking.UserID, booking.DestinationID, booking.StartDate, booking.EndDate,
		booking.Travelers, booking.TotalPrice, booking.Status, booking.PaymentStatus,
		booking.SpecialRequests, booking.ContactEmail, booking.ContactPhone)

	var created domain.Booking
	if err := row.StructScan(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	const query = `SELECT ` + bookingColumns + ` FROM booking WHERE id = $1`
	var booking domain.Booking
	if err := r.db.GetContext(ctx, &booking, query, id); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error) {
	const query = `
        SELECT ` + bookingColumns + `
        FROM booking
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.QueryxContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var booking domain.Booking
		if err := rows.StructScan(&booking); err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}

func (r *BookingRepository) Update(ctx context.Context, id uuid.UUID, update domain.BookingUpdate) (*domain.Booking, error) {
	setParts := []string{}
	args := []any{}
	idx := 1

	if update.Status != nil {
		setParts = append(setParts, fmt.Sprintf("status = $%d", idx))
		args = append(args, *update.Status)
		idx++
	}
	if update.PaymentStatus != nil {
		setParts = append(setParts, fmt.Sprintf("payment_status = $%d", idx))
		args = append(args, *update.PaymentStatus)
		idx++
	}
	if update.StripePaymentIntentID != nil {
		setParts = append(setParts, fmt.Sprintf("stripe_payment_intent_id = $%d", idx))
		args = append(args, *update.StripePaymentIntentID)
		idx++
	}
	if update.SpecialRequests != nil {
		setParts = append(setParts, fmt.Sprintf("special_requests = $%d", idx))
		args = append(args, *update.SpecialRequests)
		idx++
	}

	if len(setParts) == 0 {
		return r.FindByID(ctx, id)
	}

	query := fmt.Sprintf(`
        UPDATE booking SET %s
        WHERE id = $%d
        RETURNING %s
    `, strings.Join(setParts, ", "), idx, bookingColumns)
	args = append(args, id)

	var booking domain.Booking
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM booking WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *BookingRepository) Stats(ctx context.Context) (*domain.BookingStats, error) {
	const query = `
        SELECT
            COUNT(*) AS total,
            COUNT(*) FILTER (WHERE status = 'confirmed') AS confirmed,
            COUNT(*) FILTER (WHERE status = 'pending') AS pending,
            COALESCE(SUM(total_price), 0) AS gross_value
        FROM booking
    `
	var stats domain.BookingStats
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *BookingRepository) PaidRevenue(ctx context.Context, from, to time.Time) (float64, error) {
	const query = `
        SELECT COALESCE(SUM(total_price), 0)
        FROM booking
        WHERE payment_status = 'paid'
          AND ($1::timestamptz IS NULL OR created_at >= $1)
          AND ($2::timestamptz IS NULL OR created_at < $2)
    `
	var revenue float64
	if err := r.db.GetContext(ctx, &revenue, query, nullTime(from), nullTime(to)); err != nil {
		return 0, err
	}
	return revenue, nil
}

func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

var _ ports.BookingRepository = (*BookingRepository)(nil)
