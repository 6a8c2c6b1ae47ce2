package domain

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether the booking lifecycle allows moving to
// next. Allowed moves: pending→confirmed→completed, and cancellation from
// pending or confirmed. Terminal states accept nothing.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingPending:
		return next == BookingConfirmed || next == BookingCancelled
	case BookingConfirmed:
		return next == BookingCompleted || next == BookingCancelled
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

type Booking struct {
	ID                    uuid.UUID     `db:"id" json:"id"`
	UserID                uuid.UUID     `db:"user_id" json:"user_id"`
	DestinationID         uuid.UUID     `db:"destination_id" json:"destination_id"`
	StartDate             time.Time     `db:"start_date" json:"start_date"`
	EndDate               time.Time     `db:"end_date" json:"end_date"`
	Travelers             int           `db:"travelers" json:"travelers"`
	TotalPrice            float64       `db:"total_price" json:"total_price"`
	Status                BookingStatus `db:"status" json:"status"`
	PaymentStatus         PaymentStatus `db:"payment_status" json:"payment_status"`
	StripePaymentIntentID *string       `db:"stripe_payment_intent_id" json:"stripe_payment_intent_id,omitempty"`
	SpecialRequests       *string       `db:"special_requests" json:"special_requests,omitempty"`
	ContactEmail          string        `db:"contact_email" json:"contact_email"`
	ContactPhone          string        `db:"contact_phone" json:"contact_phone"`
	CreatedAt             time.Time     `db:"created_at" json:"created_at"`
}

// BookingUpdate carries the mutable booking fields. Status changes go
// through the lifecycle check in the service layer, not here.
type BookingUpdate struct {
	Status                *BookingStatus
	PaymentStatus         *PaymentStatus
	StripePaymentIntentID *string
	SpecialRequests       *string
}
