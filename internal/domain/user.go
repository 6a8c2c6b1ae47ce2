package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type User struct {
	ID                   uuid.UUID      `db:"id" json:"id"`
	Email                string         `db:"email" json:"email"`
	Username             string         `db:"username" json:"username"`
	FirstName            string         `db:"first_name" json:"first_name"`
	LastName             string         `db:"last_name" json:"last_name"`
	AvatarURL            *string        `db:"avatar_url" json:"avatar_url,omitempty"`
	Preferences          pq.StringArray `db:"preferences" json:"preferences"`
	StripeCustomerID     *string        `db:"stripe_customer_id" json:"stripe_customer_id,omitempty"`
	StripeSubscriptionID *string        `db:"stripe_subscription_id" json:"stripe_subscription_id,omitempty"`
	PasswordHash         []byte         `db:"password_hash" json:"-"`
	PasswordSalt         []byte         `db:"password_salt" json:"-"`
	IsAdmin              bool           `db:"is_admin" json:"is_admin"`
	CreatedAt            time.Time      `db:"created_at" json:"created_at"`
}

// UserUpdate carries the optional fields of a partial profile update.
// Nil fields are left untouched.
type UserUpdate struct {
	Username    *string
	FirstName   *string
	LastName    *string
	AvatarURL   *string
	Preferences *[]string
}
