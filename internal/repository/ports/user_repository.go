package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/fortistravel/fortis-tourism-backend/internal/domain"
)

type NewUser struct {
	Email        string
	Username     string
	FirstName    string
	LastName     string
	AvatarURL    *string
	Preferences  []string
	PasswordHash []byte
	PasswordSalt []byte
	IsAdmin      bool
}

type UserRepository interface {
	Create(ctx context.Context, user NewUser) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, update domain.UserUpdate) (*domain.User, error)
	UpdateStripeCustomerID(ctx context.Context, id uuid.UUID, customerID string) (*domain.User, error)
	UpdateStripeInfo(ctx context.Context, id uuid.UUID, customerID, subscriptionID string) (*domain.User, error)
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
	CountWithBookings(ctx context.Context) (int64, error)
}
