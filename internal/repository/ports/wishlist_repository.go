package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/fortistravel/fortis-tourism-backend/internal/domain"
)

type WishlistRepository interface {
	// Add inserts a (user, destination) pair. A duplicate pair surfaces
	// as a unique-violation error from the backing store.
	Add(ctx context.Context, userID, destinationID uuid.UUID) (*domain.WishlistItem, error)
	// Remove deletes the pair, returning sql.ErrNoRows when absent.
	Remove(ctx context.Context, userID, destinationID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.WishlistItem, error)
}
