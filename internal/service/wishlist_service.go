package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/fortistravel/fortis-tourism-backend/internal/domain"
	"github.com/fortistravel/fortis-tourism-backend/internal/repository/ports"
)

var (
	ErrWishlistDuplicate = errors.New("destination already on wishlist")
	ErrWishlistNotFound  = errors.New("wishlist entry not found")
)

type WishlistService struct {
	wishlist     ports.WishlistRepository
	destinations ports.DestinationRepository
}

func NewWishlistService(wishlistRepo ports.WishlistRepository, destinationRepo ports.DestinationRepository) *WishlistService {
	return &WishlistService{
		wishlist:     wishlistRepo,
		destinations: destinationRepo,
	}
}

// Save adds a destination to the user's wishlist. Each (user,
// destination) pair exists at most once; the backing store enforces
// this, so concurrent saves cannot slip in a duplicate.
func (s *WishlistService) Save(ctx context.Context, userID, destinationID uuid.UUID) (*domain.WishlistItem, error) {
	if _, err := s.destinations.FindByID(ctx, destinationID); err != nil {
		if isNotFound(err) {
			return nil, ErrDestinationNotFound
		}
		return nil, err
	}

	item, err := s.wishlist.Add(ctx, userID, destinationID)
	if err != nil {
		switch {
		case isNotFound(err), isUniqueViolation(err):
			return nil, ErrWishlistDuplicate
		default:
			return nil, err
		}
	}
	return item, nil
}

// Remove deletes the pair. A pair that is already gone reports
// ErrWishlistNotFound; callers that want idempotent removal treat that
// as success.
func (s *WishlistService) Remove(ctx context.Context, userID, destinationID uuid.UUID) error {
	if err := s.wishlist.Remove(ctx, userID, destinationID); err != nil {
		if isNotFound(err) {
			return ErrWishlistNotFound
		}
		return err
	}
	return nil
}

func (s *WishlistService) List(ctx context.Context, userID uuid.UUID) ([]domain.WishlistItem, error) {
	return s.wishlist.ListByUser(ctx, userID)
}
