package memory

import (
	"context"
	"database/sql"
	"sort"

	"github.com/google/uuid"

	"github.com/fortistravel/fortis-tourism-backend/internal/domain"
	"github.com/fortistravel/fortis-tourism-backend/internal/repository/ports"
)

type WishlistRepository struct {
	store *Store
}

func (r *WishlistRepository) Add(ctx context.Context, userID, destinationID uuid.UUID) (*domain.WishlistItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, item := range r.store.wishlist {
		if item.UserID == userID && item.DestinationID == destinationID {
			return nil, ports.ErrConflict
		}
	}

	item := domain.WishlistItem{
		ID:            uuid.New(),
		UserID:        userID,
		DestinationID: destinationID,
		CreatedAt:     r.store.now().UTC(),
	}
	r.store.wishlist[item.ID] = item
	out := item
	return &out, nil
}

func (r *WishlistRepository) Remove(ctx context.Context, userID, destinationID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, item := range r.store.wishlist {
		if item.UserID == userID && item.DestinationID == destinationID {
			delete(r.store.wishlist, id)
			return nil
		}
	}
	return sql.ErrNoRows
}

func (r *WishlistRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.WishlistItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	items := make([]domain.WishlistItem, 0)
	for _, item := range r.store.wishlist {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

var _ ports.WishlistRepository = (*WishlistRepository)(nil)
