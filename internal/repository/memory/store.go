// Package memory implements the repository ports over mutex-guarded
// maps. It backs tests and the dev STORAGE_BACKEND=memory mode; the
// uniqueness checks that Postgres enforces with constraints are done
// here under the store lock so check-then-act sequences stay atomic.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fortistravel/fortis-tourism-backend/internal/domain"
)

type Store struct {
	mu           sync.RWMutex
	users        map[uuid.UUID]domain.User
	destinations map[uuid.UUID]domain.Destination
	bookings     map[uuid.UUID]domain.Booking
	wishlist     map[uuid.UUID]domain.WishlistItem
	sessions     map[string]domain.Session
	nextSession  int64
	now          func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:        make(map[uuid.UUID]domain.User),
		destinations: make(map[uuid.UUID]domain.Destination),
		bookings:     make(map[uuid.UUID]domain.Booking),
		wishlist:     make(map[uuid.UUID]domain.WishlistItem),
		sessions:     make(map[string]domain.Session),
		now:          time.Now,
	}
}

// NewSeededStore returns a store preloaded with the starter destination
// catalog, for dev mode and demos.
func NewSeededStore() *Store {
	s := NewStore()
	s.seedDestinations()
	return s
}

// SetNow swaps the store's clock so tests can pin creation timestamps.
func (s *Store) SetNow(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) Users() *UserRepository               { return &UserRepository{store: s} }
func (s *Store) Destinations() *DestinationRepository { return &DestinationRepository{store: s} }
func (s *Store) Bookings() *BookingRepository         { return &BookingRepository{store: s} }
func (s *Store) Wishlist() *WishlistRepository        { return &WishlistRepository{store: s} }
func (s *Store) Sessions() *SessionRepository         { return &SessionRepository{store: s} }
