package memory

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"github.com/fortistravel/fortis-tourism-backend/internal/domain"
	"github.com/fortistravel/fortis-tourism-backend/internal/repository/ports"
)

type UserRepository struct {
	store *Store
}

func (r *UserRepository) Create(ctx context.Context, user ports.NewUser) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return nil, ports.ErrConflict
		}
	}

	prefs := user.Preferences
	if prefs == nil {
		prefs = []string{}
	}

	created := domain.User{
		ID:           uuid.New(),
		Email:        user.Email,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		AvatarURL:    user.AvatarURL,
		Preferences:  append([]string(nil), prefs...),
		PasswordHash: append([]byte(nil), user.PasswordHash...),
		PasswordSalt: append([]byte(nil), user.PasswordSalt...),
		IsAdmin:      user.IsAdmin,
		CreatedAt:    r.store.now().UTC(),
	}
	r.store.users[created.ID] = created
	out := created
	return &out, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	out := user
	return &out, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, user := range r.store.users {
		if strings.EqualFold(user.Email, email) {
			out := user
			return &out, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, update domain.UserUpdate) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}

	if update.Username != nil {
		user.Username = *update.Username
	}
	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.AvatarURL != nil {
		user.AvatarURL = update.AvatarURL
	}
	if update.Preferences != nil {
		user.Preferences = append([]string(nil), (*update.Preferences)...)
	}

	r.store.users[id] = user
	out := user
	return &out, nil
}

func (r *UserRepository) UpdateStripeCustomerID(ctx context.Context, id uuid.UUID, customerID string) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	user.StripeCustomerID = &customerID
	r.store.users[id] = user
	out := user
	return &out, nil
}

func (r *UserRepository) UpdateStripeInfo(ctx context.Context, id uuid.UUID, customerID, subscriptionID string) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	user.StripeCustomerID = &customerID
	user.StripeSubscriptionID = &subscriptionID
	r.store.users[id] = user
	out := user
	return &out, nil
}

func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	users := make([]domain.User, 0, len(r.store.users))
	for _, user := range r.store.users {
		users = append(users, user)
	}
	return paginate(users, limit, offset), nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return int64(len(r.store.users)), nil
}

func (r *UserRepository) CountWithBookings(ctx context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	seen := make(map[uuid.UUID]struct{})
	for _, booking := range r.store.bookings {
		seen[booking.UserID] = struct{}{}
	}
	return int64(len(seen)), nil
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

var _ ports.UserRepository = (*UserRepository)(nil)
