package memory

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/fortistravel/fortis-tourism-backend/internal/domain"
	"github.com/fortistravel/fortis-tourism-backend/internal/repository/ports"
)

type SessionRepository struct {
	store *Store
}

func (r *SessionRepository) CreateSession(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) (*domain.Session, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextSession++
	session := domain.Session{
		ID:        r.store.nextSession,
		UserID:    userID,
		Token:     token,
		CreatedAt: r.store.now().UTC(),
		ExpiresAt: expiresAt,
		IsActive:  true,
	}
	r.store.sessions[token] = session
	out := session
	return &out, nil
}

func (r *SessionRepository) DeactivateSession(ctx context.Context, token string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	session, ok := r.store.sessions[token]
	if !ok {
		return nil
	}
	session.IsActive = false
	session.ExpiresAt = r.store.now().UTC()
	r.store.sessions[token] = session
	return nil
}

func (r *SessionRepository) FindActiveSession(ctx context.Context, token string) (*domain.Session, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	session, ok := r.store.sessions[token]
	if !ok || !session.IsActive || !session.ExpiresAt.After(r.store.now()) {
		return nil, sql.ErrNoRows
	}
	out := session
	return &out, nil
}

var _ ports.SessionRepository = (*SessionRepository)(nil)
