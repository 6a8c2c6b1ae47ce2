package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/fortistravel/fortis-tourism-backend/internal/domain"
	"github.com/fortistravel/fortis-tourism-backend/internal/repository/ports"
)

type WishlistRepository struct {
	db *sqlx.DB
}

func NewWishlistRepo(db *sqlx.DB) *WishlistRepository {
	return &WishlistRepository{db: db}
}

func (r *WishlistRepository) Add(ctx context.Context, userID, destinationID uuid.UUID) (*domain.WishlistItem, error) {
	const query = `
		INSERT INTO wishlist (user_id, destination_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, destination_id) DO NOTHING
		RETURNING id, user_id, destination_id, created_at
	`

	var item domain.WishlistItem
	if err := r.db.GetContext(ctx, &item, query, userID, destinationID); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *WishlistRepository) Remove(ctx context.Context, userID, destinationID uuid.UUID) error {
	const query = `
		DELETE FROM wishlist
		WHERE user_id = $1 AND destination_id = $2
	`
	result, err := r.db.ExecContext(ctx, query, userID, destinationID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *WishlistRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.WishlistItem, error) {
	const query = `
		SELECT id, user_id, destination_id, created_at
		FROM wishlist
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryxContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.WishlistItem, 0)
	for rows.Next() {
		var item domain.WishlistItem
		if err := rows.StructScan(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

var _ ports.WishlistRepository = (*WishlistRepository)(nil)
