package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/fortistravel/fortis-tourism-backend/internal/domain"
	"github.com/fortistravel/fortis-tourism-backend/internal/repository/ports"
)

const userColumns = `id, email, username, first_name, last_name, avatar_url, preferences,
           stripe_customer_id, stripe_subscription_id, password_hash, password_salt, is_admin, created_at`

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user ports.NewUser) (*domain.User, error) {
	const query = `
        INSERT INTO user_account (email, username, first_name, last_name, avatar_url, preferences, password_hash, password_salt, is_admin)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING ` + userColumns

	prefs := user.Preferences
	if prefs == nil {
		prefs = []string{}
	}

	row := r.db.QueryRowxContext(ctx, query,
		user.Email, user.Username, user.FirstName, user.LastName,
		user.AvatarURL, pq.StringArray(prefs), user.PasswordHash, user.PasswordSalt, user.IsAdmin)
	var created domain.User
	if err := row.StructScan(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM user_account WHERE id = $1`
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM user_account WHERE email = $1`
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, update domain.UserUpdate) (*domain.User, error) {
	setParts := []string{}
	args := []any{}
	idx := 1

	if update.Username != nil {
		setParts = append(setParts, fmt.Sprintf("username = $%d", idx))
		args = append(args, *update.Username)
		idx++
	}
	if update.FirstName != nil {
		setParts = append(setParts, fmt.Sprintf("first_name = $%d", idx))
		args = append(args, *update.FirstName)
		idx++
	}
	if update.LastName != nil {
		setParts = append(setParts, fmt.Sprintf("last_name = $%d", idx))
		args = append(args, *update.LastName)
		idx++
	}
	if update.AvatarURL != nil {
		setParts = append(setParts, fmt.Sprintf("avatar_url = $%d", idx))
		args = append(args, *update.AvatarURL)
		idx++
	}
	if update.Preferences != nil {
		setParts = append(setParts, fmt.Sprintf("preferences = $%d", idx))
		args = append(args, pq.StringArray(*update.Preferences))
		idx++
	}

	if len(setParts) == 0 {
		return r.FindByID(ctx, id)
	}

	query := fmt.Sprintf(`
        UPDATE user_account SET %s
        WHERE id = $%d
        RETURNING %s
    `, strings.Join(setParts, ", "), idx, userColumns)
	args = append(args, id)

	var user domain.User
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdateStripeCustomerID(ctx context.Context, id uuid.UUID, customerID string) (*domain.User, error) {
	const query = `
        UPDATE user_account SET stripe_customer_id = $1
        WHERE id = $2
        RETURNING ` + userColumns
	var user domain.User
	if err := r.db.QueryRowxContext(ctx, query, customerID, id).StructScan(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdateStripeInfo(ctx context.Context, id uuid.UUID, customerID, subscriptionID string) (*domain.User, error) {
	const query = `
        UPDATE user_account SET stripe_customer_id = $1, stripe_subscription_id = $2
        WHERE id = $3
        RETURNING ` + userColumns
	var user domain.User
	if err := r.db.QueryRowxContext(ctx, query, customerID, subscriptionID, id).StructScan(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	const query = `
        SELECT ` + userColumns + `
        FROM user_account
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2
    `
	rows, err := r.db.QueryxContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var user domain.User
		if err := rows.StructScan(&user); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM user_account`
	var count int64
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) CountWithBookings(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(DISTINCT user_id) FROM booking`
	var count int64
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, err
	}
	return count, nil
}

var _ ports.UserRepository = (*UserRepository)(nil)
