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

const destinationColumns = `id, name, country, description, latitude, longitude, category,
           images, videos, price, rating, activities, highlights,
           best_season, duration, difficulty, is_popular, created_at`

type DestinationRepository struct {
	db *sqlx.DB
}

func NewDestinationRepo(db *sqlx.DB) *DestinationRepository {
	return &DestinationRepository{db: db}
}

func (r *DestinationRepository) Create(ctx context.Context, fields domain.DestinationFields) (*domain.Destination, error) {
	const query = `
        INSERT INTO travel_destination (
            name, country, description, latitude, longitude, category,
            images, videos, price, rating, activities, highlights,
            best_season, duration, difficulty, is_popular
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
        RETURNING ` + destinationColumns

	row := r.db.QueryRowxContext(ctx, query,
		stringValue(fields.Name), stringValue(fields.Country), stringValue(fields.Description),
		floatValue(fields.Latitude), floatValue(fields.Longitude), categoryValue(fields.Category),
		arrayValue(fields.Images), arrayValue(fields.Videos),
		floatValue(fields.Price), floatValue(fields.Rating),
		arrayValue(fields.Activities), arrayValue(fields.Highlights),
		stringValue(fields.BestSeason), stringValue(fields.Duration),
		difficultyValue(fields.Difficulty), boolValue(fields.IsPopular))

	var dest domain.Destination
	if err := row.StructScan(&dest); err != nil {
		return nil, err
	}
	return &dest, nil
}

func (r *DestinationRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Destination, error) {
	const query = `SELECT ` + destinationColumns + ` FROM travel_destination WHERE id = $1`
	var dest domain.Destination
	if err := r.db.GetContext(ctx, &dest, query, id); err != nil {
		return nil, err
	}
	return &dest, nil
}

func (r *DestinationRepository) List(ctx context.Context) ([]domain.Destination, error) {
	const query = `SELECT ` + destinationColumns + ` FROM travel_destination ORDER BY created_at DESC`
	return r.queryDestinations(ctx, query)
}

func (r *DestinationRepository) ListByCategory(ctx context.Context, category domain.DestinationCategory) ([]domain.Destination, error) {
	const query = `
        SELECT ` + destinationColumns + `
        FROM travel_destination
        WHERE category = $1
        ORDER BY created_at DESC
    `
	return r.queryDestinations(ctx, query, category)
}

func (r *DestinationRepository) ListPopular(ctx context.Context) ([]domain.Destination, error) {
	const query = `
        SELECT ` + destinationColumns + `
        FROM travel_destination
        WHERE is_popular
        ORDER BY rating DESC
    `
	return r.queryDestinations(ctx, query)
}

func (r *DestinationRepository) Search(ctx context.Context, query string) ([]domain.Destination, error) {
	const stmt = `
        SELECT ` + destinationColumns + `
        FROM travel_destination
        WHERE name ILIKE $1 OR country ILIKE $1 OR description ILIKE $1
    `
	pattern := "%" + escapeLike(query) + "%"
	return r.queryDestinations(ctx, stmt, pattern)
}

func (r *DestinationRepository) Update(ctx context.Context, id uuid.UUID, fields domain.DestinationFields) (*domain.Destination, error) {
	setParts := []string{}
	args := []any{}
	idx := 1

	add := func(column string, value any) {
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if fields.Name != nil {
		add("name", *fields.Name)
	}
	if fields.Country != nil {
		add("country", *fields.Country)
	}
	if fields.Description != nil {
		add("description", *fields.Description)
	}
	if fields.Latitude != nil {
		add("latitude", *fields.Latitude)
	}
	if fields.Longitude != nil {
		add("longitude", *fields.Longitude)
	}
	if fields.Category != nil {
		add("category", *fields.Category)
	}
	if fields.Images != nil {
		add("images", pq.StringArray(*fields.Images))
	}
	if fields.Videos != nil {
		add("videos", pq.StringArray(*fields.Videos))
	}
	if fields.Price != nil {
		add("price", *fields.Price)
	}
	if fields.Rating != nil {
		add("rating", *fields.Rating)
	}
	if fields.Activities != nil {
		add("activities", pq.StringArray(*fields.Activities))
	}
	if fields.Highlights != nil {
		add("highlights", pq.StringArray(*fields.Highlights))
	}
	if fields.BestSeason != nil {
		add("best_season", *fields.BestSeason)
	}
	if fields.Duration != nil {
		add("duration", *fields.Duration)
	}
	if fields.Difficulty != nil {
		add("difficulty", *fields.Difficulty)
	}
	if fields.IsPopular != nil {
		add("is_popular", *fields.IsPopular)
	}

	if len(setParts) == 0 {
		return r.FindByID(ctx, id)
	}

	query := fmt.Sprintf(`
        UPDATE travel_destination SET %s
        WHERE id = $%d
        RETURNING %s
    `, strings.Join(setParts, ", "), idx, destinationColumns)
	args = append(args, id)

	var dest domain.Destination
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&dest); err != nil {
		return nil, err
	}
	return &dest, nil
}

func (r *DestinationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM travel_destination WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *DestinationRepository) queryDestinations(ctx context.Context, query string, args ...any) ([]domain.Destination, error) {
	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	destinations := make([]domain.Destination, 0)
	for rows.Next() {
		var dest domain.Destination
		if err := rows.StructScan(&dest); err != nil {
			return nil, err
		}
		destinations = append(destinations, dest)
	}
	return destinations, rows.Err()
}

func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}

func stringValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func floatValue(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func boolValue(v *bool) bool {
	return v != nil && *v
}

func categoryValue(v *domain.DestinationCategory) domain.DestinationCategory {
	if v == nil {
		return ""
	}
	return *v
}

func difficultyValue(v *domain.DestinationDifficulty) domain.DestinationDifficulty {
	if v == nil {
		return ""
	}
	return *v
}

func arrayValue(v *[]string) pq.StringArray {
	if v == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(*v)
}

var _ ports.DestinationRepository = (*DestinationRepository)(nil)
