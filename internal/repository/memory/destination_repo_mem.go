package memory

import (
	"context"
	"database/sql"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/fortistravel/fortis-tourism-backend/internal/domain"
	"github.com/fortistravel/fortis-tourism-backend/internal/repository/ports"
)

type DestinationRepository struct {
	store *Store
}

func (r *DestinationRepository) Create(ctx context.Context, fields domain.DestinationFields) (*domain.Destination, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	dest := domain.Destination{
		ID:        uuid.New(),
		Images:    []string{},
		Videos:    []string{},
		CreatedAt: r.store.now().UTC(),
	}
	applyDestinationFields(&dest, fields)
	r.store.destinations[dest.ID] = dest
	out := dest
	return &out, nil
}

func (r *DestinationRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Destination, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	dest, ok := r.store.destinations[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	out := dest
	return &out, nil
}

func (r *DestinationRepository) List(ctx context.Context) ([]domain.Destination, error) {
	return r.filter(func(domain.Destination) bool { return true }), nil
}

func (r *DestinationRepository) ListByCategory(ctx context.Context, category domain.DestinationCategory) ([]domain.Destination, error) {
	return r.filter(func(d domain.Destination) bool { return d.Category == category }), nil
}

func (r *DestinationRepository) ListPopular(ctx context.Context) ([]domain.Destination, error) {
	return r.filter(func(d domain.Destination) bool { return d.IsPopular }), nil
}

func (r *DestinationRepository) Search(ctx context.Context, query string) ([]domain.Destination, error) {
	needle := strings.ToLower(query)
	return r.filter(func(d domain.Destination) bool {
		return strings.Contains(strings.ToLower(d.Name), needle) ||
			strings.Contains(strings.ToLower(d.Country), needle) ||
			strings.Contains(strings.ToLower(d.Description), needle)
	}), nil
}

func (r *DestinationRepository) Update(ctx context.Context, id uuid.UUID, fields domain.DestinationFields) (*domain.Destination, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	dest, ok := r.store.destinations[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	applyDestinationFields(&dest, fields)
	r.store.destinations[id] = dest
	out := dest
	return &out, nil
}

func (r *DestinationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.destinations, id)
	return nil
}

func (r *DestinationRepository) filter(keep func(domain.Destination) bool) []domain.Destination {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	destinations := make([]domain.Destination, 0)
	for _, dest := range r.store.destinations {
		if keep(dest) {
			destinations = append(destinations, dest)
		}
	}
	sort.Slice(destinations, func(i, j int) bool {
		return destinations[i].CreatedAt.After(destinations[j].CreatedAt)
	})
	return destinations
}

func applyDestinationFields(dest *domain.Destination, fields domain.DestinationFields) {
	if fields.Name != nil {
		dest.Name = *fields.Name
	}
	if fields.Country != nil {
		dest.Country = *fields.Country
	}
	if fields.Description != nil {
		dest.Description = *fields.Description
	}
	if fields.Latitude != nil {
		dest.Latitude = *fields.Latitude
	}
	if fields.Longitude != nil {
		dest.Longitude = *fields.Longitude
	}
	if fields.Category != nil {
		dest.Category = *fields.Category
	}
	if fields.Images != nil {
		dest.Images = append([]string(nil), (*fields.Images)...)
	}
	if fields.Videos != nil {
		dest.Videos = append([]string(nil), (*fields.Videos)...)
	}
	if fields.Price != nil {
		dest.Price = *fields.Price
	}
	if fields.Rating != nil {
		dest.Rating = *fields.Rating
	}
	if fields.Activities != nil {
		dest.Activities = append([]string(nil), (*fields.Activities)...)
	}
	if fields.Highlights != nil {
		dest.Highlights = append([]string(nil), (*fields.Highlights)...)
	}
	if fields.BestSeason != nil {
		dest.BestSeason = *fields.BestSeason
	}
	if fields.Duration != nil {
		dest.Duration = *fields.Duration
	}
	if fields.Difficulty != nil {
		dest.Difficulty = *fields.Difficulty
	}
	if fields.IsPopular != nil {
		dest.IsPopular = *fields.IsPopular
	}
}

var _ ports.DestinationRepository = (*DestinationRepository)(nil)
