package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/fortistravel/fortis-tourism-backend/internal/domain"
)

type DestinationRepository interface {
	Create(ctx context.Context, fields domain.DestinationFields) (*domain.Destination, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Destination, error)
	List(ctx context.Context) ([]domain.Destination, error)
	ListByCategory(ctx context.Context, category domain.DestinationCategory) ([]domain.Destination, error)
	ListPopular(ctx context.Context) ([]domain.Destination, error)
	Search(ctx context.Context, query string) ([]domain.Destination, error)
	Update(ctx context.Context, id uuid.UUID, fields domain.DestinationFields) (*domain.Destination, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
