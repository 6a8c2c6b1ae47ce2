package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/fortistravel/fortis-tourism-backend/internal/domain"
	"github.com/fortistravel/fortis-tourism-backend/internal/media"
	"github.com/fortistravel/fortis-tourism-backend/internal/repository/ports"
)

var ErrDestinationNotFound = errors.New("destination not found")

type DestinationImageUpload struct {
	Reader      io.Reader
	Size        int64
	FileName    string
	ContentType string
}

type DestinationServiceConfig struct {
	ImageBucket       string
	MaxImageBytes     int64
	ImageProcessor    media.Processor
	ImageMaxDimension int
}

type DestinationService struct {
	destinations ports.DestinationRepository
	storage      ports.ObjectStorage

	imageBucket       string
	maxImageBytes     int64
	imageProcessor    media.Processor
	imageMaxDimension int
}

const defaultMaxImageBytes = int64(5 * 1024 * 1024)

func NewDestinationService(destRepo ports.DestinationRepository, storage ports.ObjectStorage, cfg DestinationServiceConfig) *DestinationService {
	maxBytes := cfg.MaxImageBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxImageBytes
	}
	maxDimension := cfg.ImageMaxDimension
	if maxDimension <= 0 {
		maxDimension = media.DefaultMaxDimension
	}
	return &DestinationService{
		destinations:      destRepo,
		storage:           storage,
		imageBucket:       strings.TrimSpace(cfg.ImageBucket),
		maxImageBytes:     maxBytes,
		imageProcessor:    cfg.ImageProcessor,
		imageMaxDimension: maxDimension,
	}
}

func (s *DestinationService) List(ctx context.Context) ([]domain.Destination, error) {
	return s.destinations.List(ctx)
}

func (s *DestinationService) Get(ctx context.Context, id uuid.UUID) (*domain.Destination, error) {
	dest, err := s.destinations.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrDestinationNotFound
		}
		return nil, err
	}
	return dest, nil
}

func (s *DestinationService) ListByCategory(ctx context.Context, category domain.DestinationCategory) ([]domain.Destination, error) {
	if !category.Valid() {
		return nil, NewValidationError(fmt.Sprintf("unknown category %q", category))
	}
	return s.destinations.ListByCategory(ctx, category)
}

func (s *DestinationService) ListPopular(ctx context.Context) ([]domain.Destination, error) {
	return s.destinations.ListPopular(ctx)
}

// Search matches the query case-insensitively against name, country,
// and description. An empty query returns the full catalog.
func (s *DestinationService) Search(ctx context.Context, query string) ([]domain.Destination, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return s.destinations.List(ctx)
	}
	return s.destinations.Search(ctx, trimmed)
}

func (s *DestinationService) Create(ctx context.Context, fields domain.DestinationFields) (*domain.Destination, error) {
	if err := validateDestinationFields(fields, true); err != nil {
		return nil, err
	}
	return s.destinations.Create(ctx, fields)
}

func (s *DestinationService) Update(ctx context.Context, id uuid.UUID, fields domain.DestinationFields) (*domain.Destination, error) {
	if err := validateDestinationFields(fields, false); err != nil {
		return nil, err
	}
	dest, err := s.destinations.Update(ctx, id, fields)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrDestinationNotFound
		}
		return nil, err
	}
	return dest, nil
}

// Delete is a no-op when the id is already gone.
func (s *DestinationService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.destinations.Delete(ctx, id)
}

// UploadImage resizes the upload if needed, stores it in the image
// bucket, and appends the resulting URL to the destination's gallery.
func (s *DestinationService) UploadImage(ctx context.Context, id uuid.UUID, upload DestinationImageUpload) (*domain.Destination, error) {
	if s.storage == nil {
		return nil, errors.New("object storage is not configured")
	}
	dest, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if upload.Size > s.maxImageBytes {
		return nil, NewValidationError(fmt.Sprintf("image exceeds %d bytes", s.maxImageBytes))
	}

	reader := upload.Reader
	size := upload.Size
	contentType := upload.ContentType
	if s.imageProcessor != nil {
		result, err := s.imageProcessor.Process(ctx, media.Upload{
			Reader:      upload.Reader,
			Size:        upload.Size,
			FileName:    upload.FileName,
			ContentType: upload.ContentType,
		}, s.imageMaxDimension)
		if err != nil {
			return nil, NewValidationError(err.Error())
		}
		reader = bytes.NewReader(result.Bytes)
		size = int64(len(result.Bytes))
		contentType = result.ContentType
	}

	ext := strings.ToLower(filepath.Ext(upload.FileName))
	if ext == "" {
		ext = ".jpg"
	}
	objectName := fmt.Sprintf("destinations/%s/%s%s", dest.ID, uuid.NewString(), ext)

	url, err := s.storage.Upload(ctx, s.imageBucket, objectName, contentType, reader, size)
	if err != nil {
		return nil, err
	}

	images := append(append([]string(nil), dest.Images...), url)
	return s.Update(ctx, id, domain.DestinationFields{Images: &images})
}

func validateDestinationFields(fields domain.DestinationFields, creating bool) error {
	if creating {
		if fields.Name == nil || strings.TrimSpace(*fields.Name) == "" {
			return NewValidationError("name is required")
		}
		if fields.Country == nil || strings.TrimSpace(*fields.Country) == "" {
			return NewValidationError("country is required")
		}
		if fields.Category == nil {
			return NewValidationError("category is required")
		}
		if fields.Price == nil {
			return NewValidationError("price is required")
		}
		if fields.Difficulty == nil {
			return NewValidationError("difficulty is required")
		}
	}
	if fields.Category != nil && !fields.Category.Valid() {
		return NewValidationError(fmt.Sprintf("unknown category %q", *fields.Category))
	}
	if fields.Difficulty != nil && !fields.Difficulty.Valid() {
		return NewValidationError(fmt.Sprintf("unknown difficulty %q", *fields.Difficulty))
	}
	if fields.Price != nil && *fields.Price <= 0 {
		return NewValidationError("price must be positive")
	}
	if fields.Rating != nil && (*fields.Rating < 0 || *fields.Rating > 5) {
		return NewValidationError("rating must be between 0 and 5")
	}
	if fields.Latitude != nil && (*fields.Latitude < -90 || *fields.Latitude > 90) {
		return NewValidationError("latitude out of range")
	}
	if fields.Longitude != nil && (*fields.Longitude < -180 || *fields.Longitude > 180) {
		return NewValidationError("longitude out of range")
	}
	return nil
}
