package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/fortistravel/fortis-tourism-backend/internal/domain"
	"github.com/fortistravel/fortis-tourism-backend/internal/repository/memory"
)

type stubObjectStorage struct {
	uploads []struct {
		bucket      string
		objectName  string
		contentType string
		size        int64
		data        []byte
	}
	err error
}

func (s *stubObjectStorage) Upload(ctx context.Context, bucket, objectName, contentType string, reader io.Reader, size int64) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	s.uploads = append(s.uploads, struct {
		bucket      string
		objectName  string
		contentType string
		size        int64
		data        []byte
	}{bucket, objectName, contentType, size, data})
	return "https://cdn.example.com/" + bucket + "/" + objectName, nil
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func catPtr(c domain.DestinationCategory) *domain.DestinationCategory {
	return &c
}

func diffPtr(d domain.DestinationDifficulty) *domain.DestinationDifficulty {
	return &d
}

func validDestinationFields() domain.DestinationFields {
	return domain.DestinationFields{
		Name:       strPtr("Petra"),
		Country:    strPtr("Jordan"),
		Category:   catPtr(domain.CategoryHistorical),
		Price:      floatPtr(2100),
		Difficulty: diffPtr(domain.DifficultyModerate),
	}
}

func TestDestinationCreateAndGet(t *testing.T) {
	store := memory.NewStore()
	svc := NewDestinationService(store.Destinations(), nil, DestinationServiceConfig{})
	ctx := context.Background()

	created, err := svc.Create(ctx, validDestinationFields())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected a generated destination ID")
	}

	fetched, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if fetched.Name != "Petra" || fetched.Category != domain.CategoryHistorical {
		t.Fatalf("unexpected destination: %+v", fetched)
	}

	if _, err := svc.Get(ctx, uuid.New()); !errors.Is(err, ErrDestinationNotFound) {
		t.Fatalf("expected ErrDestinationNotFound, got %v", err)
	}
}

func TestDestinationCreateValidation(t *testing.T) {
	svc := NewDestinationService(memory.NewStore().Destinations(), nil, DestinationServiceConfig{})
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*domain.DestinationFields)
	}{
		{"missing name", func(f *domain.DestinationFields) { f.Name = nil }},
		{"blank country", func(f *domain.DestinationFields) { f.Country = strPtr("  ") }},
		{"missing category", func(f *domain.DestinationFields) { f.Category = nil }},
		{"bad category", func(f *domain.DestinationFields) { f.Category = catPtr("volcanic") }},
		{"missing price", func(f *domain.DestinationFields) { f.Price = nil }},
		{"negative price", func(f *domain.DestinationFields) { f.Price = floatPtr(-1) }},
		{"bad difficulty", func(f *domain.DestinationFields) { f.Difficulty = diffPtr("extreme") }},
		{"rating out of range", func(f *domain.DestinationFields) { f.Rating = floatPtr(5.1) }},
		{"latitude out of range", func(f *domain.DestinationFields) { f.Latitude = floatPtr(91) }},
	}
	for _, tc := range cases {
		fields := validDestinationFields()
		tc.mutate(&fields)
		if _, err := svc.Create(ctx, fields); !errors.Is(err, ErrValidation) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestDestinationUpdatePartial(t *testing.T) {
	store := memory.NewStore()
	svc := NewDestinationService(store.Destinations(), nil, DestinationServiceConfig{})
	ctx := context.Background()

	created, err := svc.Create(ctx, validDestinationFields())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := svc.Update(ctx, created.ID, domain.DestinationFields{Price: floatPtr(2400)})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Price != 2400 {
		t.Fatalf("expected price 2400, got %v", updated.Price)
	}
	if updated.Name != "Petra" {
		t.Fatalf("expected untouched name, got %q", updated.Name)
	}

	if _, err := svc.Update(ctx, uuid.New(), domain.DestinationFields{Price: floatPtr(1)}); !errors.Is(err, ErrDestinationNotFound) {
		t.Fatalf("expected ErrDestinationNotFound, got %v", err)
	}
}

func TestDestinationSearchEmptyQueryReturnsCatalog(t *testing.T) {
	store := memory.NewSeededStore()
	svc := NewDestinationService(store.Destinations(), nil, DestinationServiceConfig{})

	all, err := svc.Search(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected the full seeded catalog, got %d", len(all))
	}
}

func TestDestinationListByCategoryRejectsUnknown(t *testing.T) {
	svc := NewDestinationService(memory.NewStore().Destinations(), nil, DestinationServiceConfig{})

	if _, err := svc.ListByCategory(context.Background(), "volcanic"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUploadImageStoresAndAppendsURL(t *testing.T) {
	store := memory.NewStore()
	storage := &stubObjectStorage{}
	processor := &stubImageProcessor{output: []byte("resized"), contentType: "image/jpeg"}
	svc := NewDestinationService(store.Destinations(), storage, DestinationServiceConfig{
		ImageBucket:    "fortis-destinations",
		ImageProcessor: processor,
	})
	ctx := context.Background()

	created, err := svc.Create(ctx, validDestinationFields())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	payload := "raw-image-bytes"
	updated, err := svc.UploadImage(ctx, created.ID, DestinationImageUpload{
		Reader:      strings.NewReader(payload),
		Size:        int64(len(payload)),
		FileName:    "petra.jpg",
		ContentType: "image/jpeg",
	})
	if err != nil {
		t.Fatalf("UploadImage returned error: %v", err)
	}

	if processor.calls != 1 {
		t.Fatalf("expected processor to run once, ran %d times", processor.calls)
	}
	if len(storage.uploads) != 1 {
		t.Fatalf("expected one stored object, got %d", len(storage.uploads))
	}
	stored := storage.uploads[0]
	if stored.bucket != "fortis-destinations" {
		t.Fatalf("unexpected bucket %q", stored.bucket)
	}
	if !strings.HasPrefix(stored.objectName, "destinations/"+created.ID.String()+"/") {
		t.Fatalf("unexpected object name %q", stored.objectName)
	}
	if string(stored.data) != "resized" {
		t.Fatalf("expected processed bytes to be stored, got %q", stored.data)
	}

	if len(updated.Images) != 1 || !strings.HasPrefix(updated.Images[0], "https://cdn.example.com/") {
		t.Fatalf("expected stored URL in gallery, got %v", updated.Images)
	}
}

func TestUploadImageRejectsOversizedUpload(t *testing.T) {
	store := memory.NewStore()
	svc := NewDestinationService(store.Destinations(), &stubObjectStorage{}, DestinationServiceConfig{
		MaxImageBytes: 10,
	})
	ctx := context.Background()

	created, err := svc.Create(ctx, validDestinationFields())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	_, err = svc.UploadImage(ctx, created.ID, DestinationImageUpload{
		Reader:   strings.NewReader("way more than ten bytes"),
		Size:     23,
		FileName: "big.jpg",
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUploadImageRejectsBadImage(t *testing.T) {
	store := memory.NewStore()
	processor := &stubImageProcessor{err: errors.New("media: unsupported format")}
	svc := NewDestinationService(store.Destinations(), &stubObjectStorage{}, DestinationServiceConfig{
		ImageProcessor: processor,
	})
	ctx := context.Background()

	created, err := svc.Create(ctx, validDestinationFields())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	_, err = svc.UploadImage(ctx, created.ID, DestinationImageUpload{
		Reader:   strings.NewReader("not an image"),
		Size:     12,
		FileName: "note.txt",
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
