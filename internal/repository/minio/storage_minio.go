package minio

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/fortistravel/fortis-tourism-backend/internal/repository/ports"
)

func NewClient(endpoint, key, secret string, useSSL bool) (*minio.Client, error) {
	return minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(key, secret, ""),
		Secure: useSSL,
	})
}

// ObjectStorage adapts a minio client to the ports.ObjectStorage
// contract. publicBase, when set, overrides the endpoint in returned
// URLs so objects resolve through a CDN or reverse proxy.
type ObjectStorage struct {
	client     *minio.Client
	publicBase string
	useSSL     bool
}

func NewObjectStorage(client *minio.Client, publicBase string, useSSL bool) *ObjectStorage {
	return &ObjectStorage{
		client:     client,
		publicBase: strings.TrimRight(publicBase, "/"),
		useSSL:     useSSL,
	}
}

func (s *ObjectStorage) Upload(ctx context.Context, bucket, objectName, contentType string, reader io.Reader, size int64) (string, error) {
	_, err := s.client.PutObject(ctx, bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}

	if s.publicBase != "" {
		return fmt.Sprintf("%s/%s/%s", s.publicBase, bucket, objectName), nil
	}
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.client.EndpointURL().Host, bucket, objectName), nil
}

var _ ports.ObjectStorage = (*ObjectStorage)(nil)
