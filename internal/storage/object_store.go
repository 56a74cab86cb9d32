// internal/storage/object_store.go
package storage

import (
    "context"
    "fmt"
    "io"
    "os"
    "path"
    "strings"

    "github.com/google/uuid"
    "github.com/minio/minio-go/v7"
    "github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectStore accepts a binary upload and returns a stable public URL.
type ObjectStore interface {
    Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}

// MinioStore is the S3-compatible bucket holding campaign banners.
type MinioStore struct {
    Client    *minio.Client
    Bucket    string
    PublicURL string
}

// NewMinioStore builds the store from environment configuration.
func NewMinioStore() (*MinioStore, error) {
    endpoint := os.Getenv("STORAGE_ENDPOINT")
    accessKey := os.Getenv("STORAGE_ACCESS_KEY")
    secretKey := os.Getenv("STORAGE_SECRET_KEY")
    bucket := os.Getenv("STORAGE_BUCKET")
    publicURL := os.Getenv("STORAGE_PUBLIC_URL")
    useSSL := os.Getenv("STORAGE_USE_SSL") == "true"

    if endpoint == "" || bucket == "" {
        return nil, fmt.Errorf("STORAGE_ENDPOINT and STORAGE_BUCKET must be set")
    }
    if publicURL == "" {
        scheme := "http"
        if useSSL {
            scheme = "https"
        }
        publicURL = fmt.Sprintf("%s://%s", scheme, endpoint)
    }

    client, err := minio.New(endpoint, &minio.Options{
        Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
        Secure: useSSL,
    })
    if err != nil {
        return nil, fmt.Errorf("failed to connect to object store: %w", err)
    }

    return &MinioStore{
        Client:    client,
        Bucket:    bucket,
        PublicURL: strings.TrimRight(publicURL, "/"),
    }, nil
}

// Upload puts the object and returns its public URL.
func (s *MinioStore) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
    _, err := s.Client.PutObject(ctx, s.Bucket, key, r, size, minio.PutObjectOptions{
        ContentType:  contentType,
        CacheControl: "max-age=3600",
    })
    if err != nil {
        return "", err
    }
    return s.objectURL(key), nil
}

func (s *MinioStore) objectURL(key string) string {
    return fmt.Sprintf("%s/%s/%s", s.PublicURL, s.Bucket, key)
}

// ObjectKey builds a collision-free key for an uploaded file, keeping the
// original extension.
func ObjectKey(filename string) string {
    return uuid.NewString() + strings.ToLower(path.Ext(filename))
}
