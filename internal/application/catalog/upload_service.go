package catalog

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/dyqani/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ObjectStorageService defines the interface for object storage operations.
// Implemented by the infrastructure layer (S3 or the local stub).
type ObjectStorageService interface {
	// GenerateUploadURL generates a presigned URL for uploading a file
	GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error)

	// GenerateDownloadURL generates a presigned URL for downloading a file
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error)

	// DeleteObject deletes an object from storage
	DeleteObject(ctx context.Context, storageKey string) error

	// ObjectExists checks if an object exists in storage
	ObjectExists(ctx context.Context, storageKey string) (bool, error)
}

// Upload kinds accepted by the storefront and backoffice
const (
	UploadKindLogo   = "logo"
	UploadKindBanner = "banner"
)

var allowedImageTypes = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

// RequestUploadRequest asks for a presigned upload slot
type RequestUploadRequest struct {
	Kind        string `json:"kind" binding:"required,oneof=logo banner"`
	FileName    string `json:"file_name" binding:"required,max=200"`
	ContentType string `json:"content_type" binding:"required"`
}

// RequestUploadResponse carries the presigned upload URL and the storage key
// the client echoes back (as a logo key on checkout or a banner image key)
type RequestUploadResponse struct {
	Key       string    `json:"key"`
	UploadURL string    `json:"upload_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UploadService issues presigned upload and download URLs for customer logo
// files and banner images. Files never pass through the API server.
type UploadService struct {
	storage   ObjectStorageService
	keyPrefix string
	expiresIn time.Duration
}

// NewUploadService creates a new upload service
func NewUploadService(storage ObjectStorageService, keyPrefix string, expiresIn time.Duration) *UploadService {
	if expiresIn <= 0 {
		expiresIn = 15 * time.Minute
	}
	return &UploadService{
		storage:   storage,
		keyPrefix: strings.Trim(keyPrefix, "/"),
		expiresIn: expiresIn,
	}
}

// RequestUpload validates the content type and returns a presigned PUT URL
func (s *UploadService) RequestUpload(ctx context.Context, req RequestUploadRequest) (*RequestUploadResponse, error) {
	ext, ok := allowedImageTypes[strings.ToLower(req.ContentType)]
	if !ok {
		return nil, shared.NewDomainError("UNSUPPORTED_FILE_TYPE", "Only PNG, JPEG, WebP and SVG images are accepted")
	}

	key := s.buildKey(req.Kind, ext)
	uploadURL, expiresAt, err := s.storage.GenerateUploadURL(ctx, key, req.ContentType, s.expiresIn)
	if err != nil {
		return nil, err
	}

	return &RequestUploadResponse{
		Key:       key,
		UploadURL: uploadURL,
		ExpiresAt: expiresAt,
	}, nil
}

// DownloadURL returns a presigned GET URL for a previously uploaded object
func (s *UploadService) DownloadURL(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", shared.NewDomainError("INVALID_KEY", "Storage key cannot be empty")
	}

	exists, err := s.storage.ObjectExists(ctx, key)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", shared.ErrNotFound
	}

	url, _, err := s.storage.GenerateDownloadURL(ctx, key, s.expiresIn)
	return url, err
}

// Delete removes an uploaded object (admin cleanup)
func (s *UploadService) Delete(ctx context.Context, key string) error {
	if key == "" {
		return shared.NewDomainError("INVALID_KEY", "Storage key cannot be empty")
	}
	return s.storage.DeleteObject(ctx, key)
}

func (s *UploadService) buildKey(kind, ext string) string {
	name := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	if s.keyPrefix == "" {
		return path.Join(kind, name)
	}
	return path.Join(s.keyPrefix, kind, name)
}
