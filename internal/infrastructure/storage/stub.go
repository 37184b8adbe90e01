package storage

import (
	"context"
	"errors"
	"sync"
	"time"

	catalogapp "github.com/dyqani/backend/internal/application/catalog"
)

// StubObjectStorage is an in-memory ObjectStorageService used in development
// and tests when no bucket is configured. Keys are tracked so the
// confirmation flow behaves like the real thing.
type StubObjectStorage struct {
	mu      sync.Mutex
	known   map[string]bool
	BaseURL string
}

// NewStubObjectStorage creates a new StubObjectStorage
func NewStubObjectStorage() *StubObjectStorage {
	return &StubObjectStorage{
		known:   make(map[string]bool),
		BaseURL: "https://storage.invalid",
	}
}

// Ensure StubObjectStorage implements ObjectStorageService
var _ catalogapp.ObjectStorageService = (*StubObjectStorage)(nil)

// GenerateUploadURL returns a fake upload URL and marks the key as known
func (s *StubObjectStorage) GenerateUploadURL(_ context.Context, storageKey, _ string, expiresIn time.Duration) (string, time.Time, error) {
	if storageKey == "" {
		return "", time.Time{}, errors.New("storage key is required")
	}

	s.mu.Lock()
	s.known[storageKey] = true
	s.mu.Unlock()

	return s.BaseURL + "/upload/" + storageKey, time.Now().Add(expiresIn), nil
}

// GenerateDownloadURL returns a fake download URL
func (s *StubObjectStorage) GenerateDownloadURL(_ context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error) {
	if storageKey == "" {
		return "", time.Time{}, errors.New("storage key is required")
	}
	return s.BaseURL + "/download/" + storageKey, time.Now().Add(expiresIn), nil
}

// DeleteObject forgets the key
func (s *StubObjectStorage) DeleteObject(_ context.Context, storageKey string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}

	s.mu.Lock()
	delete(s.known, storageKey)
	s.mu.Unlock()
	return nil
}

// ObjectExists reports whether an upload URL was issued for the key
func (s *StubObjectStorage) ObjectExists(_ context.Context, storageKey string) (bool, error) {
	if storageKey == "" {
		return false, errors.New("storage key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.known[storageKey], nil
}
