package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubObjectStorage_UploadThenExists(t *testing.T) {
	stub := NewStubObjectStorage()
	ctx := context.Background()

	url, expiresAt, err := stub.GenerateUploadURL(ctx, "uploads/logo/a.png", "image/png", 10*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "https://storage.invalid/upload/uploads/logo/a.png", url)
	assert.True(t, expiresAt.After(time.Now()))

	exists, err := stub.ObjectExists(ctx, "uploads/logo/a.png")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = stub.ObjectExists(ctx, "uploads/logo/other.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStubObjectStorage_DeleteForgetsKey(t *testing.T) {
	stub := NewStubObjectStorage()
	ctx := context.Background()

	_, _, err := stub.GenerateUploadURL(ctx, "uploads/banner/b.jpg", "image/jpeg", time.Minute)
	require.NoError(t, err)

	require.NoError(t, stub.DeleteObject(ctx, "uploads/banner/b.jpg"))

	exists, err := stub.ObjectExists(ctx, "uploads/banner/b.jpg")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStubObjectStorage_EmptyKeyRejected(t *testing.T) {
	stub := NewStubObjectStorage()
	ctx := context.Background()

	_, _, err := stub.GenerateUploadURL(ctx, "", "image/png", time.Minute)
	assert.Error(t, err)

	_, _, err = stub.GenerateDownloadURL(ctx, "", time.Minute)
	assert.Error(t, err)

	_, err = stub.ObjectExists(ctx, "")
	assert.Error(t, err)
}
