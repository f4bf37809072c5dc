package storage

import (
	"context"
	"time"
)

// Default expiry duration for presigned download URLs.
const DefaultPresignedURLExpiry = 15 * time.Minute

// ExportStorage is the interface for backing up data exports to object
// storage.
type ExportStorage interface {
	// PutObject uploads an export blob under the given key.
	PutObject(ctx context.Context, objectKey string, data []byte, contentType string) error

	// GeneratePresignedDownloadURL creates a temporary URL that allows GET
	// requests for downloading an uploaded export.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// DeleteObject removes an export from the storage provider.
	DeleteObject(ctx context.Context, objectKey string) error
}
