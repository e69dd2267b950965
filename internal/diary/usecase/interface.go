package usecase

import (
	"context"
	"errors"
	"io"

	"diary-backend/internal/diary/domain"
)

// MaxImageSize is the largest accepted image upload, in bytes.
const MaxImageSize = 4 << 20 // 4 MiB

// Sentinel errors returned by DiaryUsecase. ErrEntryNotFound covers both a
// missing entry and an entry owned by someone else; the two cases must stay
// indistinguishable to the caller.
var (
	ErrContentRequired = errors.New("content is required")
	ErrInvalidImage    = errors.New("uploaded file is not an image")
	ErrImageTooLarge   = errors.New("image exceeds maximum size")
	ErrEntryNotFound   = errors.New("entry not found")
)

// ImageUpload carries an incoming image before it reaches the blob store.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// CreateEntryRequest represents the fields of a new diary entry
type CreateEntryRequest struct {
	Title   string
	Content string
	Image   *ImageUpload
}

// BlobStore is the slice of the object-storage client the diary needs.
type BlobStore interface {
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// DiaryUsecase defines the interface for diary entry business logic
type DiaryUsecase interface {
	// CreateEntry validates the input, uploads the image if present, and
	// persists a new entry owned by the user
	CreateEntry(ctx context.Context, userID string, req CreateEntryRequest) (*domain.Entry, error)

	// GetEntryByID retrieves an entry (with ownership check)
	GetEntryByID(userID, entryID string) (*domain.Entry, error)

	// GetUserEntries retrieves all entries for a user, newest first
	GetUserEntries(userID string) ([]*domain.Entry, error)

	// DeleteEntry deletes an entry (with ownership check), cleaning up its
	// image blob on a best-effort basis
	DeleteEntry(ctx context.Context, userID, entryID string) error
}
