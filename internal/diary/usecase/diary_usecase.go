package usecase

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"diary-backend/internal/diary/domain"
	"diary-backend/internal/diary/repository"

	"github.com/google/uuid"
)

// diaryUsecase implements DiaryUsecase interface
type diaryUsecase struct {
	entryRepo repository.EntryRepository
	blobStore BlobStore
}

// NewDiaryUsecase creates a new instance of diaryUsecase
func NewDiaryUsecase(entryRepo repository.EntryRepository, blobStore BlobStore) DiaryUsecase {
	return &diaryUsecase{
		entryRepo: entryRepo,
		blobStore: blobStore,
	}
}

func (u *diaryUsecase) CreateEntry(ctx context.Context, userID string, req CreateEntryRequest) (*domain.Entry, error) {
	if req.Content == "" {
		return nil, ErrContentRequired
	}

	now := time.Now()
	entry := &domain.Entry{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if req.Image != nil {
		if !strings.HasPrefix(req.Image.ContentType, "image/") {
			return nil, ErrInvalidImage
		}
		if req.Image.Size > MaxImageSize {
			return nil, ErrImageTooLarge
		}

		key := storageKey(userID, req.Image.Filename)
		url, err := u.blobStore.Upload(ctx, key, req.Image.Reader, req.Image.Size, req.Image.ContentType)
		if err != nil {
			return nil, err
		}
		entry.ImageURL = url
		entry.ImageKey = key
	}

	if err := u.entryRepo.Create(entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (u *diaryUsecase) GetEntryByID(userID, entryID string) (*domain.Entry, error) {
	entry, err := u.entryRepo.FindByID(entryID)
	if err != nil {
		return nil, err
	}
	// A foreign entry looks exactly like a missing one.
	if entry == nil || entry.UserID != userID {
		return nil, ErrEntryNotFound
	}
	return entry, nil
}

func (u *diaryUsecase) GetUserEntries(userID string) ([]*domain.Entry, error) {
	entries, err := u.entryRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*domain.Entry{}
	}
	return entries, nil
}

func (u *diaryUsecase) DeleteEntry(ctx context.Context, userID, entryID string) error {
	entry, err := u.GetEntryByID(userID, entryID)
	if err != nil {
		return err
	}

	// Best-effort blob cleanup: a failed delete must not keep the entry alive.
	if entry.ImageKey != "" {
		if err := u.blobStore.Delete(ctx, entry.ImageKey); err != nil {
			log.Printf("[WARN] failed to delete image blob %s: %v", entry.ImageKey, err)
		}
	}

	return u.entryRepo.Delete(entry.ID)
}

// storageKey builds a per-user object key, keeping the original extension.
func storageKey(userID, filename string) string {
	return fmt.Sprintf("uploads/%s/%s%s", userID, uuid.New(), filepath.Ext(filename))
}
