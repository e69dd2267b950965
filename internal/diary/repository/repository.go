package repository

import "diary-backend/internal/diary/domain"

// EntryRepository defines the interface for diary entry data access
type EntryRepository interface {
	// Create persists a new entry
	Create(entry *domain.Entry) error

	// FindByID finds an entry by its id, or returns nil if none exists
	FindByID(id string) (*domain.Entry, error)

	// FindByUserID returns all entries owned by the user, newest first
	FindByUserID(userID string) ([]*domain.Entry, error)

	// Delete deletes an entry by id
	Delete(id string) error
}
