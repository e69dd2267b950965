package repository

import (
	"errors"

	"diary-backend/internal/diary/domain"

	"gorm.io/gorm"
)

// gormEntryRepository implements EntryRepository using GORM
type gormEntryRepository struct {
	db *gorm.DB
}

// NewGormEntryRepository creates a new GORM-based EntryRepository
func NewGormEntryRepository(db *gorm.DB) EntryRepository {
	return &gormEntryRepository{db: db}
}

func (r *gormEntryRepository) Create(entry *domain.Entry) error {
	return r.db.Create(entry).Error
}

func (r *gormEntryRepository) FindByID(id string) (*domain.Entry, error) {
	var entry domain.Entry
	err := r.db.Where("id = ?", id).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *gormEntryRepository) FindByUserID(userID string) ([]*domain.Entry, error) {
	var entries []*domain.Entry
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *gormEntryRepository) Delete(id string) error {
	return r.db.Delete(&domain.Entry{}, "id = ?", id).Error
}
