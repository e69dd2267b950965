package domain

import "time"

// Entry represents one diary record owned by exactly one user.
// The owner id and the blob storage key stay internal; the wire projection
// is id/title/content/imageUrl/createdAt/updatedAt.
type Entry struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"-" gorm:"index;not null"`
	Title     string    `json:"title"`
	Content   string    `json:"content" gorm:"not null"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	ImageKey  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
