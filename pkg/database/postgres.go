package database

import (
	"diary-backend/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewPostgresConnection opens the process-wide GORM connection.
// The handle is created once in main and injected into every repository.
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
}
