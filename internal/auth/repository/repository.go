package repository

import authdomain "diary-backend/internal/auth/domain"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create persists a new user, assigning its id and timestamps
	Create(user *authdomain.User) error

	// FindByEmail returns the user with the given email, or nil if none exists
	FindByEmail(email string) (*authdomain.User, error)

	// FindByID returns the user with the given id, or nil if none exists
	FindByID(id string) (*authdomain.User, error)
}
