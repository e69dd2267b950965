package usecase

import (
	"errors"

	authdomain "diary-backend/internal/auth/domain"
	authdto "diary-backend/internal/auth/dto"
)

// Sentinel errors returned by AuthUsecase. The delivery layer matches them
// with errors.Is to pick a status code; Login failures are collapsed into
// one generic message there so callers cannot probe which emails exist.
var (
	ErrEmailExists     = errors.New("email already registered")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidToken    = errors.New("invalid or expired token")
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	// Register creates a new user and returns an access token for it
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)

	// Login checks the credentials and returns an access token
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)

	// IssueToken signs an access token for the given user id
	IssueToken(userID string) (string, error)

	// ValidateToken verifies signature and expiry and returns the subject id.
	// Validity is purely a function of the token itself; no session state.
	ValidateToken(tokenString string) (string, error)

	// GetUserByID loads the public profile of an authenticated user
	GetUserByID(id string) (*authdomain.User, error)
}
