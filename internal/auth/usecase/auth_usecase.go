package usecase

import (
	"time"

	authdomain "diary-backend/internal/auth/domain"
	authdto "diary-backend/internal/auth/dto"
	"diary-backend/internal/auth/repository"
	"diary-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTypeAccess = "access"

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	config   *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		config:   cfg,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error) {
	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return nil, ErrEmailExists
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Email:       req.Email,
		Password:    hashedPassword,
		DisplayName: req.DisplayName,
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	return u.tokenResponse(user)
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, ErrUserNotFound
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, ErrInvalidPassword
	}

	return u.tokenResponse(user)
}

func (u *authUsecase) GetUserByID(id string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (u *authUsecase) IssueToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"type":    tokenTypeAccess,
		"exp":     time.Now().Add(u.config.JWTAccessExpiry).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

func (u *authUsecase) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	if tokenType, ok := claims["type"].(string); !ok || tokenType != tokenTypeAccess {
		return "", ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return "", ErrInvalidToken
	}

	return userID, nil
}

func (u *authUsecase) tokenResponse(user *authdomain.User) (*authdto.TokenResponse, error) {
	accessToken, err := u.IssueToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User:        user,
	}, nil
}
