package delivery

import (
	"errors"
	"net/http"

	authdto "diary-backend/internal/auth/dto"
	"diary-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Register creates a new account
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	resp, err := h.authUsecase.Register(&req)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailExists) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to register"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Login authenticates an existing account
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	resp, err := h.authUsecase.Login(&req)
	if err != nil {
		// One message for both failure kinds so callers cannot tell whether
		// the email exists.
		if errors.Is(err, usecase.ErrUserNotFound) || errors.Is(err, usecase.ErrInvalidPassword) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to log in"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me returns the authenticated user's profile
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString("userID")

	user, err := h.authUsecase.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "invalid or expired token"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, user)
}
