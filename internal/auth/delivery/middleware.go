package delivery

import (
	"net/http"
	"strings"

	"diary-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// extractBearer pulls the token out of an "Authorization: Bearer <token>"
// header. A missing, malformed, or non-Bearer header counts as no credential
// at all, which gets a different response than a credential that fails
// verification.
func extractBearer(header string) (string, bool) {
	if header == "" {
		return "", false
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}

	return parts[1], true
}

func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractBearer(c.GetHeader("Authorization"))
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "missing or invalid authorization header"})
			c.Abort()
			return
		}

		userID, err := authUsecase.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
