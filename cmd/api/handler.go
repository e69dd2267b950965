package api

import (
	authUsecase "diary-backend/internal/auth/usecase"
	diaryUsecase "diary-backend/internal/diary/usecase"
	"diary-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase  authUsecase.AuthUsecase
	diaryUsecase diaryUsecase.DiaryUsecase
	config       *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, diaryUc diaryUsecase.DiaryUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:  authUc,
		diaryUsecase: diaryUc,
		config:       cfg,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Setup routes
	SetupRoutes(r, h.authUsecase, h.diaryUsecase)

	return r.Run(addr)
}
