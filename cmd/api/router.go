package api

import (
	"net/http"

	"diary-backend/internal/auth/delivery"
	authUsecase "diary-backend/internal/auth/usecase"
	diaryDelivery "diary-backend/internal/diary/delivery"
	diaryUsecase "diary-backend/internal/diary/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, diaryUc diaryUsecase.DiaryUsecase) {
	authHandler := delivery.NewAuthHandler(authUc)
	diaryHandler := diaryDelivery.NewDiaryHandler(diaryUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", delivery.AuthMiddleware(authUc), authHandler.Me)
		}

		// Diary routes (protected)
		diary := api.Group("/diary")
		diary.Use(delivery.AuthMiddleware(authUc))
		{
			diary.POST("/entries", diaryHandler.CreateEntry)
			diary.GET("/entries", diaryHandler.GetEntries)
			diary.GET("/entries/:id", diaryHandler.GetEntryByID)
			diary.DELETE("/entries/:id", diaryHandler.DeleteEntry)
		}
	}
}
