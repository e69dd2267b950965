package main

import (
	"log"

	api "diary-backend/cmd/api"
	authdomain "diary-backend/internal/auth/domain"
	authRepo "diary-backend/internal/auth/repository"
	authUsecase "diary-backend/internal/auth/usecase"
	diarydomain "diary-backend/internal/diary/domain"
	diaryRepo "diary-backend/internal/diary/repository"
	diaryUsecase "diary-backend/internal/diary/usecase"
	"diary-backend/pkg/config"
	"diary-backend/pkg/database"
	"diary-backend/pkg/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable is required")
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &diarydomain.Entry{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize blob storage
	blobStore, err := storage.NewS3Store(cfg)
	if err != nil {
		log.Fatal("Failed to initialize blob storage:", err)
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	entryRepo := diaryRepo.NewGormEntryRepository(db)

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, cfg)
	diaryUsecaseInstance := diaryUsecase.NewDiaryUsecase(entryRepo, blobStore)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, diaryUsecaseInstance, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
