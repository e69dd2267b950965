package delivery

import (
	"errors"
	"net/http"

	"diary-backend/internal/diary/usecase"

	"github.com/gin-gonic/gin"
)

// DiaryHandler handles diary entry HTTP requests
type DiaryHandler struct {
	diaryUsecase usecase.DiaryUsecase
}

// NewDiaryHandler creates a new DiaryHandler
func NewDiaryHandler(diaryUsecase usecase.DiaryUsecase) *DiaryHandler {
	return &DiaryHandler{
		diaryUsecase: diaryUsecase,
	}
}

// CreateEntry creates a new diary entry with an optional image
// POST /api/diary/entries (multipart: title?, content, image?)
func (h *DiaryHandler) CreateEntry(c *gin.Context) {
	userID := c.GetString("userID")

	req := usecase.CreateEntryRequest{
		Title:   c.PostForm("title"),
		Content: c.PostForm("content"),
	}

	fileHeader, err := c.FormFile("image")
	if err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to read uploaded image"})
			return
		}
		defer file.Close()

		req.Image = &usecase.ImageUpload{
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Size:        fileHeader.Size,
			Reader:      file,
		}
	}

	entry, err := h.diaryUsecase.CreateEntry(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrContentRequired):
			c.JSON(http.StatusBadRequest, gin.H{"detail": "content is required"})
		case errors.Is(err, usecase.ErrInvalidImage):
			c.JSON(http.StatusBadRequest, gin.H{"detail": "uploaded file must be an image"})
		case errors.Is(err, usecase.ErrImageTooLarge):
			c.JSON(http.StatusBadRequest, gin.H{"detail": "image exceeds the 4 MiB limit"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to create diary entry"})
		}
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GetEntries returns all entries for the authenticated user, newest first
// GET /api/diary/entries
func (h *DiaryHandler) GetEntries(c *gin.Context) {
	userID := c.GetString("userID")

	entries, err := h.diaryUsecase.GetUserEntries(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to fetch diary entries"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// GetEntryByID returns a specific entry
// GET /api/diary/entries/:id
func (h *DiaryHandler) GetEntryByID(c *gin.Context) {
	userID := c.GetString("userID")
	entryID := c.Param("id")

	entry, err := h.diaryUsecase.GetEntryByID(userID, entryID)
	if err != nil {
		if errors.Is(err, usecase.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "diary entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to fetch diary entry"})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DeleteEntry deletes a specific entry
// DELETE /api/diary/entries/:id
func (h *DiaryHandler) DeleteEntry(c *gin.Context) {
	userID := c.GetString("userID")
	entryID := c.Param("id")

	if err := h.diaryUsecase.DeleteEntry(c.Request.Context(), userID, entryID); err != nil {
		if errors.Is(err, usecase.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "diary entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to delete diary entry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "diary entry deleted"})
}
