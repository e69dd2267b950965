package delivery

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"diary-backend/internal/diary/domain"
	"diary-backend/internal/diary/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDiaryUsecase records the last create request and returns canned results.
type stubDiaryUsecase struct {
	lastCreate *usecase.CreateEntryRequest
	entry      *domain.Entry
	entries    []*domain.Entry
	err        error
}

func (s *stubDiaryUsecase) CreateEntry(ctx context.Context, userID string, req usecase.CreateEntryRequest) (*domain.Entry, error) {
	s.lastCreate = &req
	return s.entry, s.err
}

func (s *stubDiaryUsecase) GetEntryByID(userID, entryID string) (*domain.Entry, error) {
	return s.entry, s.err
}

func (s *stubDiaryUsecase) GetUserEntries(userID string) ([]*domain.Entry, error) {
	return s.entries, s.err
}

func (s *stubDiaryUsecase) DeleteEntry(ctx context.Context, userID, entryID string) error {
	return s.err
}

func diaryRouter(uc usecase.DiaryUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("userID", "u1") })
	h := NewDiaryHandler(uc)
	r.POST("/entries", h.CreateEntry)
	r.GET("/entries", h.GetEntries)
	r.GET("/entries/:id", h.GetEntryByID)
	r.DELETE("/entries/:id", h.DeleteEntry)
	return r
}

func multipartBody(t *testing.T, fields map[string]string, imageName, imageType string, imageData []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if imageName != "" {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", `form-data; name="image"; filename="`+imageName+`"`)
		hdr.Set("Content-Type", imageType)
		part, err := mw.CreatePart(hdr)
		require.NoError(t, err)
		_, err = part.Write(imageData)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func sampleEntry() *domain.Entry {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Entry{
		ID:        "e1",
		UserID:    "u1",
		Title:     "T",
		Content:   "body",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCreateEntryHandler(t *testing.T) {
	uc := &stubDiaryUsecase{entry: sampleEntry()}
	r := diaryRouter(uc)

	body, contentType := multipartBody(t, map[string]string{"title": "T", "content": "body"}, "", "", nil)
	req := httptest.NewRequest(http.MethodPost, "/entries", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, uc.lastCreate)
	assert.Equal(t, "T", uc.lastCreate.Title)
	assert.Equal(t, "body", uc.lastCreate.Content)
	assert.Nil(t, uc.lastCreate.Image)

	// Owner id is internal; the projection exposes the entry fields only.
	assert.Contains(t, w.Body.String(), `"id":"e1"`)
	assert.NotContains(t, w.Body.String(), "u1")
}

func TestCreateEntryHandlerWithImage(t *testing.T) {
	uc := &stubDiaryUsecase{entry: sampleEntry()}
	r := diaryRouter(uc)

	body, contentType := multipartBody(t, map[string]string{"content": "body"}, "photo.png", "image/png", []byte("pngdata"))
	req := httptest.NewRequest(http.MethodPost, "/entries", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, uc.lastCreate.Image)
	assert.Equal(t, "photo.png", uc.lastCreate.Image.Filename)
	assert.Equal(t, "image/png", uc.lastCreate.Image.ContentType)
	assert.Equal(t, int64(len("pngdata")), uc.lastCreate.Image.Size)
}

func TestCreateEntryHandlerValidation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"missing content", usecase.ErrContentRequired, "content is required"},
		{"not an image", usecase.ErrInvalidImage, "must be an image"},
		{"too large", usecase.ErrImageTooLarge, "4 MiB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubDiaryUsecase{err: tt.err}
			r := diaryRouter(uc)

			body, contentType := multipartBody(t, map[string]string{"title": "T"}, "", "", nil)
			req := httptest.NewRequest(http.MethodPost, "/entries", body)
			req.Header.Set("Content-Type", contentType)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}
}

func TestGetEntryHandlerNotFound(t *testing.T) {
	uc := &stubDiaryUsecase{err: usecase.ErrEntryNotFound}
	r := diaryRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/entries/e1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetEntriesHandlerEmpty(t *testing.T) {
	uc := &stubDiaryUsecase{entries: []*domain.Entry{}}
	r := diaryRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/entries", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestDeleteEntryHandler(t *testing.T) {
	uc := &stubDiaryUsecase{}
	r := diaryRouter(uc)

	req := httptest.NewRequest(http.MethodDelete, "/entries/e1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "deleted")
}

func TestDeleteEntryHandlerNotFound(t *testing.T) {
	uc := &stubDiaryUsecase{err: usecase.ErrEntryNotFound}
	r := diaryRouter(uc)

	req := httptest.NewRequest(http.MethodDelete, "/entries/e1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
