package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/palaceapp/palace-api/auth"
	"github.com/palaceapp/palace-api/middleware"
	"github.com/palaceapp/palace-api/models"
)

// setupTestDB opens a throwaway sqlite database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Room{}, &models.Card{}))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	publicID, err := gonanoid.New()
	require.NoError(t, err)

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		PublicID:     publicID,
		Confirmed:    true,
	}
	require.NoError(t, db.Create(user).Error)

	return user
}

func createTestRoom(t *testing.T, db *gorm.DB, user *models.User, title string, createdAt time.Time) *models.Room {
	t.Helper()

	publicID, err := gonanoid.New()
	require.NoError(t, err)

	room := &models.Room{
		Title:    title,
		PublicID: publicID,
		UserID:   user.ID,
	}
	room.CreatedAt = createdAt
	require.NoError(t, db.Create(room).Error)

	return room
}

func createTestCard(t *testing.T, db *gorm.DB, room *models.Room, front, back, hint string, createdAt time.Time) *models.Card {
	t.Helper()

	publicID, err := gonanoid.New()
	require.NoError(t, err)

	card := &models.Card{
		Front:    front,
		Back:     back,
		Hint:     hint,
		PublicID: publicID,
		RoomID:   room.ID,
		UserID:   room.UserID,
	}
	card.CreatedAt = createdAt
	require.NoError(t, db.Create(card).Error)

	return card
}

// makeRequest builds a JSON request carrying the given user in context.
func makeRequest(user *models.User, method, path string, body interface{}) *http.Request {
	var req *http.Request
	if body != nil {
		encoded, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(encoded))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	if user != nil {
		req = req.WithContext(middleware.WithUser(req.Context(), user))
	}

	return req
}

func decodeBody(w *httptest.ResponseRecorder, v interface{}) error {
	return json.NewDecoder(w.Body).Decode(v)
}
