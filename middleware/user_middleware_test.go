package middleware

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/palaceapp/palace-api/auth"
	"github.com/palaceapp/palace-api/config"
	"github.com/palaceapp/palace-api/models"
)

func setupAuthTest(t *testing.T) *models.User {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	config.Database = db

	user := &models.User{
		Email:        "owner@example.com",
		PasswordHash: "x",
		PublicID:     "user-abc",
		Confirmed:    true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestRequireUser_AttachesUser(t *testing.T) {
	user := setupAuthTest(t)

	token, err := auth.CreateToken(user.PublicID)
	require.NoError(t, err)

	var seen *models.User
	handler := RequireUser(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = UserFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	handler(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, seen)
	assert.Equal(t, user.ID, seen.ID)
}

func TestRequireUser_MissingHeader(t *testing.T) {
	setupAuthTest(t)

	handler := RequireUser(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/api/rooms", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireUser_InvalidToken(t *testing.T) {
	setupAuthTest(t)

	handler := RequireUser(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
	req.Header.Set("Authorization", "Bearer bogus")

	w := httptest.NewRecorder()
	handler(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireUser_UnknownSubject(t *testing.T) {
	setupAuthTest(t)

	token, err := auth.CreateToken("ghost")
	require.NoError(t, err)

	handler := RequireUser(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	handler(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
