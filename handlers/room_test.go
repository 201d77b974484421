package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palaceapp/palace-api/models"
)

func TestGetRooms_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	h := &DBHandler{DB: db}
	user := createTestUser(t, db, "owner@example.com")

	older := createTestRoom(t, db, user, "Older", time.Now().Add(-time.Hour))
	newer := createTestRoom(t, db, user, "Newer", time.Now())

	w := httptest.NewRecorder()
	h.GetRooms(w, makeRequest(user, http.MethodGet, "/api/rooms", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var rooms []models.Room
	require.NoError(t, decodeBody(w, &rooms))
	require.Len(t, rooms, 2)
	assert.Equal(t, newer.PublicID, rooms[0].PublicID)
	assert.Equal(t, older.PublicID, rooms[1].PublicID)
}

func TestGetRooms_ScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	h := &DBHandler{DB: db}
	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")

	createTestRoom(t, db, owner, "Mine", time.Now())

	w := httptest.NewRecorder()
	h.GetRooms(w, makeRequest(other, http.MethodGet, "/api/rooms", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var rooms []models.Room
	require.NoError(t, decodeBody(w, &rooms))
	assert.Empty(t, rooms)
}

func TestCreateRoom(t *testing.T) {
	db := setupTestDB(t)
	h := &DBHandler{DB: db}
	user := createTestUser(t, db, "owner@example.com")

	body := map[string]string{"title": "  Spanish Vocab  ", "description": " verbs "}
	w := httptest.NewRecorder()
	h.CreateRoom(w, makeRequest(user, http.MethodPost, "/api/rooms", body))

	require.Equal(t, http.StatusCreated, w.Code)

	var room models.Room
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&room).Error)
	assert.Equal(t, "Spanish Vocab", room.Title)
	assert.Equal(t, "verbs", room.Description)
	assert.NotEmpty(t, room.PublicID)
}

func TestCreateRoom_RejectsWhitespaceTitle(t *testing.T) {
	db := setupTestDB(t)
	h := &DBHandler{DB: db}
	user := createTestUser(t, db, "owner@example.com")

	body := map[string]string{"title": "  "}
	w := httptest.NewRecorder()
	h.CreateRoom(w, makeRequest(user, http.MethodPost, "/api/rooms", body))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Room{}).Count(&count)
	assert.Zero(t, count)
}

func TestUpdateRoom_FullReplace(t *testing.T) {
	db := setupTestDB(t)
	h := &DBHandler{DB: db}
	user := createTestUser(t, db, "owner@example.com")
	room := createTestRoom(t, db, user, "Before", time.Now())
	room.Description = "old description"
	require.NoError(t, db.Save(room).Error)

	body := map[string]string{"title": "After"}
	req := makeRequest(user, http.MethodPut, "/api/rooms/"+room.PublicID, body)
	req.SetPathValue("roomID", room.PublicID)

	w := httptest.NewRecorder()
	h.UpdateRoomByID(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Room
	require.NoError(t, db.First(&updated, room.ID).Error)
	assert.Equal(t, "After", updated.Title)
	// All mutable fields are replaced, so the omitted description clears
	assert.Empty(t, updated.Description)
}

func TestUpdateRoom_ForbiddenForNonOwner(t *testing.T) {
	db := setupTestDB(t)
	h := &DBHandler{DB: db}
	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")
	room := createTestRoom(t, db, owner, "Private", time.Now())

	body := map[string]string{"title": "Hijacked"}
	req := makeRequest(other, http.MethodPut, "/api/rooms/"+room.PublicID, body)
	req.SetPathValue("roomID", room.PublicID)

	w := httptest.NewRecorder()
	h.UpdateRoomByID(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteRoom_CascadesToCards(t *testing.T) {
	db := setupTestDB(t)
	h := &DBHandler{DB: db}
	user := createTestUser(t, db, "owner@example.com")
	room := createTestRoom(t, db, user, "Doomed", time.Now())
	createTestCard(t, db, room, "q1", "a1", "", time.Now())
	createTestCard(t, db, room, "q2", "a2", "", time.Now())

	req := makeRequest(user, http.MethodDelete, "/api/rooms/"+room.PublicID, nil)
	req.SetPathValue("roomID", room.PublicID)

	w := httptest.NewRecorder()
	h.DeleteRoomByID(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)

	var roomCount, cardCount int64
	db.Model(&models.Room{}).Count(&roomCount)
	db.Model(&models.Card{}).Count(&cardCount)
	assert.Zero(t, roomCount)
	assert.Zero(t, cardCount)
}

func TestDeleteRoom_NotFound(t *testing.T) {
	db := setupTestDB(t)
	h := &DBHandler{DB: db}
	user := createTestUser(t, db, "owner@example.com")

	req := makeRequest(user, http.MethodDelete, "/api/rooms/missing", nil)
	req.SetPathValue("roomID", "missing")

	w := httptest.NewRecorder()
	h.DeleteRoomByID(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
