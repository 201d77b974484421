package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/palaceapp/palace-api/models"
	"gorm.io/gorm"

	"github.com/palaceapp/palace-api/utils"
)

type DBHandler struct {
	*gorm.DB
}

func (db *DBHandler) GetRooms(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var rooms []models.Room
	result := db.
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&rooms)

	if result.Error != nil {
		http.Error(w, "Failed to fetch rooms", http.StatusInternalServerError)
		return
	}

	// If no rooms found, return an empty array instead of null
	if len(rooms) == 0 {
		rooms = []models.Room{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(rooms); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (db *DBHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var reqData struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}

	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&reqData); err != nil {
		http.Error(w, "Could not decode request", http.StatusBadRequest)
		return
	}

	title := strings.TrimSpace(reqData.Title)
	if title == "" {
		http.Error(w, "Title is required", http.StatusBadRequest)
		return
	}

	publicID, err := gonanoid.New()
	if err != nil {
		http.Error(w, "Failed to generate ID", http.StatusInternalServerError)
		return
	}

	room := models.Room{
		Title:       title,
		Description: strings.TrimSpace(reqData.Description),
		PublicID:    publicID,
		UserID:      user.ID,
	}

	if err := db.Create(&room).Error; err != nil {
		http.Error(w, "Failed to create room", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(room)
}

func (db *DBHandler) UpdateRoomByID(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	roomID := r.PathValue("roomID")

	var room models.Room
	if err := db.Where("public_id = ?", roomID).First(&room).Error; err != nil {
		http.Error(w, "Room not found", http.StatusNotFound)
		return
	}

	if room.UserID != user.ID {
		http.Error(w, "Forbidden: You do not own this room", http.StatusForbidden)
		return
	}

	var reqData struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}

	if err := json.NewDecoder(r.Body).Decode(&reqData); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	title := strings.TrimSpace(reqData.Title)
	if title == "" {
		http.Error(w, "Title is required", http.StatusBadRequest)
		return
	}

	// Full-field replace of the mutable fields
	room.Title = title
	room.Description = strings.TrimSpace(reqData.Description)

	if err := db.Save(&room).Error; err != nil {
		http.Error(w, "Failed to update room", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(room)
}

func (db *DBHandler) DeleteRoomByID(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	roomID := r.PathValue("roomID")

	var room models.Room
	if err := db.Where("public_id = ?", roomID).First(&room).Error; err != nil {
		http.Error(w, "Room not found", http.StatusNotFound)
		return
	}

	if room.UserID != user.ID {
		http.Error(w, "Forbidden: You do not own this room", http.StatusForbidden)
		return
	}

	// Cascade: cards first, then the room itself
	if err := db.Where("room_id = ?", room.ID).Delete(&models.Card{}).Error; err != nil {
		http.Error(w, "Failed to delete cards", http.StatusInternalServerError)
		return
	}

	if err := db.Delete(&room).Error; err != nil {
		http.Error(w, "Failed to delete room", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
