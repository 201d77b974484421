package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/palaceapp/palace-api/models"

	"github.com/palaceapp/palace-api/utils"
)

// loadOwnedRoom resolves a room by public ID and checks ownership.
// Writes the error response itself; callers just return on nil.
func (db *DBHandler) loadOwnedRoom(w http.ResponseWriter, r *http.Request) *models.Room {
	user, ok := utils.GetUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil
	}

	roomID := r.PathValue("roomID")

	var room models.Room
	if err := db.Where("public_id = ?", roomID).First(&room).Error; err != nil {
		http.Error(w, "Room not found", http.StatusNotFound)
		return nil
	}

	if room.UserID != user.ID {
		http.Error(w, "Forbidden: You do not own this room", http.StatusForbidden)
		return nil
	}

	return &room
}

func (db *DBHandler) GetCardsForRoom(w http.ResponseWriter, r *http.Request) {
	room := db.loadOwnedRoom(w, r)
	if room == nil {
		return
	}

	var cards []models.Card
	result := db.
		Where("room_id = ?", room.ID).
		Order("created_at DESC").
		Find(&cards)

	if result.Error != nil {
		http.Error(w, "Failed to fetch cards", http.StatusInternalServerError)
		return
	}

	if len(cards) == 0 {
		cards = []models.Card{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cards)
}

func (db *DBHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	room := db.loadOwnedRoom(w, r)
	if room == nil {
		return
	}

	var reqData struct {
		Front string `json:"front"`
		Back  string `json:"back"`
		Hint  string `json:"hint"`
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&reqData); err != nil {
		http.Error(w, "Could not decode request", http.StatusBadRequest)
		return
	}

	front := strings.TrimSpace(reqData.Front)
	back := strings.TrimSpace(reqData.Back)
	if front == "" || back == "" {
		http.Error(w, "Front and back are required", http.StatusBadRequest)
		return
	}

	publicID, err := gonanoid.New()
	if err != nil {
		http.Error(w, "Failed to generate ID", http.StatusInternalServerError)
		return
	}

	card := models.Card{
		Front:    front,
		Back:     back,
		Hint:     strings.TrimSpace(reqData.Hint),
		PublicID: publicID,
		RoomID:   room.ID,
		UserID:   room.UserID,
	}

	if err := db.Create(&card).Error; err != nil {
		http.Error(w, "Failed to create card", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(card)
}

func (db *DBHandler) UpdateCardByID(w http.ResponseWriter, r *http.Request) {
	room := db.loadOwnedRoom(w, r)
	if room == nil {
		return
	}

	cardID := r.PathValue("cardID")

	var card models.Card
	if err := db.Where("public_id = ? AND room_id = ?", cardID, room.ID).First(&card).Error; err != nil {
		http.Error(w, "Card not found", http.StatusNotFound)
		return
	}

	var reqData struct {
		Front string `json:"front"`
		Back  string `json:"back"`
		Hint  string `json:"hint"`
	}

	if err := json.NewDecoder(r.Body).Decode(&reqData); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	front := strings.TrimSpace(reqData.Front)
	back := strings.TrimSpace(reqData.Back)
	if front == "" || back == "" {
		http.Error(w, "Front and back are required", http.StatusBadRequest)
		return
	}

	card.Front = front
	card.Back = back
	card.Hint = strings.TrimSpace(reqData.Hint)

	if err := db.Save(&card).Error; err != nil {
		http.Error(w, "Failed to update card", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(card)
}

func (db *DBHandler) DeleteCardByID(w http.ResponseWriter, r *http.Request) {
	room := db.loadOwnedRoom(w, r)
	if room == nil {
		return
	}

	cardID := r.PathValue("cardID")

	result := db.Where("public_id = ? AND room_id = ?", cardID, room.ID).Delete(&models.Card{})
	if result.Error != nil {
		http.Error(w, "Failed to delete card", http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "Card not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
