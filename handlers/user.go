package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/palaceapp/palace-api/auth"
	"github.com/palaceapp/palace-api/models"

	"github.com/palaceapp/palace-api/utils"
)

// Error messages the client recognizes and maps to friendlier text.
const (
	MsgInvalidCredentials = "Invalid login credentials"
	MsgEmailNotConfirmed  = "Email not confirmed"
	MsgAlreadyRegistered  = "User already registered"
)

func (db *DBHandler) SignUp(w http.ResponseWriter, r *http.Request) {

	var reqData struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&reqData); err != nil {
		http.Error(w, "Could not decode request", http.StatusBadRequest)
		return
	}

	email := strings.TrimSpace(strings.ToLower(reqData.Email))
	if email == "" || reqData.Password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		http.Error(w, MsgAlreadyRegistered, http.StatusConflict)
		return
	}

	hash, err := auth.HashPassword(reqData.Password)
	if err != nil {
		http.Error(w, "Failed to create account", http.StatusInternalServerError)
		return
	}

	publicID, err := gonanoid.New()
	if err != nil {
		http.Error(w, "Failed to generate ID", http.StatusInternalServerError)
		return
	}

	user := models.User{
		Email:        email,
		PasswordHash: hash,
		PublicID:     publicID,
		ConfirmToken: auth.NewConfirmToken(),
	}

	if err := db.Create(&user).Error; err != nil {
		http.Error(w, "Failed to create account", http.StatusInternalServerError)
		log.Println("Database creation error:", err)
		return
	}

	// Stands in for mail delivery; the confirm endpoint consumes it.
	log.Printf("confirmation token for %s: %s\n", user.Email, user.ConfirmToken)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Check your email and confirm before logging in",
	})
}

func (db *DBHandler) ConfirmEmail(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "Confirmation token is required", http.StatusBadRequest)
		return
	}

	var user models.User
	if err := db.Where("confirm_token = ? AND confirmed = ?", token, false).First(&user).Error; err != nil {
		http.Error(w, "Invalid confirmation token", http.StatusNotFound)
		return
	}

	user.Confirmed = true
	user.ConfirmToken = ""
	if err := db.Save(&user).Error; err != nil {
		http.Error(w, "Failed to confirm account", http.StatusInternalServerError)
		return
	}

	log.Printf("Confirmed account: %s\n", user.Email)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Email confirmed"})
}

func (db *DBHandler) SignIn(w http.ResponseWriter, r *http.Request) {

	var reqData struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&reqData); err != nil {
		http.Error(w, "Could not decode request", http.StatusBadRequest)
		return
	}

	email := strings.TrimSpace(strings.ToLower(reqData.Email))

	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		http.Error(w, MsgInvalidCredentials, http.StatusUnauthorized)
		return
	}

	if !auth.CheckPasswordHash(reqData.Password, user.PasswordHash) {
		http.Error(w, MsgInvalidCredentials, http.StatusUnauthorized)
		return
	}

	if !user.Confirmed {
		http.Error(w, MsgEmailNotConfirmed, http.StatusUnauthorized)
		return
	}

	tokenString, err := auth.CreateToken(user.PublicID)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		log.Println("Token generation error:", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"token": tokenString,
		"user":  user,
	})
}

func (db *DBHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	// Tokens are stateless; the client forgets its copy.
	w.WriteHeader(http.StatusNoContent)
}

func (db *DBHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(user)
}
