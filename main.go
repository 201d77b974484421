package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/palaceapp/palace-api/config"
	"github.com/palaceapp/palace-api/handlers"
	"github.com/palaceapp/palace-api/middleware"
	"github.com/rs/cors"
)

func init() {
	// Load .env file if not in production environment
	if os.Getenv("RAILWAY_ENVIRONMENT_NAME") == "" {
		err := godotenv.Load()
		if err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}
}

func main() {
	// Missing connection parameters are a warning, not a crash
	config.CheckRequired()

	// Initialize database connection
	config.Connect()

	DBHandler := &handlers.DBHandler{DB: config.Database}
	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /api/auth/signup", DBHandler.SignUp)
	mux.HandleFunc("GET /api/auth/confirm", DBHandler.ConfirmEmail)
	mux.HandleFunc("POST /api/auth/login", DBHandler.SignIn)
	mux.HandleFunc("POST /api/auth/logout", middleware.RequireUser(DBHandler.SignOut))
	mux.HandleFunc("GET /api/auth/me", middleware.RequireUser(DBHandler.GetCurrentUser))

	// Rooms
	mux.HandleFunc("GET /api/rooms", middleware.RequireUser(DBHandler.GetRooms))
	mux.HandleFunc("POST /api/rooms", middleware.RequireUser(DBHandler.CreateRoom))
	mux.HandleFunc("PUT /api/rooms/{roomID}", middleware.RequireUser(DBHandler.UpdateRoomByID))
	mux.HandleFunc("DELETE /api/rooms/{roomID}", middleware.RequireUser(DBHandler.DeleteRoomByID))

	// Cards
	mux.HandleFunc("GET /api/rooms/{roomID}/cards", middleware.RequireUser(DBHandler.GetCardsForRoom))
	mux.HandleFunc("POST /api/rooms/{roomID}/cards", middleware.RequireUser(DBHandler.CreateCard))
	mux.HandleFunc("PUT /api/rooms/{roomID}/cards/{cardID}", middleware.RequireUser(DBHandler.UpdateCardByID))
	mux.HandleFunc("DELETE /api/rooms/{roomID}/cards/{cardID}", middleware.RequireUser(DBHandler.DeleteCardByID))

	// Configure CORS with specific options
	allowedOrigins := []string{"https://" + config.Env.Domain, "https://www." + config.Env.Domain}
	if config.Env.IsDevelopment {
		allowedOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
	}
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(mux)

	// Server configuration

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // fallback port for local development
	}
	serverAddr := "0.0.0.0:" + port

	http.ListenAndServe(serverAddr, corsHandler)
}
