package config

import (
	"log"
	"os"

	"github.com/palaceapp/palace-api/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Database *gorm.DB

func Connect() error {
	var err error
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		// Local development fallback; see environment.go for the startup warning.
		log.Println("DB_URL not set, using local sqlite database")
		Database, err = gorm.Open(sqlite.Open("palace.db"), &gorm.Config{})
	} else {
		Database, err = gorm.Open(postgres.Open(dbURL), &gorm.Config{})
	}
	if err != nil {
		panic("failed to connect database")
	}

	err = Database.AutoMigrate(&models.User{}, &models.Room{}, &models.Card{})
	if err != nil {
		panic("failed to auto migrate database")
	}

	return nil
}
