package models

import "gorm.io/gorm"

// Card represents an individual flashcard
type Card struct {
	gorm.Model
	Front    string `gorm:"not null;size:1000" json:"front"`
	Back     string `gorm:"not null;size:1000" json:"back"`
	Hint     string `gorm:"size:1000" json:"hint"`
	PublicID string `gorm:"size:100;uniqueIndex" json:"id"`

	RoomID uint `gorm:"not null" json:"-"`
	Room   Room `gorm:"foreignKey:RoomID" json:"-"`

	UserID uint `gorm:"not null" json:"-"`
}
