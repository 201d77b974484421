package models

import "gorm.io/gorm"

// Room represents a user-created grouping of flashcards
type Room struct {
	gorm.Model
	Title       string `gorm:"not null;size:100" json:"title"`
	Description string `gorm:"size:500" json:"description"`
	PublicID    string `gorm:"size:100;uniqueIndex" json:"id"`

	UserID uint `gorm:"not null" json:"-"`
	User   User `gorm:"foreignKey:UserID" json:"-"`

	Cards []Card `gorm:"foreignKey:RoomID" json:"-"`
}
