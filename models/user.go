package models

import "gorm.io/gorm"

// User represents a user in the system
type User struct {
	gorm.Model
	Email        string `gorm:"unique;not null;size:255" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	PublicID     string `gorm:"size:100;uniqueIndex" json:"id"`

	// Sign-in is rejected until the confirmation link is visited
	Confirmed    bool   `gorm:"default:false" json:"-"`
	ConfirmToken string `gorm:"size:100;index" json:"-"`

	Rooms []Room `gorm:"foreignKey:UserID" json:"-"`
}
