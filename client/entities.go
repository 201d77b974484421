package client

import (
	"errors"
	"strings"
	"time"
)

// Room is a user-created grouping of flashcards.
type Room struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"CreatedAt"`
}

func (r Room) EntityID() string { return r.ID }

// Card is a flashcard with a question, an answer, and an optional hint.
type Card struct {
	ID        string    `json:"id"`
	Front     string    `json:"front"`
	Back      string    `json:"back"`
	Hint      string    `json:"hint"`
	CreatedAt time.Time `json:"CreatedAt"`
}

func (c Card) EntityID() string { return c.ID }

// HasHint reports whether a hint exists after trimming.
func (c Card) HasHint() bool { return strings.TrimSpace(c.Hint) != "" }

func validateRoom(r Room) error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("Title is required")
	}
	return nil
}

func validateCard(c Card) error {
	if strings.TrimSpace(c.Front) == "" || strings.TrimSpace(c.Back) == "" {
		return errors.New("Question and Answer are required")
	}
	return nil
}
