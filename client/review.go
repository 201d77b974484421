package client

import "sync"

// ReviewPhase is the reveal progression of one card.
type ReviewPhase int

const (
	PhaseInitial ReviewPhase = iota
	PhaseHintShown
	PhaseAnswerShown
)

// ReviewDeck holds the per-card review phase, keyed by card ID so cards do
// not interfere with each other. Phases are ephemeral: a list reload resets
// the whole deck.
type ReviewDeck struct {
	mu      sync.Mutex
	phases  map[string]ReviewPhase
	editing string
}

func NewReviewDeck() *ReviewDeck {
	return &ReviewDeck{phases: make(map[string]ReviewPhase)}
}

// Phase returns the card's current phase. Cards start at PhaseInitial.
func (d *ReviewDeck) Phase(cardID string) ReviewPhase {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.phases[cardID]
}

// Tap advances the card one step through the reveal cycle:
// initial -> hint-shown (answer-shown when the card has no hint) ->
// answer-shown -> initial. Taps on a card in edit mode are ignored.
func (d *ReviewDeck) Tap(cardID string, hasHint bool) ReviewPhase {
	d.mu.Lock()
	defer d.mu.Unlock()

	if cardID == d.editing {
		return d.phases[cardID]
	}

	next := d.phases[cardID]
	switch next {
	case PhaseInitial:
		if hasHint {
			next = PhaseHintShown
		} else {
			next = PhaseAnswerShown
		}
	case PhaseHintShown:
		next = PhaseAnswerShown
	case PhaseAnswerShown:
		next = PhaseInitial
	}
	d.phases[cardID] = next
	return next
}

// SetEditing marks a card as being edited; its taps are ignored until
// ClearEditing.
func (d *ReviewDeck) SetEditing(cardID string) {
	d.mu.Lock()
	d.editing = cardID
	d.mu.Unlock()
}

func (d *ReviewDeck) ClearEditing() {
	d.mu.Lock()
	d.editing = ""
	d.mu.Unlock()
}

// Reset discards all phases, e.g. when the card list reloads.
func (d *ReviewDeck) Reset() {
	d.mu.Lock()
	d.phases = make(map[string]ReviewPhase)
	d.mu.Unlock()
}
