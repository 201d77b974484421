package client

import (
	"context"
	"sync"
)

// AuthEvent identifies a session change pushed by the provider.
type AuthEvent string

const (
	EventSignedIn  AuthEvent = "SIGNED_IN"
	EventSignedOut AuthEvent = "SIGNED_OUT"
)

// User is the authenticated identity.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Provider is the auth side of the backend contract.
type Provider interface {
	// CurrentUser returns the signed-in identity, or nil when there is none.
	CurrentUser(ctx context.Context) (*User, error)
	SignOut(ctx context.Context) error
	// Subscribe registers a session-change callback and returns its
	// unsubscribe function.
	Subscribe(fn func(event AuthEvent, user *User)) (unsubscribe func())
}

// SessionGate tracks the authenticated identity for the process. It starts
// in a loading state until the initial CurrentUser lookup resolves, then
// mirrors provider events for as long as it is open. The subscription is
// acquired once in Start and released in Close.
type SessionGate struct {
	provider Provider
	notify   Notifier

	mu      sync.RWMutex
	user    *User
	loading bool

	unsubscribe func()
}

func NewSessionGate(provider Provider, notify Notifier) *SessionGate {
	return &SessionGate{
		provider: provider,
		notify:   notify,
		loading:  true,
	}
}

// Start subscribes to session changes and performs the initial session
// lookup. A lookup error is treated as signed out.
func (g *SessionGate) Start(ctx context.Context) {
	g.unsubscribe = g.provider.Subscribe(g.onChange)

	user, err := g.provider.CurrentUser(ctx)
	if err != nil {
		user = nil
	}

	g.mu.Lock()
	g.user = user
	g.loading = false
	g.mu.Unlock()
}

// onChange atomically replaces the held identity. A signed-in event fires a
// one-shot notification.
func (g *SessionGate) onChange(event AuthEvent, user *User) {
	g.mu.Lock()
	g.user = user
	g.mu.Unlock()

	if event == EventSignedIn {
		g.notify.Success("Signed in")
	}
}

// Loading reports whether the initial session lookup is still pending.
// Nothing interactive renders while true.
func (g *SessionGate) Loading() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.loading
}

// User returns the current identity, or nil when signed out.
func (g *SessionGate) User() *User {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.user
}

// SignedIn reports whether protected views may render.
func (g *SessionGate) SignedIn() bool {
	return g.User() != nil
}

// SignOut clears the local identity unconditionally and reports a provider
// failure through the notifier.
func (g *SessionGate) SignOut(ctx context.Context) {
	err := g.provider.SignOut(ctx)

	g.mu.Lock()
	g.user = nil
	g.mu.Unlock()

	if err != nil {
		g.notify.Error("Logout failed")
		return
	}
	g.notify.Success("Logged out")
}

// Close releases the session-change subscription.
func (g *SessionGate) Close() {
	if g.unsubscribe != nil {
		g.unsubscribe()
		g.unsubscribe = nil
	}
}
