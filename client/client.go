package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/palaceapp/palace-api/handlers"
)

// Config holds the two required connection parameters.
type Config struct {
	Endpoint string // service URL, e.g. https://api.memorypalace.app
	APIKey   string // public API key sent with every request
}

// APIError is a non-2xx response from the service.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

// Client talks to the palace service. It implements Provider and, through
// Rooms and Cards, the Store interfaces the list controllers consume.
type Client struct {
	cfg  Config
	http *http.Client

	mu      sync.Mutex
	token   string
	user    *User
	subs    map[int]func(AuthEvent, *User)
	nextSub int
}

// New builds a Client. Missing connection parameters are logged as a warning
// rather than failing; requests will then fail individually.
func New(cfg Config) *Client {
	if cfg.Endpoint == "" || cfg.APIKey == "" {
		log.Println("Warning: service endpoint or API key not configured")
	}
	return &Client{
		cfg:  cfg,
		http: http.DefaultClient,
		subs: make(map[int]func(AuthEvent, *User)),
	}
}

// SignUp creates a pending account. The account cannot sign in until the
// emailed confirmation link is visited.
func (c *Client) SignUp(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/api/auth/signup", body, nil)
}

// SignIn exchanges credentials for a session. Recognized provider errors
// (invalid credentials, unconfirmed email) keep their distinct messages;
// anything else is surfaced raw.
func (c *Client) SignIn(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	var resp struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return err
	}

	c.mu.Lock()
	c.token = resp.Token
	c.user = &resp.User
	subs := c.snapshotSubsLocked()
	user := c.user
	c.mu.Unlock()

	for _, fn := range subs {
		fn(EventSignedIn, user)
	}
	return nil
}

// SignOut ends the session. The local token is dropped even when the
// request fails.
func (c *Client) SignOut(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)

	c.mu.Lock()
	c.token = ""
	c.user = nil
	subs := c.snapshotSubsLocked()
	c.mu.Unlock()

	for _, fn := range subs {
		fn(EventSignedOut, nil)
	}
	return err
}

// CurrentUser returns the signed-in identity, or nil without error when
// there is no session.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	c.mu.Lock()
	token := c.token
	c.mu.Unlock()
	if token == "" {
		return nil, nil
	}

	var user User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Subscribe registers a session-change callback for the process lifetime and
// returns its unsubscribe function.
func (c *Client) Subscribe(fn func(event AuthEvent, user *User)) func() {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

func (c *Client) snapshotSubsLocked() []func(AuthEvent, *User) {
	out := make([]func(AuthEvent, *User), 0, len(c.subs))
	for _, fn := range c.subs {
		out = append(out, fn)
	}
	return out
}

// Rooms returns the rooms table. The parent ID is unused.
func (c *Client) Rooms() Store[Room] { return roomStore{c} }

// Cards returns the cards table, scoped by room ID.
func (c *Client) Cards() Store[Card] { return cardStore{c} }

type roomStore struct{ c *Client }

func (s roomStore) List(ctx context.Context, _ string) ([]Room, error) {
	var rooms []Room
	err := s.c.do(ctx, http.MethodGet, "/api/rooms", nil, &rooms)
	return rooms, err
}

func (s roomStore) Create(ctx context.Context, _ string, room Room) error {
	body := map[string]string{
		"title":       strings.TrimSpace(room.Title),
		"description": strings.TrimSpace(room.Description),
	}
	return s.c.do(ctx, http.MethodPost, "/api/rooms", body, nil)
}

func (s roomStore) Update(ctx context.Context, _ string, id string, room Room) error {
	body := map[string]string{
		"title":       strings.TrimSpace(room.Title),
		"description": strings.TrimSpace(room.Description),
	}
	return s.c.do(ctx, http.MethodPut, "/api/rooms/"+id, body, nil)
}

func (s roomStore) Delete(ctx context.Context, _ string, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/api/rooms/"+id, nil, nil)
}

type cardStore struct{ c *Client }

func (s cardStore) List(ctx context.Context, roomID string) ([]Card, error) {
	var cards []Card
	err := s.c.do(ctx, http.MethodGet, "/api/rooms/"+roomID+"/cards", nil, &cards)
	return cards, err
}

func (s cardStore) Create(ctx context.Context, roomID string, card Card) error {
	body := map[string]string{
		"front": strings.TrimSpace(card.Front),
		"back":  strings.TrimSpace(card.Back),
		"hint":  strings.TrimSpace(card.Hint),
	}
	return s.c.do(ctx, http.MethodPost, "/api/rooms/"+roomID+"/cards", body, nil)
}

func (s cardStore) Update(ctx context.Context, roomID, id string, card Card) error {
	body := map[string]string{
		"front": strings.TrimSpace(card.Front),
		"back":  strings.TrimSpace(card.Back),
		"hint":  strings.TrimSpace(card.Hint),
	}
	return s.c.do(ctx, http.MethodPut, "/api/rooms/"+roomID+"/cards/"+id, body, nil)
}

func (s cardStore) Delete(ctx context.Context, roomID, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/api/rooms/"+roomID+"/cards/"+id, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.Endpoint+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("apikey", c.cfg.APIKey)

	c.mu.Lock()
	token := c.token
	c.mu.Unlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		msg := strings.TrimSpace(string(raw))
		if msg == "" {
			msg = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// FriendlyAuthError maps recognized provider errors to their user-facing
// messages; unrecognized errors come back unchanged.
func FriendlyAuthError(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Message {
		case handlers.MsgInvalidCredentials:
			return "Wrong email or password"
		case handlers.MsgEmailNotConfirmed:
			return "Confirm your email before logging in"
		case handlers.MsgAlreadyRegistered:
			return "This email is already registered, try logging in instead"
		}
	}
	return err.Error()
}
