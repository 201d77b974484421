package client

import (
	"context"
	"sync"
)

// ListState is the rendering state of a list view.
type ListState int

const (
	StateLoading ListState = iota
	StateEmpty
	StatePopulated
)

// Entity is anything a ListController can manage.
type Entity interface {
	EntityID() string
}

// Store is the parent-scoped table contract a controller fetches from and
// writes to. Implementations attach the current user as owner on Create.
type Store[T Entity] interface {
	// List returns all entities under parentID, newest first.
	List(ctx context.Context, parentID string) ([]T, error)
	Create(ctx context.Context, parentID string, item T) error
	// Update is a full-field replace of the entity's mutable fields.
	Update(ctx context.Context, parentID, id string, item T) error
	Delete(ctx context.Context, parentID, id string) error
}

// Messages are the notification texts for one controller instance.
type Messages struct {
	LoadFailed   string
	Created      string
	CreateFailed string
	Updated      string
	UpdateFailed string
	Deleted      string
	DeleteFailed string
}

// ListController drives one entity list: fetch, create, edit, and two-phase
// delete. Creates and updates reconcile by refetching the whole list; deletes
// remove the entity locally without a refetch. A generation counter discards
// fetch responses that a newer fetch (or Close) has superseded, so switching
// parents quickly can never surface a stale list.
type ListController[T Entity] struct {
	store    Store[T]
	notify   Notifier
	validate func(T) error
	msgs     Messages

	mu       sync.Mutex
	parentID string
	items    []T
	state    ListState
	gen      uint64
	creating bool
	saving   bool
	editing  string
	staged   string
}

func NewListController[T Entity](store Store[T], notify Notifier, validate func(T) error, msgs Messages) *ListController[T] {
	return &ListController[T]{
		store:    store,
		notify:   notify,
		validate: validate,
		msgs:     msgs,
		state:    StateLoading,
	}
}

// NewRoomController builds a controller over the rooms table.
func NewRoomController(store Store[Room], notify Notifier) *ListController[Room] {
	return NewListController(store, notify, validateRoom, Messages{
		LoadFailed:   "Failed to load rooms",
		Created:      "Room created",
		CreateFailed: "Could not create room",
		Updated:      "Room updated",
		UpdateFailed: "Update failed",
		Deleted:      "Room deleted",
		DeleteFailed: "Delete failed",
	})
}

// NewCardController builds a controller over the cards of one room.
func NewCardController(store Store[Card], notify Notifier, roomID string) *ListController[Card] {
	c := NewListController(store, notify, validateCard, Messages{
		LoadFailed:   "Failed to load cards",
		Created:      "Card added",
		CreateFailed: "Could not create card",
		Updated:      "Card updated",
		UpdateFailed: "Update failed",
		Deleted:      "Card deleted",
		DeleteFailed: "Delete failed",
	})
	c.parentID = roomID
	return c
}

// Fetch loads the list from the store, replacing it atomically on success.
// On failure the previous items are kept and an error notification is shown.
// The response is discarded if another Fetch started after this one.
func (c *ListController[T]) Fetch(ctx context.Context) {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.state = StateLoading
	parentID := c.parentID
	c.mu.Unlock()

	items, err := c.store.List(ctx, parentID)

	c.mu.Lock()
	if gen != c.gen {
		// Superseded while in flight
		c.mu.Unlock()
		return
	}
	if err != nil {
		c.settleLocked()
		c.mu.Unlock()
		c.notify.Error(c.msgs.LoadFailed)
		return
	}
	c.items = items
	c.settleLocked()
	c.mu.Unlock()
}

func (c *ListController[T]) settleLocked() {
	if len(c.items) == 0 {
		c.state = StateEmpty
	} else {
		c.state = StatePopulated
	}
}

// Create validates locally, then inserts and refetches. Validation failures
// never reach the network. The new entity appears only once the refetch
// resolves. Returns true when the caller should clear the form fields.
func (c *ListController[T]) Create(ctx context.Context, item T) bool {
	c.mu.Lock()
	if c.creating {
		// A submission is already in flight
		c.mu.Unlock()
		return false
	}
	if err := c.validate(item); err != nil {
		c.mu.Unlock()
		c.notify.Error(err.Error())
		return false
	}
	c.creating = true
	parentID := c.parentID
	c.mu.Unlock()

	err := c.store.Create(ctx, parentID, item)

	c.mu.Lock()
	c.creating = false
	c.mu.Unlock()

	if err != nil {
		c.notify.Error(c.msgs.CreateFailed)
		return false
	}

	c.notify.Success(c.msgs.Created)
	c.Fetch(ctx)
	return true
}

// Creating reports whether a create request is in flight (the submit control
// is disabled while true).
func (c *ListController[T]) Creating() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.creating
}

// StartEdit puts the given entity into edit mode.
func (c *ListController[T]) StartEdit(id string) {
	c.mu.Lock()
	c.editing = id
	c.mu.Unlock()
}

// CancelEdit leaves edit mode without saving.
func (c *ListController[T]) CancelEdit() {
	c.mu.Lock()
	c.editing = ""
	c.mu.Unlock()
}

// Editing returns the ID of the entity in edit mode, or "".
func (c *ListController[T]) Editing() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editing
}

// SaveEdit validates like Create, sends a full-field replace, and on success
// exits edit mode and refetches.
func (c *ListController[T]) SaveEdit(ctx context.Context, id string, item T) bool {
	c.mu.Lock()
	if c.saving {
		c.mu.Unlock()
		return false
	}
	if err := c.validate(item); err != nil {
		c.mu.Unlock()
		c.notify.Error(err.Error())
		return false
	}
	c.saving = true
	parentID := c.parentID
	c.mu.Unlock()

	err := c.store.Update(ctx, parentID, id, item)

	c.mu.Lock()
	c.saving = false
	c.mu.Unlock()

	if err != nil {
		c.notify.Error(c.msgs.UpdateFailed)
		return false
	}

	c.mu.Lock()
	c.editing = ""
	c.mu.Unlock()

	c.notify.Success(c.msgs.Updated)
	c.Fetch(ctx)
	return true
}

// StageDelete opens the confirmation step for the given entity. Nothing is
// deleted until ConfirmDelete.
func (c *ListController[T]) StageDelete(id string) {
	c.mu.Lock()
	c.staged = id
	c.mu.Unlock()
}

// StagedDelete returns the entity staged for deletion, or "" when the
// confirmation modal is closed.
func (c *ListController[T]) StagedDelete() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.staged
}

// CancelDelete clears the staged entity with no other side effect.
func (c *ListController[T]) CancelDelete() {
	c.mu.Lock()
	c.staged = ""
	c.mu.Unlock()
}

// ConfirmDelete issues the delete for the staged entity. On success the
// entity is removed from the local list by ID, with no refetch. On failure
// the staged entity remains and the list is untouched.
func (c *ListController[T]) ConfirmDelete(ctx context.Context) bool {
	c.mu.Lock()
	id := c.staged
	parentID := c.parentID
	c.mu.Unlock()
	if id == "" {
		return false
	}

	if err := c.store.Delete(ctx, parentID, id); err != nil {
		c.notify.Error(c.msgs.DeleteFailed)
		return false
	}

	c.mu.Lock()
	kept := c.items[:0:0]
	for _, item := range c.items {
		if item.EntityID() != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.staged = ""
	c.settleLocked()
	c.mu.Unlock()

	c.notify.Success(c.msgs.Deleted)
	return true
}

// Items returns a copy of the current list, newest first as the store
// returned it. The controller never re-sorts.
func (c *ListController[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// State returns the list's rendering state.
func (c *ListController[T]) State() ListState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Close abandons any in-flight fetch; its response will be discarded on
// arrival. Called when the owning view is torn down.
func (c *ListController[T]) Close() {
	c.mu.Lock()
	c.gen++
	c.mu.Unlock()
}
