// Package client implements the synchronization core: a remote access
// client over the HTTP resource surface, the session and item collection
// state for at most one identity, and a durable cache that lets a
// restarted process pick up where the last successful operation left off.
package client

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/MauItu/inventario-alimentos/entity"
	"github.com/MauItu/inventario-alimentos/logger"
)

// State holds the session and item collection for at most one identity.
// All operations are guarded by one mutex, so the identity and the item
// list always refer to the same principal: switching identities replaces
// both atomically and a failed operation leaves prior state untouched.
type State struct {
	mu    sync.Mutex
	api   *API
	cache *Cache

	identity *entity.Identity
	items    []entity.Item
}

// NewState builds the client state, loading the cached snapshot so a
// reload observes the previous session. An unreadable cache degrades to
// logged out rather than failing construction.
func NewState(api *API, cache *Cache) *State {
	s := &State{api: api, cache: cache}

	snap, err := cache.Load()
	if err != nil {
		logger.Warn("ignoring unreadable session cache", zap.Error(err))
		return s
	}
	s.identity = snap.Identity
	if s.identity != nil {
		s.items = snap.Items
	}
	return s
}

// Identity returns the active identity, or nil when logged out.
func (s *State) Identity() *entity.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return nil
	}
	copied := *s.identity
	return &copied
}

// Items returns a copy of the in-memory item collection.
func (s *State) Items() []entity.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]entity.Item, len(s.items))
	copy(items, s.items)
	return items
}

// persist mirrors the current state into the durable cache. Must be
// called with the mutex held. A failed write is logged, never fatal.
func (s *State) persist() {
	snap := &Snapshot{Identity: s.identity, Items: s.items}
	if s.identity == nil {
		if err := s.cache.Clear(); err != nil {
			logger.Warn("failed to clear session cache", zap.Error(err))
		}
		return
	}
	if err := s.cache.Save(snap); err != nil {
		logger.Warn("failed to persist session cache", zap.Error(err))
	}
}

// Login looks the identity up by email and, on success, makes it the
// active one, atomically dropping any previous identity's items. On
// failure the prior state is left untouched.
func (s *State) Login(ctx context.Context, email string) error {
	identity, err := s.api.FindIdentity(ctx, email)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = identity
	s.items = nil
	s.persist()
	return nil
}

// Logout clears the in-memory identity and the durable cache. It always
// succeeds and has no network effect.
func (s *State) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = nil
	s.items = nil
	s.persist()
}

// CreateAccount registers a new identity. It never logs the caller in;
// login is a separate, deliberate step.
func (s *State) CreateAccount(ctx context.Context, email string) error {
	_, err := s.api.CreateIdentity(ctx, email)
	return err
}

// FetchItems replaces the whole in-memory collection with the store's
// current list for the active identity. On failure the collection stays
// as it was, stale but intact.
func (s *State) FetchItems(ctx context.Context) error {
	email, err := s.activeEmail()
	if err != nil {
		return err
	}

	items, err := s.api.ListItems(ctx, email)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil || s.identity.Email != email {
		// The session changed while the fetch was in flight; the result
		// belongs to a previous identity and must not leak in.
		return nil
	}
	s.items = items
	s.persist()
	return nil
}

// AddItem validates the item, sends it to the store and appends the
// returned canonical form. Any client-supplied id is discarded in favor
// of the server-assigned one.
func (s *State) AddItem(ctx context.Context, item *entity.Item) (*entity.Item, error) {
	if err := item.Validate(); err != nil {
		return nil, &Error{Kind: KindValidation, Message: err.Error()}
	}

	email, err := s.activeEmail()
	if err != nil {
		return nil, err
	}

	created, err := s.api.CreateItem(ctx, item, email)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil || s.identity.Email != email {
		return created, nil
	}
	s.items = append(s.items, *created)
	s.persist()
	return created, nil
}

// DeleteItem removes the item from the store and the collection. Deleting
// an id the store does not know is a no-op, not an error.
func (s *State) DeleteItem(ctx context.Context, id string) error {
	email, err := s.activeEmail()
	if err != nil {
		return err
	}

	if err := s.api.DeleteItem(ctx, id, email); err != nil && !IsNotFound(err) {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil || s.identity.Email != email {
		return nil
	}
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.persist()
	return nil
}

// GenerateRecipes requests a weekly recipe plan for the active identity.
func (s *State) GenerateRecipes(ctx context.Context) (*entity.RecipeResult, error) {
	email, err := s.activeEmail()
	if err != nil {
		return nil, err
	}
	return s.api.GenerateRecipes(ctx, email)
}

// activeEmail returns the email of the active identity or a validation
// failure when logged out.
func (s *State) activeEmail() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return "", &Error{Kind: KindValidation, Message: "no active session"}
	}
	return s.identity.Email, nil
}
