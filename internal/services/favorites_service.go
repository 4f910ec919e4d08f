package services

import (
	"context"
	"fmt"
	"sync"

	"calchub/internal/store"
)

// FavoritesService keeps the set of starred calculator ids.
type FavoritesService struct {
	mu          sync.RWMutex
	store       store.Store
	ids         []string
	initialized bool
}

// NewFavoritesService creates a favorites service persisted in st.
func NewFavoritesService(st store.Store) *FavoritesService {
	return &FavoritesService{store: st}
}

// Name returns the service name for registration and identification.
func (f *FavoritesService) Name() string {
	return "favorites"
}

// Initialize loads the persisted favorites.
func (f *FavoritesService) Initialize() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.initialized {
		return nil
	}
	if f.store == nil {
		return fmt.Errorf("favorites service requires a store")
	}
	var ids []string
	if _, err := store.GetJSON(context.Background(), f.store, store.KeyFavorites, &ids); err != nil {
		return fmt.Errorf("failed to load favorites: %w", err)
	}
	f.ids = ids
	f.initialized = true
	return nil
}

// Toggle adds id when absent and removes it when present. It reports whether id is now a favorite.
func (f *FavoritesService) Toggle(id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.initialized {
		return false, fmt.Errorf("favorites service not initialized")
	}

	previous := f.ids
	next := make([]string, 0, len(previous)+1)
	added := true
	for _, existing := range previous {
		if existing == id {
			added = false
			continue
		}
		next = append(next, existing)
	}
	if added {
		next = append(next, id)
	}

	if err := store.SetJSON(context.Background(), f.store, store.KeyFavorites, next); err != nil {
		return false, fmt.Errorf("failed to save favorites: %w", err)
	}
	f.ids = next
	return added, nil
}

// Contains reports whether id is a favorite.
func (f *FavoritesService) Contains(id string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, existing := range f.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// List returns the favorite ids in the order they were starred.
func (f *FavoritesService) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]string, len(f.ids))
	copy(out, f.ids)
	return out
}
