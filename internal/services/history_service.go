package services

import (
	"context"
	"fmt"
	"sync"

	"calchub/internal/store"
	"calchub/internal/testutils"
	"calchub/pkg/calctypes"
)

// HistoryService records evaluated calculations, newest first, up to a limit.
type HistoryService struct {
	mu          sync.RWMutex
	store       store.Store
	limit       int
	testMode    calctypes.TestModeProvider
	items       []calctypes.HistoryItem
	initialized bool
}

// NewHistoryService creates a history capped at limit entries (DefaultHistoryLimit when limit <= 0).
// testMode switches ids and timestamps to deterministic values.
func NewHistoryService(st store.Store, limit int, testMode calctypes.TestModeProvider) *HistoryService {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &HistoryService{store: st, limit: limit, testMode: testMode}
}

// Name returns the service name for registration and identification.
func (h *HistoryService) Name() string {
	return "history"
}

// Initialize loads the persisted history, trimming it to the current limit.
func (h *HistoryService) Initialize() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.initialized {
		return nil
	}
	if h.store == nil {
		return fmt.Errorf("history service requires a store")
	}
	var items []calctypes.HistoryItem
	if _, err := store.GetJSON(context.Background(), h.store, store.KeyHistory, &items); err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	if len(items) > h.limit {
		items = items[:h.limit]
	}
	h.items = items
	h.initialized = true
	return nil
}

// Limit returns the maximum number of entries kept.
func (h *HistoryService) Limit() int {
	return h.limit
}

// Add records an evaluation of def and returns the stored entry.
func (h *HistoryService) Add(def *calctypes.Definition, inputs calctypes.Inputs, headline string) (calctypes.HistoryItem, error) {
	if def == nil {
		return calctypes.HistoryItem{}, fmt.Errorf("no calculator to record")
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.initialized {
		return calctypes.HistoryItem{}, fmt.Errorf("history service not initialized")
	}

	item := calctypes.HistoryItem{
		ID:             testutils.GenerateUUID(h.testMode),
		CalculatorID:   def.ID,
		CalculatorName: def.Name,
		Inputs:         inputs.Clone(),
		Headline:       headline,
		Timestamp:      testutils.GetCurrentTime(h.testMode),
	}

	next := make([]calctypes.HistoryItem, 0, len(h.items)+1)
	next = append(next, item)
	next = append(next, h.items...)
	if len(next) > h.limit {
		next = next[:h.limit]
	}

	if err := store.SetJSON(context.Background(), h.store, store.KeyHistory, next); err != nil {
		return calctypes.HistoryItem{}, fmt.Errorf("failed to save history: %w", err)
	}
	h.items = next
	return item, nil
}

// List returns every entry, newest first.
func (h *HistoryService) List() []calctypes.HistoryItem {
	return h.Recent(0)
}

// Recent returns at most n entries, newest first. n <= 0 returns everything.
func (h *HistoryService) Recent(n int) []calctypes.HistoryItem {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if n <= 0 || n > len(h.items) {
		n = len(h.items)
	}
	out := make([]calctypes.HistoryItem, n)
	copy(out, h.items[:n])
	return out
}

// Len returns the number of stored entries.
func (h *HistoryService) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.items)
}

// Clear removes every entry.
func (h *HistoryService) Clear() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.initialized {
		return fmt.Errorf("history service not initialized")
	}
	if err := h.store.Delete(context.Background(), store.KeyHistory); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	h.items = nil
	return nil
}
