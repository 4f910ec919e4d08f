package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"calchub/internal/store"
	"calchub/internal/testutils"
	"calchub/pkg/calctypes"
)

// NotesService holds the dashboard notepad and todo list.
type NotesService struct {
	mu          sync.RWMutex
	store       store.Store
	testMode    calctypes.TestModeProvider
	note        string
	todos       []calctypes.Todo
	initialized bool
}

// NewNotesService creates a notes service persisted in st.
func NewNotesService(st store.Store, testMode calctypes.TestModeProvider) *NotesService {
	return &NotesService{store: st, testMode: testMode}
}

// Name returns the service name for registration and identification.
func (n *NotesService) Name() string {
	return "notes"
}

// Initialize loads the persisted note and todos.
func (n *NotesService) Initialize() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.initialized {
		return nil
	}
	if n.store == nil {
		return fmt.Errorf("notes service requires a store")
	}

	ctx := context.Background()
	var note string
	if _, err := store.GetJSON(ctx, n.store, store.KeyNotes, &note); err != nil {
		return fmt.Errorf("failed to load note: %w", err)
	}
	var todos []calctypes.Todo
	if _, err := store.GetJSON(ctx, n.store, store.KeyTodos, &todos); err != nil {
		return fmt.Errorf("failed to load todos: %w", err)
	}
	n.note = note
	n.todos = todos
	n.initialized = true
	return nil
}

// Note returns the notepad text.
func (n *NotesService) Note() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.note
}

// SetNote replaces the notepad text.
func (n *NotesService) SetNote(text string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.initialized {
		return fmt.Errorf("notes service not initialized")
	}
	if err := store.SetJSON(context.Background(), n.store, store.KeyNotes, text); err != nil {
		return fmt.Errorf("failed to save note: %w", err)
	}
	n.note = text
	return nil
}

// Todos returns the todo list, newest first.
func (n *NotesService) Todos() []calctypes.Todo {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]calctypes.Todo, len(n.todos))
	copy(out, n.todos)
	return out
}

// AddTodo puts a new open todo at the top of the list.
func (n *NotesService) AddTodo(text string) (calctypes.Todo, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return calctypes.Todo{}, fmt.Errorf("todo text cannot be empty")
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.initialized {
		return calctypes.Todo{}, fmt.Errorf("notes service not initialized")
	}

	todo := calctypes.Todo{ID: testutils.GenerateUUID(n.testMode), Text: text}
	next := append([]calctypes.Todo{todo}, n.todos...)
	if err := n.saveTodos(next); err != nil {
		return calctypes.Todo{}, err
	}
	return todo, nil
}

// ToggleTodo flips the done flag of the todo named by ref and returns it.
// ref is a 1-based position in Todos or a todo id.
func (n *NotesService) ToggleTodo(ref string) (calctypes.Todo, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	idx, err := n.find(ref)
	if err != nil {
		return calctypes.Todo{}, err
	}
	next := make([]calctypes.Todo, len(n.todos))
	copy(next, n.todos)
	next[idx].Done = !next[idx].Done
	if err := n.saveTodos(next); err != nil {
		return calctypes.Todo{}, err
	}
	return next[idx], nil
}

// RemoveTodo deletes the todo named by ref and returns it.
func (n *NotesService) RemoveTodo(ref string) (calctypes.Todo, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	idx, err := n.find(ref)
	if err != nil {
		return calctypes.Todo{}, err
	}
	removed := n.todos[idx]
	next := make([]calctypes.Todo, 0, len(n.todos)-1)
	next = append(next, n.todos[:idx]...)
	next = append(next, n.todos[idx+1:]...)
	if err := n.saveTodos(next); err != nil {
		return calctypes.Todo{}, err
	}
	return removed, nil
}

// find resolves ref to an index. Callers hold the lock.
func (n *NotesService) find(ref string) (int, error) {
	if !n.initialized {
		return 0, fmt.Errorf("notes service not initialized")
	}
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return 0, fmt.Errorf("todo reference cannot be empty")
	}
	if pos, err := strconv.Atoi(ref); err == nil {
		if pos < 1 || pos > len(n.todos) {
			return 0, fmt.Errorf("todo %d does not exist (have %d)", pos, len(n.todos))
		}
		return pos - 1, nil
	}
	for i, todo := range n.todos {
		if todo.ID == ref {
			return i, nil
		}
	}
	return 0, fmt.Errorf("todo '%s' not found", ref)
}

func (n *NotesService) saveTodos(todos []calctypes.Todo) error {
	if err := store.SetJSON(context.Background(), n.store, store.KeyTodos, todos); err != nil {
		return fmt.Errorf("failed to save todos: %w", err)
	}
	n.todos = todos
	return nil
}
