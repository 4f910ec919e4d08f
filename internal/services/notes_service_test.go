package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calchub/internal/store"
	"calchub/internal/testutils"
)

func newTestNotes(t *testing.T, st store.Store) *NotesService {
	t.Helper()
	testutils.ResetTestCounters()
	n := NewNotesService(st, testutils.StaticTestMode(true))
	require.NoError(t, n.Initialize())
	return n
}

func TestNotesService_Note(t *testing.T) {
	st := store.NewMemoryStore()
	n := newTestNotes(t, st)
	assert.Equal(t, "notes", n.Name())
	assert.Empty(t, n.Note())

	require.NoError(t, n.SetNote("check the 0x1F conversion"))
	assert.Equal(t, "check the 0x1F conversion", n.Note())

	reloaded := NewNotesService(st, nil)
	require.NoError(t, reloaded.Initialize())
	assert.Equal(t, "check the 0x1F conversion", reloaded.Note())
}

func TestNotesService_AddTodoNewestFirst(t *testing.T) {
	n := newTestNotes(t, store.NewMemoryStore())

	first, err := n.AddTodo("  simplify 6/8  ")
	require.NoError(t, err)
	assert.Equal(t, "simplify 6/8", first.Text)
	assert.Equal(t, "00000001-0000-4000-8000-000000000001", first.ID)
	assert.False(t, first.Done)

	_, err = n.AddTodo("convert 255")
	require.NoError(t, err)

	todos := n.Todos()
	require.Len(t, todos, 2)
	assert.Equal(t, "convert 255", todos[0].Text)
	assert.Equal(t, "simplify 6/8", todos[1].Text)

	_, err = n.AddTodo("   ")
	assert.EqualError(t, err, "todo text cannot be empty")
}

func TestNotesService_ToggleAndRemove(t *testing.T) {
	st := store.NewMemoryStore()
	n := newTestNotes(t, st)
	first, err := n.AddTodo("a")
	require.NoError(t, err)
	_, err = n.AddTodo("b")
	require.NoError(t, err)

	toggled, err := n.ToggleTodo("2")
	require.NoError(t, err)
	assert.Equal(t, "a", toggled.Text)
	assert.True(t, toggled.Done)

	toggled, err = n.ToggleTodo(first.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Done)

	removed, err := n.RemoveTodo("1")
	require.NoError(t, err)
	assert.Equal(t, "b", removed.Text)

	reloaded := NewNotesService(st, nil)
	require.NoError(t, reloaded.Initialize())
	todos := reloaded.Todos()
	require.Len(t, todos, 1)
	assert.Equal(t, "a", todos[0].Text)
}

func TestNotesService_TodoReferenceErrors(t *testing.T) {
	n := newTestNotes(t, store.NewMemoryStore())
	_, err := n.AddTodo("only")
	require.NoError(t, err)

	tests := []struct {
		ref      string
		expected string
	}{
		{"", "todo reference cannot be empty"},
		{"0", "todo 0 does not exist (have 1)"},
		{"2", "todo 2 does not exist (have 1)"},
		{"missing-id", "todo 'missing-id' not found"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			_, err := n.ToggleTodo(tt.ref)
			assert.EqualError(t, err, tt.expected)
			_, err = n.RemoveTodo(tt.ref)
			assert.EqualError(t, err, tt.expected)
		})
	}
}

func TestNotesService_NotInitialized(t *testing.T) {
	n := NewNotesService(store.NewMemoryStore(), nil)
	assert.Error(t, n.SetNote("x"))
	_, err := n.AddTodo("x")
	assert.Error(t, err)
	_, err = n.ToggleTodo("1")
	assert.EqualError(t, err, "notes service not initialized")
	assert.Error(t, NewNotesService(nil, nil).Initialize())
}
