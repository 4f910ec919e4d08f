package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calchub/internal/store"
)

func TestFavoritesService_Toggle(t *testing.T) {
	st := store.NewMemoryStore()
	f := NewFavoritesService(st)
	require.NoError(t, f.Initialize())

	added, err := f.Toggle("math-fractions")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = f.Toggle("math-basic")
	require.NoError(t, err)
	assert.True(t, added)

	assert.True(t, f.Contains("math-fractions"))
	assert.Equal(t, []string{"math-fractions", "math-basic"}, f.List())

	added, err = f.Toggle("math-fractions")
	require.NoError(t, err)
	assert.False(t, added)
	assert.False(t, f.Contains("math-fractions"))
	assert.Equal(t, []string{"math-basic"}, f.List())
}

func TestFavoritesService_Persists(t *testing.T) {
	st := store.NewMemoryStore()
	f := NewFavoritesService(st)
	require.NoError(t, f.Initialize())
	_, err := f.Toggle("math-base-conv")
	require.NoError(t, err)

	reloaded := NewFavoritesService(st)
	require.NoError(t, reloaded.Initialize())
	assert.Equal(t, []string{"math-base-conv"}, reloaded.List())
}

func TestFavoritesService_ListIsACopy(t *testing.T) {
	f := NewFavoritesService(store.NewMemoryStore())
	require.NoError(t, f.Initialize())
	_, err := f.Toggle("math-basic")
	require.NoError(t, err)

	ids := f.List()
	ids[0] = "changed"
	assert.Equal(t, []string{"math-basic"}, f.List())
}

func TestFavoritesService_Errors(t *testing.T) {
	assert.Error(t, NewFavoritesService(nil).Initialize())

	_, err := NewFavoritesService(store.NewMemoryStore()).Toggle("math-basic")
	assert.EqualError(t, err, "favorites service not initialized")

	st := store.NewMemoryStore()
	require.NoError(t, st.Set(context.Background(), store.KeyFavorites, []byte(`{"not":"a list"}`)))
	assert.Error(t, NewFavoritesService(st).Initialize())
}
