package localstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "greentrails.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func TestActiveItineraryUnsetByDefault(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.ActiveItinerary("7")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSetAndOverwriteActiveItinerary(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.SetActiveItinerary("7", 11))
	require.NoError(t, store.SetActiveItinerary("7", 42))

	id, ok, err := store.ActiveItinerary("7")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)
}

func TestClearActiveItinerary(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.SetActiveItinerary("7", 11))
	require.NoError(t, store.ClearActiveItinerary("7"))
	require.NoError(t, store.ClearActiveItinerary("7")) // idempotent

	_, ok, err := store.ActiveItinerary("7")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestActiveItineraryIsolatedPerUser(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.SetActiveItinerary("7", 11))

	_, ok, err := store.ActiveItinerary("8")
	require.NoError(t, err)
	assert.False(t, ok)
}
