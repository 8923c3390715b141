package persistence

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientStateStore(t *testing.T) {
	t.Run("LoadNonExistent", func(t *testing.T) {
		store := NewClientStateStore(filepath.Join(t.TempDir(), "nonexistent.json"))

		got, err := store.Load()
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("SaveAndLoad", func(t *testing.T) {
		store := NewClientStateStore(filepath.Join(t.TempDir(), "nested", "state.json"))
		savedAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		store.now = func() time.Time { return savedAt }

		connectedAt := savedAt.Add(-time.Minute)
		require.NoError(t, store.Save(&ClientState{
			ClientID:        "meter-7",
			Endpoint:        "broker.local:8883",
			SessionPresent:  true,
			LastConnectedAt: connectedAt,
		}))

		got, err := store.Load()
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, StateVersion, got.Version)
		assert.True(t, got.SavedAt.Equal(savedAt))
		assert.Equal(t, "meter-7", got.ClientID)
		assert.Equal(t, "broker.local:8883", got.Endpoint)
		assert.True(t, got.SessionPresent)
		assert.True(t, got.LastConnectedAt.Equal(connectedAt))

		_, err = os.Stat(store.Path() + ".tmp")
		assert.True(t, os.IsNotExist(err), "temporary file should be renamed away")
	})

	t.Run("Overwrite", func(t *testing.T) {
		store := NewClientStateStore(filepath.Join(t.TempDir(), "state.json"))

		require.NoError(t, store.Save(&ClientState{ClientID: "a", SessionPresent: true}))
		require.NoError(t, store.Save(&ClientState{ClientID: "a"}))

		got, err := store.Load()
		require.NoError(t, err)
		assert.False(t, got.SessionPresent)
	})

	t.Run("Corrupt", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "state.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

		_, err := NewClientStateStore(path).Load()
		assert.Error(t, err)
	})

	t.Run("NewerVersion", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "state.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"version": 99, "client_id": "x"}`), 0600))

		_, err := NewClientStateStore(path).Load()
		assert.ErrorIs(t, err, ErrUnsupportedVersion)
	})

	t.Run("Clear", func(t *testing.T) {
		store := NewClientStateStore(filepath.Join(t.TempDir(), "state.json"))
		require.NoError(t, store.Save(&ClientState{ClientID: "a"}))

		require.NoError(t, store.Clear())
		got, err := store.Load()
		require.NoError(t, err)
		assert.Nil(t, got)

		assert.NoError(t, store.Clear(), "clearing a missing file is not an error")
	})
}
