package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MauItu/inventario-alimentos/entity"
)

func TestCacheMissingFileMeansLoggedOut(t *testing.T) {
	cache := NewCache(filepath.Join(t.TempDir(), "session.json"))
	snap, err := cache.Load()
	require.NoError(t, err)
	assert.Nil(t, snap.Identity)
	assert.Empty(t, snap.Items)
}

func TestCacheRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	cache := NewCache(path)

	snap := &Snapshot{
		Identity: &entity.Identity{ID: "u-1", Email: "a@x.com"},
		Items:    []entity.Item{{ID: "i-1", Name: "Rice"}},
	}
	require.NoError(t, cache.Save(snap))

	loaded, err := cache.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded.Identity)
	assert.Equal(t, "a@x.com", loaded.Identity.Email)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "i-1", loaded.Items[0].ID)
}

func TestCacheClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	cache := NewCache(path)

	require.NoError(t, cache.Save(&Snapshot{Identity: &entity.Identity{Email: "a@x.com"}}))
	require.NoError(t, cache.Clear())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Clearing twice is fine
	require.NoError(t, cache.Clear())
}

func TestCacheCorruptFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewCache(path).Load()
	assert.Error(t, err)
}
