package client

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store := NewTokenStore(path)

	require.NoError(t, store.SetToken("abc"))

	// a fresh store over the same path simulates a reload
	reloaded := NewTokenStore(path)
	assert.Equal(t, "abc", reloaded.Token())
	assert.True(t, reloaded.IsAuthenticated())
}

func TestTokenStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store := NewTokenStore(path)

	require.NoError(t, store.SetToken("abc"))
	require.NoError(t, store.ClearToken())

	assert.Equal(t, "", store.Token())
	assert.False(t, store.IsAuthenticated())

	// clearing an already-empty store is not an error
	assert.NoError(t, store.ClearToken())
}

func TestTokenStoreMissingFile(t *testing.T) {
	store := NewTokenStore(filepath.Join(t.TempDir(), "nope", "token"))
	assert.Equal(t, "", store.Token())
	assert.False(t, store.IsAuthenticated())
}
