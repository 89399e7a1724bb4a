package kvstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogue struct {
	Names []string `json:"names"`
}

func exerciseStore(t *testing.T, s Store) {
	ctx := context.Background()

	var out catalogue
	assert.ErrorIs(t, s.Get(ctx, "products", &out), ErrNotFound)

	require.NoError(t, s.Set(ctx, "products", catalogue{Names: []string{"chair", "desk"}}))
	require.NoError(t, s.Get(ctx, "products", &out))
	assert.Equal(t, []string{"chair", "desk"}, out.Names)

	require.NoError(t, s.Set(ctx, "ml_api_key", "secret"))
	var key string
	require.NoError(t, s.Get(ctx, "ml_api_key", &key))
	assert.Equal(t, "secret", key)

	require.NoError(t, s.Delete(ctx, "ml_api_key"))
	require.NoError(t, s.Delete(ctx, "ml_api_key"))
	assert.ErrorIs(t, s.Get(ctx, "ml_api_key", &key), ErrNotFound)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemory())
}

func TestFileStore(t *testing.T) {
	f, err := NewFile(filepath.Join(t.TempDir(), "nested", "store.json"))
	require.NoError(t, err)
	exerciseStore(t, f)
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	ctx := context.Background()

	first, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "products", catalogue{Names: []string{"lamp"}}))

	second, err := NewFile(path)
	require.NoError(t, err)
	var out catalogue
	require.NoError(t, second.Get(ctx, "products", &out))
	assert.Equal(t, []string{"lamp"}, out.Names)
}
