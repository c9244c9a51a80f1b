package bolt_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/commodity-flow/internal/infrastructure/bolt"
)

func TestKVStore_SetGetRemove(t *testing.T) {
	ctx := context.Background()
	store, err := bolt.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer store.Close()

	_, ok, err := store.Get(ctx, "commodityTheme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "commodityTheme", "dark"))
	v, ok, err := store.Get(ctx, "commodityTheme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	require.NoError(t, store.Remove(ctx, "commodityTheme"))
	_, ok, err = store.Get(ctx, "commodityTheme")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKVStore_PersisteEntreAperturas(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "persist.db")

	store, err := bolt.Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "commodityUser", `{"id":"1"}`))
	require.NoError(t, store.Close())

	reopened, err := bolt.Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok, err := reopened.Get(ctx, "commodityUser")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"id":"1"}`, v)
}
