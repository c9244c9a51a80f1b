package redis_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infraredis "github.com/jhoicas/commodity-flow/internal/infrastructure/redis"
	"github.com/jhoicas/commodity-flow/pkg/config"
)

// Requiere un Redis accesible en REDIS_ADDR; sin él se omite.
func newStore(t *testing.T) *infraredis.KVStore {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR no definido")
	}
	rdb, err := infraredis.NewClient(context.Background(), config.RedisConfig{Addr: addr})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })
	return infraredis.NewKVStore(rdb)
}

func TestKVStore_SetGetRemove(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	key := "profile:" + uuid.NewString() + ":commodityTheme"
	t.Cleanup(func() { _ = store.Remove(context.Background(), key) })

	_, ok, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, key, "dark"))
	v, ok, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	require.NoError(t, store.Set(ctx, key, "light"))
	v, _, err = store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "light", v, "Set sobrescribe")

	require.NoError(t, store.Remove(ctx, key))
	_, ok, err = store.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKVStore_RemoveInexistente(t *testing.T) {
	store := newStore(t)
	assert.NoError(t, store.Remove(context.Background(), "profile:"+uuid.NewString()+":commodityUser"))
}

func TestNewClient_DireccionInalcanzable(t *testing.T) {
	_, err := infraredis.NewClient(context.Background(), config.RedisConfig{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}
