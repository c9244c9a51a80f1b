package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/commodity-flow/pkg/config"
)

func TestOpenStorage_DriverDesconocido(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: "etcd"}}
	kv, closeFn, err := openStorage(context.Background(), cfg)
	require.Error(t, err)
	assert.Nil(t, kv)
	assert.Nil(t, closeFn)
}

func TestOpenStorage_MemoriaYBolt(t *testing.T) {
	ctx := context.Background()
	cases := []*config.Config{
		{Storage: config.StorageConfig{Driver: config.StorageMemory}},
		{
			Storage: config.StorageConfig{Driver: config.StorageBolt},
			Bolt:    config.BoltConfig{Path: filepath.Join(t.TempDir(), "profiles.db")},
		},
	}
	for _, cfg := range cases {
		t.Run(cfg.Storage.Driver, func(t *testing.T) {
			kv, closeFn, err := openStorage(ctx, cfg)
			require.NoError(t, err)
			require.NotNil(t, closeFn)
			defer closeFn()

			require.NoError(t, kv.Set(ctx, "commodityTheme", "dark"))
			v, ok, err := kv.Get(ctx, "commodityTheme")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "dark", v)
		})
	}
}
