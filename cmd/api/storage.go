package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/commodity-flow/internal/application/ports"
	"github.com/jhoicas/commodity-flow/internal/infrastructure/bolt"
	"github.com/jhoicas/commodity-flow/internal/infrastructure/memory"
	"github.com/jhoicas/commodity-flow/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/commodity-flow/internal/infrastructure/redis"
	"github.com/jhoicas/commodity-flow/pkg/config"
)

// openStorage abre el almacenamiento clave-valor según STORAGE_DRIVER.
// Sin error, la función de cierre devuelta nunca es nil.
func openStorage(ctx context.Context, cfg *config.Config) (ports.KeyValueStore, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageRedis:
		rdb, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return infraredis.NewKVStore(rdb), func() { _ = rdb.Close() }, nil

	case config.StorageBolt:
		kv, err := bolt.Open(cfg.Bolt.Path)
		if err != nil {
			return nil, nil, err
		}
		return kv, func() { _ = kv.Close() }, nil

	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		kv := postgres.NewKVStore(pool)
		if err := kv.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return kv, pool.Close, nil

	case config.StorageMemory:
		return memory.NewKVStore(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("storage: driver desconocido %q", cfg.Storage.Driver)
}
