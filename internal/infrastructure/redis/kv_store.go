// Package redis implementa el almacenamiento de perfiles sobre Redis.
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/commodity-flow/internal/application/ports"
	"github.com/jhoicas/commodity-flow/pkg/config"
)

var _ ports.KeyValueStore = (*KVStore)(nil)

// keyPrefix separa las claves de la app de otras que compartan la base.
const keyPrefix = "commodity-flow:"

// NewClient abre la conexión y verifica con PING.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

// KVStore adaptador del puerto KeyValueStore sobre Redis (strings sin expiración).
type KVStore struct {
	rdb goredis.Cmdable
}

// NewKVStore construye el adaptador.
func NewKVStore(rdb goredis.Cmdable) *KVStore {
	return &KVStore{rdb: rdb}
}

// Get devuelve el valor guardado en key.
func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.rdb.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get: %w", err)
	}
	return v, true, nil
}

// Set guarda value en key sin TTL.
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	if err := s.rdb.Set(ctx, keyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Remove elimina key.
func (s *KVStore) Remove(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
