// Package bolt implementa el almacenamiento de perfiles en un archivo bbolt local.
package bolt

import (
	"context"
	"fmt"
	"time"

	bbolt "go.etcd.io/bbolt"

	"github.com/jhoicas/commodity-flow/internal/application/ports"
)

var _ ports.KeyValueStore = (*KVStore)(nil)

var bucketName = []byte("local_storage")

// KVStore adaptador del puerto KeyValueStore sobre un único bucket bbolt.
type KVStore struct {
	db *bbolt.DB
}

// Open abre (o crea) el archivo y garantiza el bucket.
func Open(path string) (*KVStore, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("abrir bolt %s: %w", path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("crear bucket: %w", err)
	}
	return &KVStore{db: db}, nil
}

// Close libera el archivo.
func (s *KVStore) Close() error {
	return s.db.Close()
}

// Get devuelve el valor guardado en key.
func (s *KVStore) Get(_ context.Context, key string) (string, bool, error) {
	var (
		value string
		found bool
	)
	err := s.db.View(func(tx *bbolt.Tx) error {
		// El slice solo es válido dentro de la transacción: se copia.
		if v := tx.Bucket(bucketName).Get([]byte(key)); v != nil {
			value, found = string(v), true
		}
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("bolt get: %w", err)
	}
	return value, found, nil
}

// Set guarda value en key.
func (s *KVStore) Set(_ context.Context, key, value string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("bolt put: %w", err)
	}
	return nil
}

// Remove elimina key.
func (s *KVStore) Remove(_ context.Context, key string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("bolt delete: %w", err)
	}
	return nil
}
