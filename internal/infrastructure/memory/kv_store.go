// Package memory contiene los adaptadores en memoria: cuentas fijas, catálogo
// estático y el almacenamiento clave-valor por defecto.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/commodity-flow/internal/application/ports"
)

var _ ports.KeyValueStore = (*KVStore)(nil)

// KVStore almacenamiento clave-valor volátil. Se pierde al reiniciar el proceso.
type KVStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewKVStore construye un almacenamiento vacío.
func NewKVStore() *KVStore {
	return &KVStore{data: make(map[string]string)}
}

// Get devuelve el valor guardado en key.
func (s *KVStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

// Set guarda value en key.
func (s *KVStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// Remove elimina key; no falla si no existe.
func (s *KVStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Len número de claves guardadas.
func (s *KVStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
