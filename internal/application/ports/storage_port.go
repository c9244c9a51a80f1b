// Package ports define los contratos que la capa de aplicación necesita de la
// infraestructura.
package ports

import (
	"context"
	"encoding/json"
	"fmt"
)

// KeyValueStore es el almacenamiento local de un perfil: valores opacos por clave.
// Get devuelve ok=false si la clave no existe.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Codec convierte un valor tipado en el texto guardado y viceversa.
type Codec[T any] interface {
	Encode(v T) (string, error)
	Decode(s string) (T, error)
}

// JSONCodec serializa T como JSON.
type JSONCodec[T any] struct{}

func (JSONCodec[T]) Encode(v T) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (JSONCodec[T]) Decode(s string) (T, error) {
	var v T
	err := json.Unmarshal([]byte(s), &v)
	return v, err
}

// LoadResult describe de dónde salió el valor de Load.
type LoadResult int

const (
	LoadMissing LoadResult = iota // no había valor: se usó el default
	LoadCorrupt                   // había valor pero no se pudo decodificar: se usó el default
	LoadOK
)

// Load lee key y la decodifica. Si falta o no decodifica devuelve def; el error
// solo refleja fallos del almacenamiento, nunca del contenido.
func Load[T any](ctx context.Context, kv KeyValueStore, key string, codec Codec[T], def T) (T, LoadResult, error) {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return def, LoadMissing, fmt.Errorf("storage: leer %q: %w", key, err)
	}
	if !ok {
		return def, LoadMissing, nil
	}
	v, err := codec.Decode(raw)
	if err != nil {
		return def, LoadCorrupt, nil
	}
	return v, LoadOK, nil
}

// Save codifica v y lo guarda en key.
func Save[T any](ctx context.Context, kv KeyValueStore, key string, codec Codec[T], v T) error {
	raw, err := codec.Encode(v)
	if err != nil {
		return fmt.Errorf("storage: codificar %q: %w", key, err)
	}
	if err := kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("storage: escribir %q: %w", key, err)
	}
	return nil
}

// Namespace aísla las claves de un perfil anteponiendo prefix.
func Namespace(kv KeyValueStore, prefix string) KeyValueStore {
	return namespaced{kv: kv, prefix: prefix}
}

type namespaced struct {
	kv     KeyValueStore
	prefix string
}

func (n namespaced) Get(ctx context.Context, key string) (string, bool, error) {
	return n.kv.Get(ctx, n.prefix+key)
}

func (n namespaced) Set(ctx context.Context, key, value string) error {
	return n.kv.Set(ctx, n.prefix+key, value)
}

func (n namespaced) Remove(ctx context.Context, key string) error {
	return n.kv.Remove(ctx, n.prefix+key)
}
