// Package theme resuelve la preferencia de tema del perfil (light, dark, auto)
// contra el esquema de color del sistema y la refleja en el documento.
package theme

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/commodity-flow/internal/application/ports"
	"github.com/jhoicas/commodity-flow/internal/domain/entity"
)

// StorageKey clave del almacenamiento del perfil con la preferencia cruda.
const StorageKey = "commodityTheme"

// DefaultPreference preferencia cuando no hay nada guardado.
const DefaultPreference = entity.ThemeAuto

// PreferenceCodec guarda la preferencia como texto plano ("light", "dark", "auto").
type PreferenceCodec struct{}

func (PreferenceCodec) Encode(p entity.ThemePreference) (string, error) {
	return string(p), nil
}

func (PreferenceCodec) Decode(s string) (entity.ThemePreference, error) {
	p, ok := entity.ParseThemePreference(s)
	if !ok {
		return "", errors.New("theme: preferencia desconocida")
	}
	return p, nil
}

// Store mantiene la preferencia del perfil y su tema resuelto.
// El listener del sistema solo está suscrito mientras la preferencia es auto.
type Store struct {
	kv     ports.KeyValueStore
	scheme SchemeSource
	doc    Document
	log    zerolog.Logger

	mu          sync.Mutex
	pref        entity.ThemePreference
	resolved    entity.ResolvedTheme
	unsubscribe func()
}

// NewStore carga la preferencia guardada (auto si falta o es inválida) y la aplica.
// Solo escribe en el almacenamiento si el valor guardado era inválido.
func NewStore(ctx context.Context, kv ports.KeyValueStore, scheme SchemeSource, doc Document, log zerolog.Logger) (*Store, error) {
	pref, res, err := ports.Load[entity.ThemePreference](ctx, kv, StorageKey, PreferenceCodec{}, DefaultPreference)
	if err != nil {
		return nil, fmt.Errorf("theme: cargar preferencia: %w", err)
	}
	if res == ports.LoadCorrupt {
		log.Warn().Str("key", StorageKey).Msg("preferencia de tema inválida, se usa auto")
	}

	s := &Store{kv: kv, scheme: scheme, doc: doc, log: log}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyLocked(pref)
	if res == ports.LoadCorrupt {
		if err := s.persistLocked(ctx); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// SetTheme fija la preferencia, la resuelve y la persiste.
// Si la persistencia falla el cambio en memoria se conserva y se devuelve el error.
func (s *Store) SetTheme(ctx context.Context, pref entity.ThemePreference) error {
	if _, ok := entity.ParseThemePreference(string(pref)); !ok {
		return fmt.Errorf("theme: preferencia %q inválida", pref)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyLocked(pref)
	return s.persistLocked(ctx)
}

// Toggle avanza el ciclo light → dark → auto → light y devuelve la nueva preferencia.
func (s *Store) Toggle(ctx context.Context) (entity.ThemePreference, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.pref.Next()
	s.applyLocked(next)
	return next, s.persistLocked(ctx)
}

// Preference devuelve la preferencia cruda.
func (s *Store) Preference() entity.ThemePreference {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pref
}

// Resolved devuelve el tema efectivo.
func (s *Store) Resolved() entity.ResolvedTheme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolved
}

// Close da de baja el listener del sistema, si existe.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detachLocked()
}

func (s *Store) applyLocked(pref entity.ThemePreference) {
	s.pref = pref
	if pref == entity.ThemeAuto {
		if s.unsubscribe == nil {
			s.unsubscribe = s.scheme.Subscribe(s.onSystemChange)
		}
	} else {
		s.detachLocked()
	}
	s.resolveLocked()
}

func (s *Store) detachLocked() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

func (s *Store) resolveLocked() {
	switch s.pref {
	case entity.ThemeDark:
		s.resolved = entity.ResolvedDark
	case entity.ThemeLight:
		s.resolved = entity.ResolvedLight
	default:
		if s.scheme.PrefersDark() {
			s.resolved = entity.ResolvedDark
		} else {
			s.resolved = entity.ResolvedLight
		}
	}
	s.doc.SetClass(DarkClass, s.resolved == entity.ResolvedDark)
}

func (s *Store) persistLocked(ctx context.Context) error {
	if err := ports.Save[entity.ThemePreference](ctx, s.kv, StorageKey, PreferenceCodec{}, s.pref); err != nil {
		return fmt.Errorf("theme: persistir: %w", err)
	}
	return nil
}

func (s *Store) onSystemChange(bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Una notificación en vuelo puede llegar tras darse de baja.
	if s.pref != entity.ThemeAuto {
		return
	}
	s.resolveLocked()
	s.log.Debug().Str("resolved", string(s.resolved)).Msg("esquema del sistema cambió")
}
