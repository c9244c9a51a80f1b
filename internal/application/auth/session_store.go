package auth

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/commodity-flow/internal/application/ports"
	"github.com/jhoicas/commodity-flow/internal/domain/entity"
	"github.com/jhoicas/commodity-flow/internal/domain/repository"
)

// SessionKey clave del almacenamiento del perfil donde se guarda el usuario autenticado.
const SessionKey = "commodityUser"

// PasswordChecker verifica la contraseña de un login.
type PasswordChecker interface {
	Matches(password string) bool
}

// SessionStore mantiene la sesión del perfil: el usuario autenticado, si lo hay.
//
// La sesión persistida se confía tal cual al rehidratar: no se vuelve a validar
// contra la lista de usuarios.
type SessionStore struct {
	users    repository.UserRepository
	password PasswordChecker
	kv       ports.KeyValueStore
	log      zerolog.Logger

	mu        sync.RWMutex
	user      *entity.User
	listeners []func(*entity.User)
}

// NewSessionStore construye el store e intenta rehidratar la sesión guardada.
// Un valor ausente o corrupto deja el perfil sin sesión; solo un fallo del
// almacenamiento se devuelve como error.
func NewSessionStore(
	ctx context.Context,
	users repository.UserRepository,
	password PasswordChecker,
	kv ports.KeyValueStore,
	log zerolog.Logger,
) (*SessionStore, error) {
	s := &SessionStore{users: users, password: password, kv: kv, log: log}

	saved, res, err := ports.Load[*entity.User](ctx, kv, SessionKey, ports.JSONCodec[*entity.User]{}, nil)
	if err != nil {
		return nil, fmt.Errorf("session: rehidratar: %w", err)
	}
	if res == ports.LoadCorrupt {
		log.Warn().Str("key", SessionKey).Msg("sesión guardada ilegible, se ignora")
	}
	s.user = saved
	return s, nil
}

// Login valida email y contraseña. Devuelve false, nil si las credenciales no
// coinciden; en ese caso no hay efectos. La sesión solo cambia después de
// persistirse: un error del almacenamiento la deja intacta.
func (s *SessionStore) Login(ctx context.Context, email, password string) (bool, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("session: buscar usuario: %w", err)
	}
	if user == nil || !s.password.Matches(password) {
		return false, nil
	}

	if err := ports.Save(ctx, s.kv, SessionKey, ports.JSONCodec[*entity.User]{}, user); err != nil {
		return false, fmt.Errorf("session: persistir: %w", err)
	}

	s.mu.Lock()
	s.user = user
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("login")
	notify(listeners, user)
	return true, nil
}

// Logout elimina la copia persistida y después limpia la sesión. Si el
// almacenamiento falla la sesión sigue activa.
func (s *SessionStore) Logout(ctx context.Context) error {
	if err := s.kv.Remove(ctx, SessionKey); err != nil {
		return fmt.Errorf("session: eliminar persistida: %w", err)
	}

	s.mu.Lock()
	prev := s.user
	s.user = nil
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	if prev != nil {
		s.log.Info().Str("user_id", prev.ID).Msg("logout")
		notify(listeners, nil)
	}
	return nil
}

// Current devuelve una copia del usuario autenticado, o nil.
func (s *SessionStore) Current() *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated indica si hay sesión.
func (s *SessionStore) IsAuthenticated() bool {
	return s.Current() != nil
}

// Subscribe registra fn para cada cambio de sesión (nil tras logout).
func (s *SessionStore) Subscribe(fn func(*entity.User)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *SessionStore) snapshotListeners() []func(*entity.User) {
	out := make([]func(*entity.User), len(s.listeners))
	copy(out, s.listeners)
	return out
}

func notify(listeners []func(*entity.User), u *entity.User) {
	for _, fn := range listeners {
		if u == nil {
			fn(nil)
			continue
		}
		cp := *u
		fn(&cp)
	}
}
