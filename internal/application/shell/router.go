package shell

import (
	"sync"

	"github.com/jhoicas/commodity-flow/internal/domain/entity"
)

// SessionSource lo que el enrutador necesita del Session Store.
type SessionSource interface {
	Current() *entity.User
	Subscribe(fn func(*entity.User))
}

// Router máquina de dos estados {LoggedOut, LoggedIn} guiada por la sesión.
// Cada transición a LoggedIn monta un shell nuevo.
type Router struct {
	mu    sync.Mutex
	shell *Shell
}

// NewRouter se suscribe a la sesión y monta el shell si ya hay usuario.
func NewRouter(session SessionSource) *Router {
	r := &Router{}
	if u := session.Current(); u != nil {
		r.shell = Mount(*u)
	}
	session.Subscribe(r.onSessionChange)
	return r
}

// State estado actual.
func (r *Router) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.shell == nil {
		return LoggedOut
	}
	return LoggedIn
}

// Shell devuelve el shell montado o nil si no hay sesión.
func (r *Router) Shell() *Shell {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.shell
}

func (r *Router) onSessionChange(u *entity.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u == nil {
		r.shell = nil
		return
	}
	r.shell = Mount(*u)
}
