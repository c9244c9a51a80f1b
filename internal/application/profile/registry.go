// Package profile agrupa el estado de cada perfil de navegador (sesión, tema,
// vista y borrador de alta) y lo descarga de memoria tras un tiempo sin uso.
// El estado persistente vive en el almacenamiento bajo el prefijo del perfil,
// por lo que un perfil descargado se rehidrata en su siguiente petición.
package profile

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/jhoicas/commodity-flow/internal/application/addproduct"
	"github.com/jhoicas/commodity-flow/internal/application/auth"
	"github.com/jhoicas/commodity-flow/internal/application/ports"
	"github.com/jhoicas/commodity-flow/internal/application/shell"
	"github.com/jhoicas/commodity-flow/internal/application/theme"
	"github.com/jhoicas/commodity-flow/internal/domain/repository"
)

// Deps dependencias compartidas por todos los perfiles.
type Deps struct {
	Users       repository.UserRepository
	Password    auth.PasswordChecker
	Storage     ports.KeyValueStore
	SubmitDelay time.Duration
	Log         zerolog.Logger
	Now         func() time.Time // opcional; time.Now por defecto
}

// Profile estado en memoria de un navegador.
type Profile struct {
	ID         string
	Session    *auth.SessionStore
	Theme      *theme.Store
	Scheme     *theme.SystemScheme
	Document   *theme.DocumentFlags
	Router     *shell.Router
	AddProduct *addproduct.Draft

	mu       sync.Mutex
	lastSeen time.Time
}

func (p *Profile) touch(now time.Time) {
	p.mu.Lock()
	p.lastSeen = now
	p.mu.Unlock()
}

// LastSeen momento de la última petición del perfil.
func (p *Profile) LastSeen() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastSeen
}

// Registry perfiles cargados, indexados por id.
type Registry struct {
	deps Deps

	mu       sync.Mutex
	profiles map[string]*Profile
}

// NewRegistry construye un registro vacío.
func NewRegistry(deps Deps) *Registry {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Registry{deps: deps, profiles: make(map[string]*Profile)}
}

// Get devuelve el perfil id, creándolo (y rehidratándolo) si no está cargado.
// Cada llamada cuenta como actividad.
func (r *Registry) Get(ctx context.Context, id string) (*Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.profiles[id]; ok {
		p.touch(r.deps.Now())
		return p, nil
	}
	p, err := r.load(ctx, id)
	if err != nil {
		return nil, err
	}
	p.touch(r.deps.Now())
	r.profiles[id] = p
	return p, nil
}

func (r *Registry) load(ctx context.Context, id string) (*Profile, error) {
	log := r.deps.Log.With().Str("profile", id).Logger()
	kv := ports.Namespace(r.deps.Storage, "profile:"+id+":")

	session, err := auth.NewSessionStore(ctx, r.deps.Users, r.deps.Password, kv, log)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", id, err)
	}
	scheme := theme.NewSystemScheme(false)
	doc := theme.NewDocumentFlags()
	th, err := theme.NewStore(ctx, kv, scheme, doc, log)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", id, err)
	}
	return &Profile{
		ID:         id,
		Session:    session,
		Theme:      th,
		Scheme:     scheme,
		Document:   doc,
		Router:     shell.NewRouter(session),
		AddProduct: addproduct.NewDraft(r.deps.SubmitDelay, log),
	}, nil
}

// Len número de perfiles cargados.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.profiles)
}

// Sweep descarga los perfiles sin actividad durante idle. Devuelve cuántos.
func (r *Registry) Sweep(idle time.Duration) int {
	cutoff := r.deps.Now().Add(-idle)
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, p := range r.profiles {
		if p.LastSeen().Before(cutoff) {
			p.Theme.Close()
			delete(r.profiles, id)
			n++
		}
	}
	return n
}

// Schedule registra el barrido en el planificador con la expresión cron expr.
func (r *Registry) Schedule(c *cron.Cron, expr string, idle time.Duration) error {
	_, err := c.AddFunc(expr, func() {
		if n := r.Sweep(idle); n > 0 {
			r.deps.Log.Info().Int("evicted", n).Int("loaded", r.Len()).Msg("perfiles inactivos descargados")
		}
	})
	if err != nil {
		return fmt.Errorf("profile: programar barrido %q: %w", expr, err)
	}
	return nil
}
