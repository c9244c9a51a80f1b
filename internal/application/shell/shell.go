// Package shell decide qué ve el perfil: la vista de login o el shell
// autenticado con su navegación filtrada por rol y la pestaña activa.
package shell

import (
	"fmt"
	"sync"

	"github.com/jhoicas/commodity-flow/internal/domain"
	"github.com/jhoicas/commodity-flow/internal/domain/access"
	"github.com/jhoicas/commodity-flow/internal/domain/entity"
)

// State estado del enrutador de vistas.
type State string

const (
	LoggedOut State = "logged_out"
	LoggedIn  State = "logged_in"
)

// ContentKind qué renderiza el área de contenido.
type ContentKind string

const (
	ContentDashboard  ContentKind = "dashboard"
	ContentProducts   ContentKind = "products"
	ContentAddProduct ContentKind = "add-product"
	ContentDenied     ContentKind = "denied"
)

// Content resultado de renderizar la pestaña activa.
type Content struct {
	Tab     entity.Tab
	Kind    ContentKind
	Message string // solo con ContentDenied
}

// Shell estado de la aplicación autenticada. Se monta en cada login.
type Shell struct {
	user entity.User
	caps access.Capabilities

	mu     sync.Mutex
	active entity.Tab
}

// Mount crea el shell para user con la pestaña por defecto de su rol.
func Mount(user entity.User) *Shell {
	caps := access.For(user.Role)
	return &Shell{user: user, caps: caps, active: caps.DefaultTab()}
}

// User usuario del shell.
func (s *Shell) User() entity.User { return s.user }

// Navigation entradas visibles para el rol.
func (s *Shell) Navigation() []access.NavItem { return s.caps.Navigation() }

// ActiveTab pestaña seleccionada.
func (s *Shell) ActiveTab() entity.Tab {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Select cambia la pestaña activa. Cualquier pestaña conocida se acepta; las no
// permitidas para el rol se renderizan como denegadas.
func (s *Shell) Select(tab string) (entity.Tab, error) {
	t, ok := entity.ParseTab(tab)
	if !ok {
		return "", fmt.Errorf("shell: pestaña %q: %w", tab, domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = t
	return t, nil
}

// Render devuelve el contenido de la pestaña activa.
func (s *Shell) Render() Content {
	tab := s.ActiveTab()
	if !s.caps.Allows(tab) {
		return Content{Tab: tab, Kind: ContentDenied, Message: access.DeniedMessage}
	}
	switch tab {
	case entity.TabDashboard:
		return Content{Tab: tab, Kind: ContentDashboard}
	case entity.TabAddProduct:
		return Content{Tab: tab, Kind: ContentAddProduct}
	default:
		return Content{Tab: tab, Kind: ContentProducts}
	}
}

// PortalTitle título del encabezado según el rol.
func (s *Shell) PortalTitle() string {
	if s.user.IsManager() {
		return "Management Portal"
	}
	return "Store Operations"
}
