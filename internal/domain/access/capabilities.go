// Package access define qué vistas puede abrir cada rol.
package access

import (
	"fmt"

	"github.com/jhoicas/commodity-flow/internal/domain"
	"github.com/jhoicas/commodity-flow/internal/domain/entity"
)

// DeniedMessage texto fijo al intentar abrir una vista no permitida.
const DeniedMessage = "Access Denied"

// NavItem entrada de la barra de navegación.
type NavItem struct {
	ID           entity.Tab
	Label        string
	AllowedRoles []string
}

// navigation tabla declarativa rol → vista, en orden de presentación.
var navigation = []NavItem{
	{ID: entity.TabDashboard, Label: "Dashboard", AllowedRoles: []string{entity.RoleManager}},
	{ID: entity.TabProducts, Label: "View Products", AllowedRoles: []string{entity.RoleManager, entity.RoleStorekeeper}},
	{ID: entity.TabAddProduct, Label: "Add Product", AllowedRoles: []string{entity.RoleManager, entity.RoleStorekeeper}},
}

// Capabilities conjunto de vistas permitidas para un rol, evaluado una vez por sesión.
type Capabilities struct {
	role    string
	allowed map[entity.Tab]bool
	nav     []NavItem
}

// For evalúa la tabla para role. Un rol desconocido no tiene vistas.
func For(role string) Capabilities {
	c := Capabilities{role: role, allowed: make(map[entity.Tab]bool)}
	for _, item := range navigation {
		for _, r := range item.AllowedRoles {
			if r == role {
				c.allowed[item.ID] = true
				c.nav = append(c.nav, item)
				break
			}
		}
	}
	return c
}

// Role rol evaluado.
func (c Capabilities) Role() string { return c.role }

// Allows indica si el rol puede ver tab.
func (c Capabilities) Allows(tab entity.Tab) bool { return c.allowed[tab] }

// Navigation entradas visibles para el rol, en orden.
func (c Capabilities) Navigation() []NavItem {
	out := make([]NavItem, len(c.nav))
	copy(out, c.nav)
	return out
}

// DefaultTab vista inicial al montar el shell: dashboard para gerente, productos para el resto.
func (c Capabilities) DefaultTab() entity.Tab {
	if c.role == entity.RoleManager {
		return entity.TabDashboard
	}
	return entity.TabProducts
}

// Allowed atajo de For(role).Allows(tab).
func Allowed(role string, tab entity.Tab) bool {
	return For(role).Allows(tab)
}

// Require devuelve domain.ErrForbidden si role no puede ver tab.
func Require(role string, tab entity.Tab) error {
	if !Allowed(role, tab) {
		return fmt.Errorf("%s → %s: %w", role, tab, domain.ErrForbidden)
	}
	return nil
}
