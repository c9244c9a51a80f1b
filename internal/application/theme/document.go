package theme

import (
	"sort"
	"sync"
)

// DarkClass clase que marca el documento en modo oscuro.
const DarkClass = "dark"

// Document recibe el tema resuelto. Es la única mutación global de la vista.
type Document interface {
	SetClass(name string, on bool)
}

// DocumentFlags conjunto de clases del documento raíz del perfil.
// SetClass es idempotente: repetirla con el mismo valor no cambia nada.
type DocumentFlags struct {
	mu      sync.RWMutex
	classes map[string]bool
	writes  int
}

// NewDocumentFlags construye un documento sin clases.
func NewDocumentFlags() *DocumentFlags {
	return &DocumentFlags{classes: make(map[string]bool)}
}

// SetClass activa o quita name.
func (d *DocumentFlags) SetClass(name string, on bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.classes[name] == on {
		return
	}
	if on {
		d.classes[name] = true
	} else {
		delete(d.classes, name)
	}
	d.writes++
}

// Has indica si name está activa.
func (d *DocumentFlags) Has(name string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.classes[name]
}

// Classes devuelve las clases activas ordenadas.
func (d *DocumentFlags) Classes() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]string, 0, len(d.classes))
	for c := range d.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Writes número de cambios efectivos aplicados.
func (d *DocumentFlags) Writes() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.writes
}
