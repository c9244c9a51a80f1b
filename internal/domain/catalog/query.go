// Package catalog filtra y ordena el catálogo de productos del lado del servidor.
// Se recalcula en cada consulta: el catálogo es pequeño y fijo.
package catalog

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/commodity-flow/internal/domain/entity"
)

// All valor del selector que desactiva el filtro.
const All = "all"

// SortKey criterio de orden.
type SortKey string

const (
	SortByName     SortKey = "name"     // ascendente
	SortByPrice    SortKey = "price"    // descendente
	SortByQuantity SortKey = "quantity" // descendente
	SortByRating   SortKey = "rating"   // descendente
)

// ViewMode disposición de la lista.
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// Criteria filtros y orden de la vista de productos.
type Criteria struct {
	Search   string
	Category string
	Status   string
	Sort     SortKey
	View     ViewMode
}

// DefaultCriteria estado inicial de la vista.
func DefaultCriteria() Criteria {
	return Criteria{Category: All, Status: All, Sort: SortByName, View: ViewGrid}
}

// Normalize rellena selectores vacíos y corrige la vista. Una clave de orden
// desconocida se conserva: Apply deja el orden del catálogo.
func (c Criteria) Normalize() Criteria {
	if c.Category == "" {
		c.Category = All
	}
	if c.Status == "" {
		c.Status = All
	}
	if c.Sort == "" {
		c.Sort = SortByName
	}
	if c.View != ViewList {
		c.View = ViewGrid
	}
	return c
}

// Matches indica si p pasa los filtros.
func (c Criteria) Matches(p entity.Product) bool {
	q := strings.ToLower(c.Search)
	matchesSearch := strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Supplier), q)
	matchesCategory := c.Category == All || c.Category == "" || p.Category == c.Category
	matchesStatus := c.Status == All || c.Status == "" || p.Status == c.Status
	return matchesSearch && matchesCategory && matchesStatus
}

// Apply filtra products y los ordena de forma estable. No modifica la entrada.
func Apply(products []entity.Product, c Criteria) []entity.Product {
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if c.Matches(p) {
			out = append(out, p)
		}
	}
	if cmp := comparator(c.Sort); cmp != nil {
		slices.SortStableFunc(out, cmp)
	}
	return out
}

func comparator(key SortKey) func(a, b entity.Product) int {
	switch key {
	case SortByName:
		// El Collator no es seguro para uso concurrente: uno por llamada.
		col := collate.New(language.English)
		return func(a, b entity.Product) int { return col.CompareString(a.Name, b.Name) }
	case SortByPrice:
		return func(a, b entity.Product) int { return b.Price.Cmp(a.Price) }
	case SortByQuantity:
		return func(a, b entity.Product) int { return b.Quantity - a.Quantity }
	case SortByRating:
		return func(a, b entity.Product) int { return b.Rating.Cmp(a.Rating) }
	}
	return nil
}

// Categories opciones del selector: "all" seguido de las categorías en orden de aparición.
func Categories(products []entity.Product) []string {
	out := []string{All}
	seen := make(map[string]bool)
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// Statuses opciones del selector de estado.
func Statuses() []string {
	return []string{All, entity.StatusInStock, entity.StatusLowStock, entity.StatusOutOfStock}
}
