// Package addproduct mantiene el borrador del formulario "Add Product" de un
// perfil y simula su envío. El catálogo nunca se modifica.
package addproduct

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/commodity-flow/internal/application/dto"
	"github.com/jhoicas/commodity-flow/internal/domain"
)

// Categories opciones del selector de categoría.
var Categories = []string{"Grains", "Oils", "Legumes", "Sweeteners", "Spices", "Dairy", "Beverages", "Other"}

// Nombres de campo aceptados por Set.
const (
	FieldName        = "name"
	FieldCategory    = "category"
	FieldPrice       = "price"
	FieldStock       = "stock"
	FieldDescription = "description"
	FieldSKU         = "sku"
)

// ValidationError errores por campo. errors.Is(err, domain.ErrInvalidInput) es true.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "addproduct: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInput }

// Validate revisa obligatorios y formatos.
func Validate(f dto.AddProductFields) error {
	errs := make(map[string]string)
	if strings.TrimSpace(f.Name) == "" {
		errs[FieldName] = "Product Name is required"
	}
	switch {
	case f.Category == "":
		errs[FieldCategory] = "Category is required"
	case !slices.Contains(Categories, f.Category):
		errs[FieldCategory] = "Unknown category"
	}
	if f.Price == "" {
		errs[FieldPrice] = "Price is required"
	} else if p, err := decimal.NewFromString(f.Price); err != nil || p.IsNegative() {
		errs[FieldPrice] = "Price must be a non-negative number"
	}
	if f.Stock == "" {
		errs[FieldStock] = "Initial Stock Quantity is required"
	} else if n, err := strconv.Atoi(f.Stock); err != nil || n < 0 {
		errs[FieldStock] = "Stock must be a non-negative whole number"
	}
	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

// Draft borrador del formulario de un perfil.
type Draft struct {
	delay time.Duration
	log   zerolog.Logger

	mu         sync.Mutex
	fields     dto.AddProductFields
	submitting bool
}

// NewDraft crea un borrador vacío; delay simula la llamada al backend.
func NewDraft(delay time.Duration, log zerolog.Logger) *Draft {
	return &Draft{delay: delay, log: log}
}

// View estado actual del formulario.
func (d *Draft) View() dto.AddProductFormResponse {
	d.mu.Lock()
	defer d.mu.Unlock()
	label := "Add Product"
	if d.submitting {
		label = "Adding Product..."
	}
	return dto.AddProductFormResponse{
		Title:       "Add New Product",
		Fields:      d.fields,
		Categories:  slices.Clone(Categories),
		Submitting:  d.submitting,
		SubmitLabel: label,
	}
}

// Set asigna un campo. Un nombre desconocido es entrada inválida.
func (d *Draft) Set(field, value string) error {
	return d.Patch(map[string]string{field: value})
}

// Patch asigna varios campos de forma atómica: si alguno es desconocido no se
// aplica ninguno.
func (d *Draft) Patch(values map[string]string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	next := d.fields
	for field, value := range values {
		switch field {
		case FieldName:
			next.Name = value
		case FieldCategory:
			next.Category = value
		case FieldPrice:
			next.Price = value
		case FieldStock:
			next.Stock = value
		case FieldDescription:
			next.Description = value
		case FieldSKU:
			next.SKU = value
		default:
			return fmt.Errorf("addproduct: campo %q: %w", field, domain.ErrInvalidInput)
		}
	}
	d.fields = next
	return nil
}

// Reset vacía todos los campos.
func (d *Draft) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fields = dto.AddProductFields{}
}

// Submit valida, espera la demora simulada y devuelve la notificación de éxito
// dejando el formulario vacío. Un segundo envío en curso devuelve
// domain.ErrConflict. Si ctx se cancela durante la espera el borrador se conserva.
func (d *Draft) Submit(ctx context.Context) (dto.NotificationResponse, error) {
	d.mu.Lock()
	if d.submitting {
		d.mu.Unlock()
		return dto.NotificationResponse{}, fmt.Errorf("addproduct: envío en curso: %w", domain.ErrConflict)
	}
	if err := Validate(d.fields); err != nil {
		d.mu.Unlock()
		return dto.NotificationResponse{}, err
	}
	d.submitting = true
	name := d.fields.Name
	d.mu.Unlock()

	timer := time.NewTimer(d.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		d.mu.Lock()
		d.submitting = false
		d.mu.Unlock()
		return dto.NotificationResponse{}, ctx.Err()
	case <-timer.C:
	}

	d.mu.Lock()
	d.fields = dto.AddProductFields{}
	d.submitting = false
	d.mu.Unlock()

	d.log.Info().Str("product", name).Msg("alta de producto simulada")
	return dto.NotificationResponse{
		Title:       "Product Added",
		Description: name + " has been successfully added to inventory.",
	}, nil
}
