// Package inventory expone el catálogo de solo lectura y arma la vista de
// productos con sus etiquetas de presentación.
package inventory

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/commodity-flow/internal/application/dto"
	"github.com/jhoicas/commodity-flow/internal/domain"
	"github.com/jhoicas/commodity-flow/internal/domain/catalog"
	"github.com/jhoicas/commodity-flow/internal/domain/entity"
	"github.com/jhoicas/commodity-flow/internal/domain/repository"
)

// CatalogUseCase acceso de solo lectura al catálogo. No hay ruta de escritura.
type CatalogUseCase struct {
	repo repository.ProductRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// List catálogo completo en su orden original.
func (uc *CatalogUseCase) List(ctx context.Context) ([]entity.Product, error) {
	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory: listar catálogo: %w", err)
	}
	return products, nil
}

// GetByID producto por id; domain.ErrNotFound si no existe.
func (uc *CatalogUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("inventory: obtener producto %s: %w", id, err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	out := toProductResponse(message.NewPrinter(language.English), *p)
	return &out, nil
}

// Categories "all" seguido de las categorías en orden del catálogo.
func (uc *CatalogUseCase) Categories(ctx context.Context) ([]string, error) {
	products, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Categories(products), nil
}

// Count tamaño del catálogo.
func (uc *CatalogUseCase) Count(ctx context.Context) (int, error) {
	products, err := uc.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(products), nil
}

// Filter aplica los criterios y devuelve los productos resultantes junto con
// los criterios normalizados.
func (uc *CatalogUseCase) Filter(ctx context.Context, q dto.ProductListQuery) ([]entity.Product, catalog.Criteria, error) {
	products, err := uc.List(ctx)
	if err != nil {
		return nil, catalog.Criteria{}, err
	}
	c := CriteriaFrom(q)
	return catalog.Apply(products, c), c, nil
}

// ListView arma la vista de productos. Se recalcula en cada llamada.
func (uc *CatalogUseCase) ListView(ctx context.Context, q dto.ProductListQuery) (*dto.ProductListResponse, error) {
	all, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	c := CriteriaFrom(q)
	filtered := catalog.Apply(all, c)

	p := message.NewPrinter(language.English)
	items := make([]dto.ProductResponse, 0, len(filtered))
	for _, prod := range filtered {
		items = append(items, toProductResponse(p, prod))
	}

	resp := &dto.ProductListResponse{
		Title:        "Product Inventory",
		CountLabel:   fmt.Sprintf("%d of %d products", len(filtered), len(all)),
		Shown:        len(filtered),
		Total:        len(all),
		StatusCounts: countStatuses(all),
		Query: dto.ProductListQuery{
			Search: c.Search, Category: c.Category, Status: c.Status,
			Sort: string(c.Sort), View: string(c.View),
		},
		Categories:  catalog.Categories(all),
		Statuses:    statusOptions(),
		SortOptions: sortOptions(),
		Products:    items,
	}
	if len(filtered) == 0 {
		resp.Empty = &dto.EmptyStateDTO{
			Title:       "No products found",
			Description: "Try adjusting your search or filter criteria",
		}
	}
	return resp, nil
}

// CriteriaFrom convierte la query en criterios normalizados.
func CriteriaFrom(q dto.ProductListQuery) catalog.Criteria {
	return catalog.Criteria{
		Search:   q.Search,
		Category: q.Category,
		Status:   q.Status,
		Sort:     catalog.SortKey(q.Sort),
		View:     catalog.ViewMode(q.View),
	}.Normalize()
}

// StatusLabel "in-stock" -> "in stock".
func StatusLabel(status string) string {
	return strings.Replace(status, "-", " ", 1)
}

func toProductResponse(p *message.Printer, prod entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:           prod.ID,
		Name:         prod.Name,
		Category:     prod.Category,
		Supplier:     prod.Supplier,
		Quantity:     prod.Quantity,
		Price:        prod.Price.StringFixed(2),
		Status:       prod.Status,
		Trend:        prod.Trend,
		Rating:       prod.Rating.String(),
		LastUpdated:  prod.LastUpdated,
		QuantityText: p.Sprintf("%d", prod.Quantity),
		PriceText:    "$" + prod.Price.StringFixed(2),
		StatusText:   StatusLabel(prod.Status),
		UpdatedText:  "Updated " + prod.LastUpdated,
	}
}

func countStatuses(products []entity.Product) dto.StatusCountsDTO {
	var out dto.StatusCountsDTO
	for _, p := range products {
		switch p.Status {
		case entity.StatusInStock:
			out.InStock++
		case entity.StatusLowStock:
			out.LowStock++
		case entity.StatusOutOfStock:
			out.OutOfStock++
		}
	}
	return out
}

var statusOptionLabels = map[string]string{
	catalog.All:             "All Status",
	entity.StatusInStock:    "In Stock",
	entity.StatusLowStock:   "Low Stock",
	entity.StatusOutOfStock: "Out of Stock",
}

func statusOptions() []dto.OptionDTO {
	values := catalog.Statuses()
	out := make([]dto.OptionDTO, 0, len(values))
	for _, v := range values {
		out = append(out, dto.OptionDTO{Value: v, Label: statusOptionLabels[v]})
	}
	return out
}

func sortOptions() []dto.OptionDTO {
	return []dto.OptionDTO{
		{Value: string(catalog.SortByName), Label: "Sort by Name"},
		{Value: string(catalog.SortByPrice), Label: "Sort by Price"},
		{Value: string(catalog.SortByQuantity), Label: "Sort by Quantity"},
		{Value: string(catalog.SortByRating), Label: "Sort by Rating"},
	}
}
