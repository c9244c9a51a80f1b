package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/commodity-flow/internal/application/dto"
)

// CatalogReport datos del listado exportado.
type CatalogReport struct {
	Title       string
	CountLabel  string
	Criteria    dto.ProductListQuery
	Products    []dto.ProductResponse
	Empty       *dto.EmptyStateDTO
	GeneratedAt time.Time
}

// CatalogPDFGenerator puerto de salida para el renderizado en PDF.
type CatalogPDFGenerator interface {
	GenerateCatalogPDF(ctx context.Context, report CatalogReport) ([]byte, error)
}

// ExportUseCase exporta la vista de productos filtrada a PDF.
type ExportUseCase struct {
	catalog *CatalogUseCase
	gen     CatalogPDFGenerator
	now     func() time.Time
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(catalog *CatalogUseCase, gen CatalogPDFGenerator) *ExportUseCase {
	return &ExportUseCase{catalog: catalog, gen: gen, now: time.Now}
}

// ExportPDF genera el PDF con los mismos filtros y orden que ListView.
func (uc *ExportUseCase) ExportPDF(ctx context.Context, q dto.ProductListQuery) ([]byte, error) {
	view, err := uc.catalog.ListView(ctx, q)
	if err != nil {
		return nil, err
	}
	doc, err := uc.gen.GenerateCatalogPDF(ctx, CatalogReport{
		Title:       view.Title,
		CountLabel:  view.CountLabel,
		Criteria:    view.Query,
		Products:    view.Products,
		Empty:       view.Empty,
		GeneratedAt: uc.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("inventory: exportar pdf: %w", err)
	}
	return doc, nil
}
