// Package pdf genera la exportación A4 del listado de productos.
//
// Layout de la página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: CommodityFlow + título  │  conteo + fecha          │
//	│  FILTROS: búsqueda / categoría / estado / orden             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Categoría | Proveedor | Cant | Precio |  │
//	│         Estado | Rating                                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: nota de solo lectura                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/commodity-flow/internal/application/dto"
	"github.com/jhoicas/commodity-flow/internal/application/inventory"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 37, Green: 99, Blue: 235}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGreen   = &props.Color{Red: 22, Green: 163, Blue: 74}
	colorAmber   = &props.Color{Red: 202, Green: 138, Blue: 4}
	colorRed     = &props.Color{Red: 220, Green: 38, Blue: 38}
)

var _ inventory.CatalogPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa inventory.CatalogPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateCatalogPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateCatalogPDF(_ context.Context, report inventory.CatalogReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title, true).
		WithAuthor("CommodityFlow", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(filtersRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(report.Products) == 0 {
		m.AddRows(emptyRow(report))
	}
	for _, r := range tableDetailRows(report.Products) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: marca y título (izq), conteo y fecha (der).
func headerRow(report inventory.CatalogReport) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("CommodityFlow", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(report.Title, props.Text{
				Size: 10, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(report.CountLabel, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
			}),
			text.New("Generated: "+report.GeneratedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// filtersRow: criterios aplicados al listado.
func filtersRow(report inventory.CatalogReport) core.Row {
	c := report.Criteria
	search := c.Search
	if search == "" {
		search = "—"
	}
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Search: %s   |   Category: %s   |   Status: %s   |   Sort: %s",
			search, c.Category, c.Status, c.Sort,
		), props.Text{Size: 8, Top: 2, Color: colorGray}),
	))
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Product", 3, align.Left),
		h("Category", 2, align.Left),
		h("Supplier", 2, align.Left),
		h("Qty", 1, align.Right),
		h("Price", 2, align.Right),
		h("Status", 1, align.Center),
		h("Rating", 1, align.Center),
	)
}

// tableDetailRows: una fila por producto.
func tableDetailRows(products []dto.ProductResponse) []core.Row {
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		cell := func(s string, a align.Type) core.Component {
			return text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1})
		}
		result = append(result, row.New(7).Add(
			col.New(3).Add(cell(p.Name, align.Left)),
			col.New(2).Add(cell(p.Category, align.Left)),
			col.New(2).Add(cell(p.Supplier, align.Left)),
			col.New(1).Add(cell(p.QuantityText, align.Right)),
			col.New(2).Add(cell(p.PriceText, align.Right)),
			col.New(1).Add(text.New(p.StatusText, props.Text{
				Size: 7, Align: align.Center, Top: 1, Color: statusColor(p.Status),
			})),
			col.New(1).Add(cell(p.Rating, align.Center)),
		))
	}
	return result
}

// emptyRow: mismo marcador que la vista cuando no hay resultados.
func emptyRow(report inventory.CatalogReport) core.Row {
	title, desc := "No products found", ""
	if report.Empty != nil {
		title, desc = report.Empty.Title, report.Empty.Description
	}
	return row.New(16).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Center, Top: 3}),
		text.New(desc, props.Text{Size: 8, Align: align.Center, Top: 10, Color: colorGray}),
	))
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("Catalog snapshot. Prices in USD.", props.Text{Size: 6.5, Color: colorGray, Top: 2}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func statusColor(status string) *props.Color {
	switch status {
	case "in-stock":
		return colorGreen
	case "low-stock":
		return colorAmber
	default:
		return colorRed
	}
}
