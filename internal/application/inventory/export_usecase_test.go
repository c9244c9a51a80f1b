package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/commodity-flow/internal/application/dto"
	"github.com/jhoicas/commodity-flow/internal/application/inventory"
)

type captureGen struct {
	got inventory.CatalogReport
	err error
}

func (g *captureGen) GenerateCatalogPDF(_ context.Context, r inventory.CatalogReport) ([]byte, error) {
	g.got = r
	return []byte("%PDF-1.3"), g.err
}

func TestExportPDF_MismoFiltroQueLaVista(t *testing.T) {
	gen := &captureGen{}
	uc := inventory.NewExportUseCase(newUseCase(), gen)

	doc, err := uc.ExportPDF(context.Background(), dto.ProductListQuery{Category: "Metals", Sort: "price"})
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(doc))

	require.Len(t, gen.got.Products, 2)
	assert.Equal(t, "Gold Bars (1oz)", gen.got.Products[0].Name)
	assert.Equal(t, "Silver Coins", gen.got.Products[1].Name)
	assert.Equal(t, "2 of 6 products", gen.got.CountLabel)
	assert.False(t, gen.got.GeneratedAt.IsZero())
}

func TestExportPDF_ErrorDelGenerador(t *testing.T) {
	boom := errors.New("sin fuentes")
	uc := inventory.NewExportUseCase(newUseCase(), &captureGen{err: boom})
	_, err := uc.ExportPDF(context.Background(), dto.ProductListQuery{})
	assert.ErrorIs(t, err, boom)
}
