package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/commodity-flow/internal/domain/catalog"
	"github.com/jhoicas/commodity-flow/internal/domain/entity"
	"github.com/jhoicas/commodity-flow/internal/infrastructure/memory"
)

func names(ps []entity.Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Name)
	}
	return out
}

func criteria(search, category, status string, sort catalog.SortKey) catalog.Criteria {
	return catalog.Criteria{Search: search, Category: category, Status: status, Sort: sort}
}

func TestApply_BusquedaGold(t *testing.T) {
	got := catalog.Apply(memory.SeedProducts(), criteria("gold", catalog.All, catalog.All, catalog.SortByName))
	require.Len(t, got, 1)
	assert.Equal(t, "Gold Bars (1oz)", got[0].Name)
}

func TestApply_BusquedaPorProveedorSinMayusculas(t *testing.T) {
	got := catalog.Apply(memory.SeedProducts(), criteria("METALTRADE", catalog.All, catalog.All, catalog.SortByName))
	assert.Equal(t, []string{"Gold Bars (1oz)", "Silver Coins"}, names(got))
}

func TestApply_OrdenPorPrecioDescendente(t *testing.T) {
	got := catalog.Apply(memory.SeedProducts(), criteria("", catalog.All, catalog.All, catalog.SortByPrice))
	assert.Equal(t, []string{
		"Gold Bars (1oz)",  // 2050.00
		"Live Cattle",      // 1250.00
		"Premium Wheat",    // 450.00
		"Crude Oil Barrel", // 75.25
		"Silver Coins",     // 28.50
		"Organic Cotton",   // 1.85
	}, names(got))
}

func TestApply_OrdenPorNombre(t *testing.T) {
	got := catalog.Apply(memory.SeedProducts(), catalog.DefaultCriteria())
	assert.Equal(t, []string{
		"Crude Oil Barrel", "Gold Bars (1oz)", "Live Cattle",
		"Organic Cotton", "Premium Wheat", "Silver Coins",
	}, names(got))
}

func TestApply_OrdenPorCantidadYRating(t *testing.T) {
	byQty := catalog.Apply(memory.SeedProducts(), criteria("", catalog.All, catalog.All, catalog.SortByQuantity))
	assert.Equal(t, []string{
		"Premium Wheat", "Silver Coins", "Live Cattle", "Gold Bars (1oz)", "Crude Oil Barrel", "Organic Cotton",
	}, names(byQty))

	byRating := catalog.Apply(memory.SeedProducts(), criteria("", catalog.All, catalog.All, catalog.SortByRating))
	assert.Equal(t, []string{
		"Gold Bars (1oz)", "Premium Wheat", "Live Cattle", "Crude Oil Barrel", "Silver Coins", "Organic Cotton",
	}, names(byRating))
}

func TestApply_OrdenEstable(t *testing.T) {
	// Empate en cantidad: se conserva el orden de entrada.
	products := []entity.Product{
		{ID: "a", Name: "B", Quantity: 5},
		{ID: "b", Name: "A", Quantity: 5},
		{ID: "c", Name: "C", Quantity: 9},
	}
	got := catalog.Apply(products, criteria("", catalog.All, catalog.All, catalog.SortByQuantity))
	assert.Equal(t, []string{"C", "B", "A"}, names(got))
}

func TestApply_ClaveDesconocidaConservaOrden(t *testing.T) {
	got := catalog.Apply(memory.SeedProducts(), criteria("", catalog.All, catalog.All, "color"))
	assert.Equal(t, names(memory.SeedProducts()), names(got))
}

func TestApply_FiltrosCategoriaYEstado(t *testing.T) {
	metals := catalog.Apply(memory.SeedProducts(), criteria("", "Metals", catalog.All, catalog.SortByName))
	assert.Equal(t, []string{"Gold Bars (1oz)", "Silver Coins"}, names(metals))

	low := catalog.Apply(memory.SeedProducts(), criteria("", catalog.All, entity.StatusLowStock, catalog.SortByName))
	assert.Equal(t, []string{"Crude Oil Barrel"}, names(low))

	none := catalog.Apply(memory.SeedProducts(), criteria("", "Metals", entity.StatusOutOfStock, catalog.SortByName))
	assert.Empty(t, none)
}

func TestApply_NoModificaEntrada(t *testing.T) {
	in := memory.SeedProducts()
	before := names(in)
	_ = catalog.Apply(in, criteria("", catalog.All, catalog.All, catalog.SortByPrice))
	assert.Equal(t, before, names(in))
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"all", "Agricultural", "Energy", "Metals", "Textiles", "Livestock"},
		catalog.Categories(memory.SeedProducts()))
}

func TestCriteria_Normalize(t *testing.T) {
	c := catalog.Criteria{View: "mosaic"}.Normalize()
	assert.Equal(t, catalog.DefaultCriteria(), c)
}
