package memory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/commodity-flow/internal/domain/entity"
	"github.com/jhoicas/commodity-flow/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// SeedProducts catálogo de ejemplo.
func SeedProducts() []entity.Product {
	return []entity.Product{
		{
			ID: "1", Name: "Premium Wheat", Category: "Agricultural", Quantity: 2500,
			Price: decimal.RequireFromString("450.00"), Status: entity.StatusInStock, Trend: entity.TrendUp,
			Supplier: "FarmCorp Ltd", LastUpdated: "2 hours ago", Rating: decimal.RequireFromString("4.8"),
		},
		{
			ID: "2", Name: "Crude Oil Barrel", Category: "Energy", Quantity: 12,
			Price: decimal.RequireFromString("75.25"), Status: entity.StatusLowStock, Trend: entity.TrendDown,
			Supplier: "PetroMax Inc", LastUpdated: "30 min ago", Rating: decimal.RequireFromString("4.5"),
		},
		{
			ID: "3", Name: "Gold Bars (1oz)", Category: "Metals", Quantity: 45,
			Price: decimal.RequireFromString("2050.00"), Status: entity.StatusInStock, Trend: entity.TrendUp,
			Supplier: "MetalTrade Co", LastUpdated: "1 hour ago", Rating: decimal.RequireFromString("5.0"),
		},
		{
			ID: "4", Name: "Organic Cotton", Category: "Textiles", Quantity: 0,
			Price: decimal.RequireFromString("1.85"), Status: entity.StatusOutOfStock, Trend: entity.TrendStable,
			Supplier: "EcoFiber Ltd", LastUpdated: "3 hours ago", Rating: decimal.RequireFromString("4.2"),
		},
		{
			ID: "5", Name: "Live Cattle", Category: "Livestock", Quantity: 125,
			Price: decimal.RequireFromString("1250.00"), Status: entity.StatusInStock, Trend: entity.TrendUp,
			Supplier: "Ranch Masters", LastUpdated: "45 min ago", Rating: decimal.RequireFromString("4.6"),
		},
		{
			ID: "6", Name: "Silver Coins", Category: "Metals", Quantity: 350,
			Price: decimal.RequireFromString("28.50"), Status: entity.StatusInStock, Trend: entity.TrendDown,
			Supplier: "MetalTrade Co", LastUpdated: "1.5 hours ago", Rating: decimal.RequireFromString("4.3"),
		},
	}
}

// ProductRepo catálogo estático de solo lectura.
type ProductRepo struct {
	products []entity.Product
}

// NewProductRepository construye el catálogo a partir de la semilla.
func NewProductRepository(seed []entity.Product) *ProductRepo {
	products := make([]entity.Product, len(seed))
	copy(products, seed)
	return &ProductRepo{products: products}
}

// List devuelve una copia del catálogo; modificarla no altera el repositorio.
func (r *ProductRepo) List(_ context.Context) ([]entity.Product, error) {
	out := make([]entity.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}
