package entity

import "github.com/shopspring/decimal"

// Estados de stock.
const (
	StatusInStock    = "in-stock"
	StatusLowStock   = "low-stock"
	StatusOutOfStock = "out-of-stock"
)

// Tendencias de precio.
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

// Product representa un commodity del catálogo estático.
// LastUpdated es un texto de presentación ("2 hours ago"), no una marca de tiempo.
type Product struct {
	ID          string
	Name        string
	Category    string
	Quantity    int
	Price       decimal.Decimal // 2 decimales
	Status      string          // in-stock, low-stock, out-of-stock
	Trend       string          // up, down, stable
	Supplier    string
	LastUpdated string
	Rating      decimal.Decimal // 0 – 5
}

// ValidStatus indica si s es un estado de stock conocido.
func ValidStatus(s string) bool {
	switch s {
	case StatusInStock, StatusLowStock, StatusOutOfStock:
		return true
	}
	return false
}
