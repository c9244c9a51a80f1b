package repository

import (
	"context"

	"github.com/jhoicas/commodity-flow/internal/domain/entity"
)

// ProductRepository define el puerto de lectura del catálogo (DIP).
// El catálogo es estático: no existe ninguna operación de escritura.
type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
	// GetByID devuelve nil, nil si el producto no existe.
	GetByID(ctx context.Context, id string) (*entity.Product, error)
}
