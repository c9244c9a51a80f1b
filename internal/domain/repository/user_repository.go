package repository

import (
	"context"

	"github.com/jhoicas/commodity-flow/internal/domain/entity"
)

// UserRepository define el puerto de lectura para las cuentas fijas (DIP).
type UserRepository interface {
	// FindByEmail devuelve nil, nil si el email no existe.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
}
