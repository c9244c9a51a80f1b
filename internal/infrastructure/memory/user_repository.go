package memory

import (
	"context"

	"github.com/jhoicas/commodity-flow/internal/domain/entity"
	"github.com/jhoicas/commodity-flow/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// SeedUsers cuentas demo disponibles en el login.
func SeedUsers() []entity.User {
	return []entity.User{
		{ID: "1", Email: "manager@commodity.com", Role: entity.RoleManager, Name: "John Manager"},
		{ID: "2", Email: "keeper@commodity.com", Role: entity.RoleStorekeeper, Name: "Sarah Keeper"},
	}
}

// UserRepo lista fija de usuarios. Inmutable tras la construcción.
type UserRepo struct {
	users []entity.User
}

// NewUserRepository construye el adaptador a partir de la semilla.
func NewUserRepository(seed []entity.User) *UserRepo {
	users := make([]entity.User, len(seed))
	copy(users, seed)
	return &UserRepo{users: users}
}

// FindByEmail busca por coincidencia exacta del email.
func (r *UserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

// List devuelve una copia de las cuentas.
func (r *UserRepo) List(_ context.Context) ([]entity.User, error) {
	out := make([]entity.User, len(r.users))
	copy(out, r.users)
	return out, nil
}
