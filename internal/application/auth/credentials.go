package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// SharedPassword verifica la contraseña única de las cuentas demo.
// Solo se conserva el hash; el texto plano no queda en memoria tras construirla.
type SharedPassword struct {
	hash []byte
}

// NewSharedPassword hashea la contraseña con el costo indicado (bcrypt.DefaultCost si cost <= 0).
func NewSharedPassword(plain string, cost int) (*SharedPassword, error) {
	if plain == "" {
		return nil, fmt.Errorf("auth: contraseña compartida vacía")
	}
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return nil, fmt.Errorf("auth: hashear contraseña: %w", err)
	}
	return &SharedPassword{hash: hash}, nil
}

// Matches indica si password coincide con la contraseña compartida.
func (p *SharedPassword) Matches(password string) bool {
	return bcrypt.CompareHashAndPassword(p.hash, []byte(password)) == nil
}
