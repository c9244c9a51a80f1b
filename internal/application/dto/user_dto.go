package dto

import "github.com/jhoicas/commodity-flow/internal/domain/entity"

// LoginRequest entrada de POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse usuario de la sesión.
type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Initials string `json:"initials"`
}

// SessionResponse estado de la sesión del perfil.
type SessionResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *UserResponse `json:"user"`
}

// NewSessionResponse construye la respuesta a partir del usuario actual (nil = sin sesión).
func NewSessionResponse(u *entity.User) SessionResponse {
	if u == nil {
		return SessionResponse{}
	}
	return SessionResponse{
		Authenticated: true,
		User: &UserResponse{
			ID:       u.ID,
			Email:    u.Email,
			Name:     u.Name,
			Role:     u.Role,
			Initials: u.Initials(),
		},
	}
}
