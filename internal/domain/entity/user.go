package entity

import "strings"

// Roles válidos para User.
const (
	RoleManager     = "manager"
	RoleStorekeeper = "storekeeper"
)

// User representa una de las cuentas fijas del sistema. Nunca se modifica.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"` // manager, storekeeper
	Name  string `json:"name"`
}

// IsManager indica si el usuario tiene rol de gerente.
func (u User) IsManager() bool { return u.Role == RoleManager }

// Initials devuelve las iniciales del nombre en mayúsculas ("John Manager" -> "JM").
func (u User) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(u.Name) {
		for _, r := range part {
			b.WriteRune(r)
			break
		}
	}
	return strings.ToUpper(b.String())
}
