package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/commodity-flow/internal/application/dto"
	"github.com/jhoicas/commodity-flow/internal/domain/access"
	"github.com/jhoicas/commodity-flow/internal/domain/entity"
)

// RequireTab devuelve un middleware Fiber que verifica si el rol de la sesión
// puede abrir la vista tab. Debe usarse DESPUÉS de RequireSession.
//
// Comportamiento:
//   - 401 Unauthorized → sin sesión.
//   - 403 Forbidden    → rol sin acceso, con el mensaje fijo "Access Denied".
func RequireTab(tab entity.Tab) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetProfile(c)
		if p == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "login required"})
		}
		u := p.Session.Current()
		if u == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "login required"})
		}
		if err := access.Require(u.Role, tab); err != nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: access.DeniedMessage})
		}
		return c.Next()
	}
}
