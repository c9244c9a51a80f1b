package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/commodity-flow/internal/application/dto"
	"github.com/jhoicas/commodity-flow/internal/application/profile"
	"github.com/jhoicas/commodity-flow/pkg/jwt"
)

// Locals key del perfil en Fiber.
const LocalProfile = "profile"

// Cabeceras del esquema de color del sistema.
const (
	HeaderColorScheme       = "Sec-CH-Prefers-Color-Scheme"
	HeaderColorSchemeLegacy = "X-Prefers-Color-Scheme"
)

// profileLoader lo que el middleware necesita del registro.
type profileLoader interface {
	Get(ctx context.Context, id string) (*profile.Profile, error)
}

// CookieConfig cookie firmada que identifica el perfil del navegador.
type CookieConfig struct {
	Name       string
	Secret     string
	Issuer     string
	TTLMinutes int
	Secure     bool
}

// ProfileMiddleware resuelve el perfil del navegador a partir de la cookie firmada
// (emitiendo una nueva si falta o no es válida), aplica la pista de esquema de
// color y deja el perfil en c.Locals.
func ProfileMiddleware(profiles profileLoader, cookie CookieConfig, log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := jwt.Parse(cookie.Secret, c.Cookies(cookie.Name))
		if err != nil {
			id = uuid.New().String()
			token, err := jwt.Generate(cookie.Secret, id, cookie.Issuer, cookie.TTLMinutes)
			if err != nil {
				log.Error().Err(err).Msg("firmar cookie de perfil")
				return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo iniciar el perfil"})
			}
			c.Cookie(&fiber.Cookie{
				Name:     cookie.Name,
				Value:    token,
				Path:     "/",
				Expires:  time.Now().Add(time.Duration(cookie.TTLMinutes) * time.Minute),
				HTTPOnly: true,
				Secure:   cookie.Secure,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}

		p, err := profiles.Get(c.UserContext(), id)
		if err != nil {
			log.Error().Err(err).Str("profile", id).Msg("cargar perfil")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORAGE_UNAVAILABLE", Message: "no se pudo cargar el perfil"})
		}

		if dark, ok := colorSchemeHint(c); ok {
			p.Scheme.Set(dark)
		}
		c.Set(fiber.HeaderVary, HeaderColorScheme)
		c.Set("Accept-CH", HeaderColorScheme)

		c.Locals(LocalProfile, p)
		return c.Next()
	}
}

// colorSchemeHint lee la preferencia del sistema; ok=false si no viene o no se reconoce.
func colorSchemeHint(c *fiber.Ctx) (dark bool, ok bool) {
	v := c.Get(HeaderColorScheme)
	if v == "" {
		v = c.Get(HeaderColorSchemeLegacy)
	}
	switch v {
	case "dark", `"dark"`:
		return true, true
	case "light", `"light"`:
		return false, true
	}
	return false, false
}

// RequireSession corta con 401 si el perfil no tiene sesión.
// Debe usarse DESPUÉS de ProfileMiddleware.
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetProfile(c)
		if p == nil || !p.Session.IsAuthenticated() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "login required"})
		}
		return c.Next()
	}
}

// GetProfile devuelve el perfil del contexto (después de ProfileMiddleware).
func GetProfile(c *fiber.Ctx) *profile.Profile {
	p, _ := c.Locals(LocalProfile).(*profile.Profile)
	return p
}
