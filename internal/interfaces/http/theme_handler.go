package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/commodity-flow/internal/application/dto"
	"github.com/jhoicas/commodity-flow/internal/application/profile"
	"github.com/jhoicas/commodity-flow/internal/application/theme"
	"github.com/jhoicas/commodity-flow/internal/domain/entity"
)

// ThemeHandler expone la preferencia de tema del perfil.
type ThemeHandler struct {
	log zerolog.Logger
}

// NewThemeHandler construye el handler.
func NewThemeHandler(log zerolog.Logger) *ThemeHandler {
	return &ThemeHandler{log: log}
}

// Get godoc
// @Summary      Tema actual
// @Tags         theme
// @Produce      json
// @Success      200   {object}  dto.ThemeResponse
// @Router       /api/theme [get]
func (h *ThemeHandler) Get(c *fiber.Ctx) error {
	return c.JSON(themeResponse(GetProfile(c)))
}

// Set godoc
// @Summary      Fijar preferencia de tema
// @Tags         theme
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ThemeRequest  true  "light, dark o auto"
// @Success      200   {object}  dto.ThemeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/theme [put]
func (h *ThemeHandler) Set(c *fiber.Ctx) error {
	var in dto.ThemeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	pref, ok := entity.ParseThemePreference(in.Theme)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "theme debe ser light, dark o auto"})
	}
	p := GetProfile(c)
	if err := p.Theme.SetTheme(c.UserContext(), pref); err != nil {
		// El cambio en memoria se conserva aunque no se haya podido guardar.
		h.log.Warn().Err(err).Str("profile", p.ID).Msg("persistir preferencia de tema")
	}
	return c.JSON(themeResponse(p))
}

// Toggle godoc
// @Summary      Rotar preferencia (light → dark → auto → light)
// @Tags         theme
// @Produce      json
// @Success      200   {object}  dto.ThemeResponse
// @Router       /api/theme/toggle [post]
func (h *ThemeHandler) Toggle(c *fiber.Ctx) error {
	p := GetProfile(c)
	if _, err := p.Theme.Toggle(c.UserContext()); err != nil {
		h.log.Warn().Err(err).Str("profile", p.ID).Msg("persistir preferencia de tema")
	}
	return c.JSON(themeResponse(p))
}

func themeResponse(p *profile.Profile) dto.ThemeResponse {
	return dto.ThemeResponse{
		Preference: string(p.Theme.Preference()),
		Resolved:   string(p.Theme.Resolved()),
		Dark:       p.Document.Has(theme.DarkClass),
		SystemDark: p.Scheme.PrefersDark(),
	}
}
