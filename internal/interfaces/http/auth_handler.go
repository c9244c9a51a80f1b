package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/commodity-flow/internal/application/dto"
)

// Mensajes de la vista de login.
const (
	MsgInvalidCredentials = "Invalid email or password. Please try again."
	MsgSomethingWrong     = "Something went wrong. Please try again."
)

// AuthHandler maneja login, logout, sesión y la vista de login.
type AuthHandler struct {
	demoPassword string
	log          zerolog.Logger
}

// NewAuthHandler construye el handler de auth. demoPassword se muestra en las
// cuentas de acceso rápido.
func NewAuthHandler(demoPassword string, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{demoPassword: demoPassword, log: log}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.SessionResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	p := GetProfile(c)
	ok, err := p.Session.Login(c.UserContext(), in.Email, in.Password)
	if err != nil {
		h.log.Error().Err(err).Str("profile", p.ID).Msg("login")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: MsgSomethingWrong})
	}
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: MsgInvalidCredentials})
	}
	h.log.Info().Str("profile", p.ID).Str("email", in.Email).Msg("sesión iniciada")
	return c.JSON(dto.NewSessionResponse(p.Session.Current()))
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200   {object}  dto.SessionResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	p := GetProfile(c)
	if err := p.Session.Logout(c.UserContext()); err != nil {
		h.log.Error().Err(err).Str("profile", p.ID).Msg("logout")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: MsgSomethingWrong})
	}
	return c.JSON(dto.NewSessionResponse(nil))
}

// Session godoc
// @Summary      Sesión actual
// @Tags         auth
// @Produce      json
// @Success      200   {object}  dto.SessionResponse
// @Router       /api/session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	return c.JSON(dto.NewSessionResponse(GetProfile(c).Session.Current()))
}

// LoginView godoc
// @Summary      Vista de login
// @Tags         auth
// @Produce      json
// @Success      200   {object}  dto.LoginViewResponse
// @Router       /api/login [get]
func (h *AuthHandler) LoginView(c *fiber.Ctx) error {
	return c.JSON(dto.LoginViewResponse{
		Brand:   "CommodityFlow",
		Tagline: "Next-generation commodity management",
		Pitch: "Revolutionize your commodity trading with cutting-edge technology, " +
			"real-time analytics, and intelligent automation.",
		Title:       "Welcome Back",
		Description: "Sign in to access your commodity management dashboard",
		Features: []dto.FeatureDTO{
			{Title: "Real-time Analytics", Description: "Monitor market trends and inventory performance"},
			{Title: "Secure Access", Description: "Role-based authentication and data protection"},
			{Title: "Lightning Fast", Description: "Optimized for speed and performance"},
			{Title: "Team Collaboration", Description: "Seamless workflow for your entire team"},
		},
		Stats: []dto.StatDTO{
			{Value: "99.9%", Label: "Uptime"},
			{Value: "$2.4M+", Label: "Trades Processed"},
			{Value: "500+", Label: "Active Users"},
		},
		DemoAccounts: []dto.DemoAccountDTO{
			{Role: "Manager", Email: "manager@commodity.com", Password: h.demoPassword, Description: "Full access to dashboard and analytics"},
			{Role: "Store Keeper", Email: "keeper@commodity.com", Password: h.demoPassword, Description: "Product management and inventory access"},
		},
		Theme: themeResponse(GetProfile(c)),
	})
}
