package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/commodity-flow/internal/application/analytics"
	"github.com/jhoicas/commodity-flow/internal/application/dto"
	"github.com/jhoicas/commodity-flow/internal/application/inventory"
	"github.com/jhoicas/commodity-flow/internal/application/profile"
	"github.com/jhoicas/commodity-flow/internal/application/shell"
	"github.com/jhoicas/commodity-flow/internal/domain"
)

// ViewHandler expone el enrutador de vistas y el shell del perfil.
type ViewHandler struct {
	dashboard *analytics.DashboardUseCase
	catalog   *inventory.CatalogUseCase
	log       zerolog.Logger
}

// NewViewHandler construye el handler.
func NewViewHandler(dashboard *analytics.DashboardUseCase, catalog *inventory.CatalogUseCase, log zerolog.Logger) *ViewHandler {
	return &ViewHandler{dashboard: dashboard, catalog: catalog, log: log}
}

// Get godoc
// @Summary      Estado del enrutador de vistas
// @Description  logged_out sin sesión; logged_in con cabecera, navegación y pestaña activa.
// @Tags         view
// @Produce      json
// @Success      200   {object}  dto.ViewResponse
// @Router       /api/view [get]
func (h *ViewHandler) Get(c *fiber.Ctx) error {
	return c.JSON(viewResponse(GetProfile(c)))
}

// SelectTab godoc
// @Summary      Cambiar de pestaña
// @Tags         view
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SelectTabRequest  true  "dashboard, products o add-product"
// @Success      200   {object}  dto.ViewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/view/tab [put]
func (h *ViewHandler) SelectTab(c *fiber.Ctx) error {
	var in dto.SelectTabRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	p := GetProfile(c)
	sh := p.Router.Shell()
	if sh == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "login required"})
	}
	if _, err := sh.Select(in.Tab); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_TAB", Message: "tab debe ser dashboard, products o add-product"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(viewResponse(p))
}

// Content godoc
// @Summary      Contenido de la pestaña activa
// @Description  Un gerente ve el dashboard; cualquier otro rol recibe kind=denied con "Access Denied".
// @Tags         view
// @Produce      json
// @Param        search    query  string  false  "texto a buscar (pestaña products)"
// @Param        category  query  string  false  "categoría o all"
// @Param        status    query  string  false  "estado o all"
// @Param        sort      query  string  false  "name, price, quantity, rating"
// @Param        view      query  string  false  "grid o list"
// @Success      200   {object}  dto.ContentResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/view/content [get]
func (h *ViewHandler) Content(c *fiber.Ctx) error {
	p := GetProfile(c)
	sh := p.Router.Shell()
	if sh == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "login required"})
	}
	content := sh.Render()
	out := dto.ContentResponse{Tab: string(content.Tab), Kind: string(content.Kind), Message: content.Message}

	switch content.Kind {
	case shell.ContentDashboard:
		out.Dashboard = h.dashboard.GetSummary()
	case shell.ContentProducts:
		var q dto.ProductListQuery
		if err := c.QueryParser(&q); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
		}
		view, err := h.catalog.ListView(c.UserContext(), q)
		if err != nil {
			h.log.Error().Err(err).Msg("vista de productos")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		out.Products = view
	case shell.ContentAddProduct:
		form := p.AddProduct.View()
		out.AddProduct = &form
	}
	return c.JSON(out)
}

func viewResponse(p *profile.Profile) dto.ViewResponse {
	sh := p.Router.Shell()
	if sh == nil {
		return dto.ViewResponse{State: string(shell.LoggedOut)}
	}
	user := sh.User()
	session := dto.NewSessionResponse(&user)
	active := sh.ActiveTab()

	nav := make([]dto.NavItemDTO, 0, 3)
	for _, item := range sh.Navigation() {
		nav = append(nav, dto.NavItemDTO{ID: string(item.ID), Label: item.Label, Active: item.ID == active})
	}
	return dto.ViewResponse{
		State: string(shell.LoggedIn),
		Header: &dto.HeaderDTO{
			Brand:       "CommodityFlow",
			PortalTitle: sh.PortalTitle(),
			RoleLabel:   cases.Title(language.English).String(user.Role),
			User:        *session.User,
			Theme:       themeResponse(p),
		},
		Navigation: nav,
		ActiveTab:  string(active),
	}
}
