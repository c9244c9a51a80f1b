package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/commodity-flow/internal/application/dto"
	"github.com/jhoicas/commodity-flow/internal/application/inventory"
	"github.com/jhoicas/commodity-flow/internal/domain"
)

// ProductHandler maneja la vista de productos.
type ProductHandler struct {
	uc     *inventory.CatalogUseCase
	export *inventory.ExportUseCase
	log    zerolog.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *inventory.CatalogUseCase, export *inventory.ExportUseCase, log zerolog.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, export: export, log: log}
}

// List godoc
// @Summary      Vista de productos
// @Description  Filtra por texto (nombre o proveedor), categoría y estado; ordena de forma estable.
// @Tags         products
// @Produce      json
// @Param        search    query  string  false  "texto a buscar"
// @Param        category  query  string  false  "categoría o all"
// @Param        status    query  string  false  "in-stock, low-stock, out-of-stock o all"
// @Param        sort      query  string  false  "name, price, quantity, rating"
// @Param        view      query  string  false  "grid o list"
// @Success      200   {object}  dto.ProductListResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var q dto.ProductListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	view, err := h.uc.ListView(c.UserContext(), q)
	if err != nil {
		h.log.Error().Err(err).Msg("vista de productos")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(view)
}

// Categories godoc
// @Summary      Opciones del selector de categoría
// @Tags         products
// @Produce      json
// @Success      200   {array}   string
// @Router       /api/products/categories [get]
func (h *ProductHandler) Categories(c *fiber.Ctx) error {
	cats, err := h.uc.Categories(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(cats)
}

// GetByID godoc
// @Summary      Obtener producto
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ExportPDF godoc
// @Summary      Exportar la vista de productos a PDF
// @Tags         products
// @Produce      application/pdf
// @Param        search    query  string  false  "texto a buscar"
// @Param        category  query  string  false  "categoría o all"
// @Param        status    query  string  false  "estado o all"
// @Param        sort      query  string  false  "name, price, quantity, rating"
// @Success      200   {file}    binary
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/products/export.pdf [get]
func (h *ProductHandler) ExportPDF(c *fiber.Ctx) error {
	var q dto.ProductListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	doc, err := h.export.ExportPDF(c.UserContext(), q)
	if err != nil {
		h.log.Error().Err(err).Msg("exportar pdf")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_FAILED", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="products.pdf"`)
	return c.Send(doc)
}
