package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/commodity-flow/internal/application/addproduct"
	"github.com/jhoicas/commodity-flow/internal/application/dto"
	"github.com/jhoicas/commodity-flow/internal/domain"
)

// AddProductHandler maneja el borrador del formulario de alta.
type AddProductHandler struct {
	log zerolog.Logger
}

// NewAddProductHandler construye el handler.
func NewAddProductHandler(log zerolog.Logger) *AddProductHandler {
	return &AddProductHandler{log: log}
}

// GetForm godoc
// @Summary      Borrador del formulario
// @Tags         add-product
// @Produce      json
// @Success      200   {object}  dto.AddProductFormResponse
// @Router       /api/add-product/form [get]
func (h *AddProductHandler) GetForm(c *fiber.Ctx) error {
	return c.JSON(GetProfile(c).AddProduct.View())
}

// PatchForm godoc
// @Summary      Actualizar campos del borrador
// @Tags         add-product
// @Accept       json
// @Produce      json
// @Param        body  body  object  true  "mapa campo → valor (name, category, price, stock, description, sku)"
// @Success      200   {object}  dto.AddProductFormResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/add-product/form [patch]
func (h *AddProductHandler) PatchForm(c *fiber.Ctx) error {
	var in map[string]string
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	d := GetProfile(c).AddProduct
	if err := d.Patch(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_FIELD", Message: err.Error()})
	}
	return c.JSON(d.View())
}

// Reset godoc
// @Summary      Vaciar el borrador
// @Tags         add-product
// @Produce      json
// @Success      200   {object}  dto.AddProductFormResponse
// @Router       /api/add-product/reset [post]
func (h *AddProductHandler) Reset(c *fiber.Ctx) error {
	d := GetProfile(c).AddProduct
	d.Reset()
	return c.JSON(d.View())
}

// Submit godoc
// @Summary      Enviar el formulario (simulado)
// @Description  Espera la demora configurada y devuelve la notificación. El catálogo no cambia.
// @Tags         add-product
// @Produce      json
// @Success      200   {object}  dto.NotificationResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/add-product/submit [post]
func (h *AddProductHandler) Submit(c *fiber.Ctx) error {
	p := GetProfile(c)
	n, err := p.AddProduct.Submit(c.UserContext())
	if err != nil {
		var verr *addproduct.ValidationError
		switch {
		case errors.As(err, &verr):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Code: "VALIDATION", Message: "formulario incompleto", Fields: verr.Fields})
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SUBMIT_IN_PROGRESS", Message: "Adding Product..."})
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return c.Status(fiber.StatusRequestTimeout).JSON(dto.ErrorResponse{Code: "CANCELLED", Message: "envío cancelado"})
		}
		h.log.Error().Err(err).Str("profile", p.ID).Msg("alta de producto")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: MsgSomethingWrong})
	}
	return c.JSON(n)
}
