package http

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	appanalytics "github.com/jhoicas/commodity-flow/internal/application/analytics"
	"github.com/jhoicas/commodity-flow/internal/application/dto"
)

// DashboardHandler maneja los endpoints del dashboard de gerencia.
type DashboardHandler struct {
	uc  *appanalytics.DashboardUseCase
	log zerolog.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// GetSummary godoc
// @Summary      Resumen del dashboard
// @Description  Indicadores, categorías destacadas y actividad reciente. Solo gerente.
// @Tags         dashboard
// @Produce      json
// @Success      200   {object}  dto.DashboardSummaryDTO
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetSummary())
}

// Stream godoc
// @Summary      Animación de contadores (SSE)
// @Description  Un evento "frame" por paso (60 en 2 s por defecto). Termina con done=true.
// @Tags         dashboard
// @Produce      text/event-stream
// @Success      200   {object}  dto.CounterFrameDTO
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/dashboard/stream [get]
func (h *DashboardHandler) Stream(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	profileID := GetProfile(c).ID
	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		// El writer corre después de que el handler retorna: el contexto de la
		// petición ya no sirve. Un Flush fallido indica cliente desconectado.
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		err := h.uc.Animate(ctx, func(frame dto.CounterFrameDTO) error {
			payload, err := json.Marshal(frame)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "event: frame\ndata: %s\n\n", payload); err != nil {
				return err
			}
			return w.Flush()
		})
		if err != nil {
			h.log.Debug().Err(err).Str("profile", profileID).Msg("stream del dashboard interrumpido")
		}
	})
	return nil
}
