package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/superventas/pos-api/internal/application/usecase"
)

// DemoHandler administración del modo demo.
type DemoHandler struct {
	uc *usecase.DemoUseCase
}

func NewDemoHandler(uc *usecase.DemoUseCase) *DemoHandler {
	return &DemoHandler{uc: uc}
}

// Reset godoc
// @Summary      Reiniciar datos demo
// @Description  Restaura el dataset sembrado. Solo owner o admin; 403 si el modo demo no está activo.
// @Tags         demo
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  usecase.DemoStatus
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/demo/reset [post]
func (h *DemoHandler) Reset(c *fiber.Ctx) error {
	status, err := h.uc.Reset()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(status)
}

// Status godoc
// @Summary      Estado del modo demo
// @Tags         demo
// @Produce      json
// @Success      200  {object}  usecase.DemoStatus
// @Router       /api/demo/status [get]
func (h *DemoHandler) Status(c *fiber.Ctx) error {
	return c.JSON(h.uc.Status())
}
