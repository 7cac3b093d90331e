package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/superventas/pos-api/internal/application/usecase"
)

// CompanyHandler consultas de empresa por propietario o empleado.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// ByOwner godoc
// @Summary      Empresa por propietario
// @Tags         empresas
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del usuario propietario"
// @Success      200  {object}  entity.Company
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empresas/owner/{id} [get]
func (h *CompanyHandler) ByOwner(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetByOwner(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ByEmployee empresa del empleado; "me" usa el usuario del token.
func (h *CompanyHandler) ByEmployee(c *fiber.Ctx) error {
	id := GetUserID(c)
	if c.Params("id") != "me" {
		var err error
		if id, err = paramID(c, "id"); err != nil {
			return writeError(c, err)
		}
	}
	out, err := h.uc.GetByEmployee(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
