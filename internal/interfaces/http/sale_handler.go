package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/superventas/pos-api/internal/application/dto"
	"github.com/superventas/pos-api/internal/application/usecase"
	"github.com/superventas/pos-api/internal/domain/entity"
)

// SaleHandler consultas de ventas y sus detalles, y comprobante PDF.
type SaleHandler struct {
	sales    *usecase.SaleUseCase
	lines    *usecase.SaleLineUseCase
	receipts *usecase.ReceiptUseCase
}

func NewSaleHandler(sales *usecase.SaleUseCase, lines *usecase.SaleLineUseCase, receipts *usecase.ReceiptUseCase) *SaleHandler {
	return &SaleHandler{sales: sales, lines: lines, receipts: receipts}
}

// ListRelations godoc
// @Summary      Ventas con detalles
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        estado     query  string  false  "pendiente | completada | cancelada"
// @Param        empresaId  query  int     false  "empresa (por defecto la del token)"
// @Success      200  {array}   entity.Sale
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ventas/relations [get]
func (h *SaleHandler) ListRelations(c *fiber.Ctx) error {
	companyID, err := companyScope(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.sales.List(c.UserContext(), companyID, entity.SaleStatus(c.Query("estado")))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByCode godoc
// @Summary      Venta por código
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        codigo  path  string  true  "V-YYYYMMDD-NNNN"
// @Success      200  {object}  entity.Sale
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/codigo/{codigo} [get]
func (h *SaleHandler) GetByCode(c *fiber.Ctx) error {
	out, err := h.sales.GetByCode(c.UserContext(), c.Params("codigo"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *SaleHandler) ListByProduct(c *fiber.Ctx) error {
	productID, err := paramID(c, "productoId")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.sales.ListByProduct(c.UserContext(), productID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Comprobante PDF de la venta
// @Tags         ventas
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id}/comprobante [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	pdf, filename, err := h.receipts.SaleReceipt(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s"`, filename))
	return c.Send(pdf)
}

func (h *SaleHandler) LinesBySale(c *fiber.Ctx) error {
	saleID, err := paramID(c, "ventaId")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.lines.ListBySaleID(c.UserContext(), saleID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *SaleHandler) LinesByCode(c *fiber.Ctx) error {
	out, err := h.lines.ListBySaleCode(c.UserContext(), c.Params("codigo"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PendingSaleHandler promoción de ventas pendientes.
type PendingSaleHandler struct {
	uc *usecase.PendingSaleUseCase
}

func NewPendingSaleHandler(uc *usecase.PendingSaleUseCase) *PendingSaleHandler {
	return &PendingSaleHandler{uc: uc}
}

// Complete godoc
// @Summary      Finalizar venta pendiente
// @Description  Elimina la venta pendiente y crea una venta completada con los datos de cobro.
// @Tags         ventas-pendientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                 true  "ID de la venta pendiente"
// @Param        body  body  dto.PaymentRequest  true  "datos de cobro"
// @Success      200   {object}  entity.Sale
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ventas-pendientes/{id}/completar [post]
func (h *PendingSaleHandler) Complete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.PaymentRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	payment, err := in.ToEntity()
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Complete(c.UserContext(), id, payment)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Convert godoc
// @Summary      Convertir venta pendiente en venta
// @Tags         ventas-pendientes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la venta pendiente"
// @Success      200  {object}  entity.Sale
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas-pendientes/{id}/convertir [post]
func (h *PendingSaleHandler) Convert(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Convert(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateAndComplete actualiza la venta pendiente y la finaliza en un solo paso.
func (h *PendingSaleHandler) UpdateAndComplete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateAndCompleteRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	payment, err := in.Payment.ToEntity()
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.UpdateAndComplete(c.UserContext(), id, in.Sale, payment)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PurchaseHandler consultas de compras por código.
type PurchaseHandler struct {
	purchases *usecase.PurchaseUseCase
	lines     *usecase.PurchaseLineUseCase
}

func NewPurchaseHandler(purchases *usecase.PurchaseUseCase, lines *usecase.PurchaseLineUseCase) *PurchaseHandler {
	return &PurchaseHandler{purchases: purchases, lines: lines}
}

func (h *PurchaseHandler) GetByCode(c *fiber.Ctx) error {
	out, err := h.purchases.GetByCode(c.UserContext(), c.Params("codigo"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *PurchaseHandler) LinesByCode(c *fiber.Ctx) error {
	out, err := h.lines.ListByPurchaseCode(c.UserContext(), c.Params("codigo"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
