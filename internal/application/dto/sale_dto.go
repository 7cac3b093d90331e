package dto

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/superventas/pos-api/internal/domain"
	"github.com/superventas/pos-api/internal/domain/entity"
)

// PaymentRequest datos de cobro para finalizar una venta pendiente.
type PaymentRequest struct {
	Paid       decimal.Decimal `json:"pagado" validate:"money"`
	Change     decimal.Decimal `json:"cambio" validate:"money"`
	RegisterID int             `json:"cajaId" validate:"required,gt=0"`
	UserID     int             `json:"usuarioId" validate:"required,gt=0"`
	CompanyID  int             `json:"empresaId" validate:"required,gt=0"`
}

// ToEntity valida los montos y construye el PaymentInfo del dominio.
func (r PaymentRequest) ToEntity() (entity.PaymentInfo, error) {
	if r.Paid.IsNegative() || r.Change.IsNegative() {
		return entity.PaymentInfo{}, fmt.Errorf("%w: montos negativos", domain.ErrInvalidInput)
	}
	if r.Change.GreaterThan(r.Paid) {
		return entity.PaymentInfo{}, fmt.Errorf("%w: el cambio supera lo pagado", domain.ErrInvalidInput)
	}
	return entity.PaymentInfo{
		Paid:       r.Paid,
		Change:     r.Change,
		RegisterID: r.RegisterID,
		UserID:     r.UserID,
		CompanyID:  r.CompanyID,
	}, nil
}

// UpdateAndCompleteRequest cambios a la venta pendiente más los datos de cobro.
type UpdateAndCompleteRequest struct {
	Sale    entity.PendingSalePatch `json:"venta"`
	Payment PaymentRequest          `json:"pago"`
}
