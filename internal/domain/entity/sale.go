package entity

import (
	"github.com/shopspring/decimal"
)

// SaleStatus estado de una venta.
type SaleStatus string

const (
	SaleStatusPending   SaleStatus = "pendiente"
	SaleStatusCompleted SaleStatus = "completada"
	SaleStatusCancelled SaleStatus = "cancelada"
)

// Valid indica si el estado es uno de los conocidos.
func (s SaleStatus) Valid() bool {
	switch s {
	case SaleStatusPending, SaleStatusCompleted, SaleStatusCancelled:
		return true
	}
	return false
}

// Sale representa la cabecera de una venta.
// Las líneas se asocian por Code (VentaCodigo en cada línea), no por ID.
// ClientID nil equivale a "Cliente General".
type Sale struct {
	ID         int             `json:"id"`
	CompanyID  int             `json:"empresaId"`
	Code       string          `json:"codigo"` // V-YYYYMMDD-0001
	Date       string          `json:"fecha"`  // YYYY-MM-DD
	Time       string          `json:"hora"`   // HH:MM:SS
	Total      decimal.Decimal `json:"total"`
	Paid       decimal.Decimal `json:"pagado"`
	Change     decimal.Decimal `json:"cambio"`
	UserID     int             `json:"usuarioId"`
	ClientID   *int            `json:"clienteId"`
	RegisterID int             `json:"cajaId"`
	Status     SaleStatus      `json:"estado"`
	Lines      []SaleLine      `json:"detalles,omitempty"`
	Audit
}

func (s *Sale) GetID() int        { return s.ID }
func (s *Sale) SetID(id int)      { s.ID = id }
func (s *Sale) GetCompanyID() int { return s.CompanyID }

// LinesTotal suma los totales de las líneas.
func (s Sale) LinesTotal() decimal.Decimal {
	return sumLines(s.Lines)
}

// SalePatch actualización parcial de una venta. No recalcula Total.
type SalePatch struct {
	Code       *string          `json:"codigo,omitempty"`
	Date       *string          `json:"fecha,omitempty"`
	Time       *string          `json:"hora,omitempty"`
	Total      *decimal.Decimal `json:"total,omitempty"`
	Paid       *decimal.Decimal `json:"pagado,omitempty"`
	Change     *decimal.Decimal `json:"cambio,omitempty"`
	UserID     *int             `json:"usuarioId,omitempty"`
	ClientID   *int             `json:"clienteId,omitempty"`
	RegisterID *int             `json:"cajaId,omitempty"`
	Status     *SaleStatus      `json:"estado,omitempty"`
}

func (p SalePatch) Apply(s *Sale) {
	set(&s.Code, p.Code)
	set(&s.Date, p.Date)
	set(&s.Time, p.Time)
	set(&s.Total, p.Total)
	set(&s.Paid, p.Paid)
	set(&s.Change, p.Change)
	set(&s.UserID, p.UserID)
	if p.ClientID != nil {
		id := *p.ClientID
		s.ClientID = &id
	}
	set(&s.RegisterID, p.RegisterID)
	set(&s.Status, p.Status)
}

// PaymentInfo datos de cobro con los que se finaliza una venta pendiente.
type PaymentInfo struct {
	Paid       decimal.Decimal `json:"pagado"`
	Change     decimal.Decimal `json:"cambio"`
	RegisterID int             `json:"cajaId"`
	UserID     int             `json:"usuarioId"`
	CompanyID  int             `json:"empresaId"`
}

// GeneralClientName nombre mostrado cuando la venta no tiene cliente.
const GeneralClientName = "Cliente General"

// PendingSale es una venta capturada antes del cobro. Vive en su propia colección
// hasta que se promueve a venta completada. Sus líneas viajan dentro del registro.
type PendingSale struct {
	Sale
	ClientName string `json:"clienteName"`
	SellerName string `json:"nombreVendedor"`
}

// PendingSalePatch actualización parcial de una venta pendiente.
type PendingSalePatch struct {
	SalePatch
	Lines      *[]SaleLine `json:"detalles,omitempty"`
	ClientName *string     `json:"clienteName,omitempty"`
	SellerName *string     `json:"nombreVendedor,omitempty"`
}

func (p PendingSalePatch) Apply(ps *PendingSale) {
	p.SalePatch.Apply(&ps.Sale)
	if p.Lines != nil {
		ps.Lines = append([]SaleLine(nil), (*p.Lines)...)
	}
	set(&ps.ClientName, p.ClientName)
	set(&ps.SellerName, p.SellerName)
}

// Promote convierte la venta pendiente en una venta completada con un nuevo ID.
// Si payment no es nil se sobrescriben pagado, cambio y caja.
func (ps PendingSale) Promote(newID int, payment *PaymentInfo) Sale {
	sale := ps.Sale
	sale.ID = newID
	sale.Lines = append([]SaleLine(nil), ps.Lines...)
	if payment != nil {
		sale.Paid = payment.Paid
		sale.Change = payment.Change
		sale.RegisterID = payment.RegisterID
	}
	sale.Status = SaleStatusCompleted
	sale.DeletedAt = nil
	return sale
}

// Clone copia profunda (líneas y cliente).
func (s Sale) Clone() Sale {
	if s.ClientID != nil {
		id := *s.ClientID
		s.ClientID = &id
	}
	if s.Lines != nil {
		s.Lines = append([]SaleLine(nil), s.Lines...)
	}
	return s
}

// Clone copia profunda de la venta pendiente.
func (ps PendingSale) Clone() PendingSale {
	ps.Sale = ps.Sale.Clone()
	return ps
}
