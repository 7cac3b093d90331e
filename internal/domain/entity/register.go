package entity

import "github.com/shopspring/decimal"

// Estados de caja.
const (
	RegisterOpen   = "abierta"
	RegisterClosed = "cerrada"
)

// Register representa una caja registradora con su efectivo disponible.
type Register struct {
	ID        int             `json:"id"`
	CompanyID int             `json:"empresaId"`
	Number    int             `json:"numero"`
	Name      string          `json:"nombre"`
	Status    string          `json:"estado"`
	Cash      decimal.Decimal `json:"efectivo"`
	Audit
}

func (r *Register) GetID() int        { return r.ID }
func (r *Register) SetID(id int)      { r.ID = id }
func (r *Register) GetCompanyID() int { return r.CompanyID }

// RegisterPatch actualización parcial de una caja.
type RegisterPatch struct {
	Number *int             `json:"numero,omitempty"`
	Name   *string          `json:"nombre,omitempty"`
	Status *string          `json:"estado,omitempty"`
	Cash   *decimal.Decimal `json:"efectivo,omitempty"`
}

func (p RegisterPatch) Apply(r *Register) {
	set(&r.Number, p.Number)
	set(&r.Name, p.Name)
	set(&r.Status, p.Status)
	set(&r.Cash, p.Cash)
}
