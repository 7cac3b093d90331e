package entity

import "github.com/shopspring/decimal"

// Fuentes de fondos para un gasto.
const (
	FundingCash     = "Efectivo"
	FundingTransfer = "Transferencia"
	FundingCard     = "Tarjeta"
)

// Expense representa un gasto pagado desde una caja.
type Expense struct {
	ID         int             `json:"id"`
	CompanyID  int             `json:"empresaId"`
	Reason     string          `json:"razon"`
	Amount     decimal.Decimal `json:"monto"`
	Funding    string          `json:"fondo"`
	RegisterID int             `json:"cajaId"`
	Audit
}

func (e *Expense) GetID() int        { return e.ID }
func (e *Expense) SetID(id int)      { e.ID = id }
func (e *Expense) GetCompanyID() int { return e.CompanyID }

// ExpensePatch actualización parcial de un gasto.
type ExpensePatch struct {
	Reason     *string          `json:"razon,omitempty"`
	Amount     *decimal.Decimal `json:"monto,omitempty"`
	Funding    *string          `json:"fondo,omitempty"`
	RegisterID *int             `json:"cajaId,omitempty"`
}

func (p ExpensePatch) Apply(e *Expense) {
	set(&e.Reason, p.Reason)
	set(&e.Amount, p.Amount)
	set(&e.Funding, p.Funding)
	set(&e.RegisterID, p.RegisterID)
}
