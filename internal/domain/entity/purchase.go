package entity

import "github.com/shopspring/decimal"

// Purchase representa una compra a proveedor. Todas las compras son finales (sin estado).
type Purchase struct {
	ID         int             `json:"id"`
	CompanyID  int             `json:"empresaId"`
	Code       string          `json:"codigo"` // C-YYYYMMDD-0001
	Date       string          `json:"fecha"`
	Time       string          `json:"hora"`
	Total      decimal.Decimal `json:"total"`
	Paid       decimal.Decimal `json:"pagado"`
	Change     decimal.Decimal `json:"cambio"`
	UserID     int             `json:"usuarioId"`
	SupplierID int             `json:"proveedorId"`
	RegisterID int             `json:"cajaId"`
	Lines      []PurchaseLine  `json:"detalles,omitempty"`
	Audit
}

func (p *Purchase) GetID() int        { return p.ID }
func (p *Purchase) SetID(id int)      { p.ID = id }
func (p *Purchase) GetCompanyID() int { return p.CompanyID }

// LinesTotal suma los totales de las líneas.
func (p Purchase) LinesTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range p.Lines {
		total = total.Add(l.Total)
	}
	return total
}

// PurchasePatch actualización parcial de una compra. No recalcula Total.
type PurchasePatch struct {
	Code       *string          `json:"codigo,omitempty"`
	Date       *string          `json:"fecha,omitempty"`
	Time       *string          `json:"hora,omitempty"`
	Total      *decimal.Decimal `json:"total,omitempty"`
	Paid       *decimal.Decimal `json:"pagado,omitempty"`
	Change     *decimal.Decimal `json:"cambio,omitempty"`
	UserID     *int             `json:"usuarioId,omitempty"`
	SupplierID *int             `json:"proveedorId,omitempty"`
	RegisterID *int             `json:"cajaId,omitempty"`
}

func (p PurchasePatch) Apply(dst *Purchase) {
	set(&dst.Code, p.Code)
	set(&dst.Date, p.Date)
	set(&dst.Time, p.Time)
	set(&dst.Total, p.Total)
	set(&dst.Paid, p.Paid)
	set(&dst.Change, p.Change)
	set(&dst.UserID, p.UserID)
	set(&dst.SupplierID, p.SupplierID)
	set(&dst.RegisterID, p.RegisterID)
}

// PurchaseLine línea de detalle de compra, asociada por PurchaseCode.
type PurchaseLine struct {
	ID            int             `json:"id"`
	CompanyID     int             `json:"empresaId"`
	ProductID     int             `json:"productoId"`
	Quantity      int             `json:"cantidad"`
	PurchasePrice decimal.Decimal `json:"precioCompra"`
	Total         decimal.Decimal `json:"total"`
	PurchaseCode  string          `json:"compraCodigo"`
	Audit
}

func (l *PurchaseLine) GetID() int        { return l.ID }
func (l *PurchaseLine) SetID(id int)      { l.ID = id }
func (l *PurchaseLine) GetCompanyID() int { return l.CompanyID }

// NewPurchaseLine arma una línea con total = cantidad × precio de compra.
func NewPurchaseLine(p Product, qty int, purchaseCode string) PurchaseLine {
	return PurchaseLine{
		CompanyID:     p.CompanyID,
		ProductID:     p.ID,
		Quantity:      qty,
		PurchasePrice: p.PurchasePrice,
		Total:         p.PurchasePrice.Mul(decimal.NewFromInt(int64(qty))),
		PurchaseCode:  purchaseCode,
	}
}

// PurchaseLinePatch actualización parcial de una línea de compra.
type PurchaseLinePatch struct {
	ProductID     *int             `json:"productoId,omitempty"`
	Quantity      *int             `json:"cantidad,omitempty"`
	PurchasePrice *decimal.Decimal `json:"precioCompra,omitempty"`
	Total         *decimal.Decimal `json:"total,omitempty"`
	PurchaseCode  *string          `json:"compraCodigo,omitempty"`
}

func (p PurchaseLinePatch) Apply(l *PurchaseLine) {
	set(&l.ProductID, p.ProductID)
	set(&l.Quantity, p.Quantity)
	set(&l.PurchasePrice, p.PurchasePrice)
	set(&l.Total, p.Total)
	set(&l.PurchaseCode, p.PurchaseCode)
}

// Clone copia profunda (líneas).
func (p Purchase) Clone() Purchase {
	if p.Lines != nil {
		p.Lines = append([]PurchaseLine(nil), p.Lines...)
	}
	return p
}
