package entity

import "github.com/shopspring/decimal"

// SaleLine representa una línea de detalle de venta. Los precios son una foto
// del producto al momento de la venta, no una referencia viva.
type SaleLine struct {
	ID            int             `json:"id"`
	CompanyID     int             `json:"empresaId"`
	ProductID     int             `json:"productoId"`
	Quantity      int             `json:"cantidad"`
	SalePrice     decimal.Decimal `json:"precioVenta"`
	PurchasePrice decimal.Decimal `json:"precioCompra"`
	Total         decimal.Decimal `json:"total"`
	Description   string          `json:"descripcion"`
	SaleCode      string          `json:"ventaCodigo"`
	Audit
}

func (l *SaleLine) GetID() int        { return l.ID }
func (l *SaleLine) SetID(id int)      { l.ID = id }
func (l *SaleLine) GetCompanyID() int { return l.CompanyID }

// NewSaleLine arma una línea con total = cantidad × precio de venta.
func NewSaleLine(p Product, qty int, saleCode string) SaleLine {
	return SaleLine{
		CompanyID:     p.CompanyID,
		ProductID:     p.ID,
		Quantity:      qty,
		SalePrice:     p.SalePrice,
		PurchasePrice: p.PurchasePrice,
		Total:         p.SalePrice.Mul(decimal.NewFromInt(int64(qty))),
		Description:   p.Name,
		SaleCode:      saleCode,
	}
}

// SaleLinePatch actualización parcial de una línea. No recalcula Total.
type SaleLinePatch struct {
	ProductID     *int             `json:"productoId,omitempty"`
	Quantity      *int             `json:"cantidad,omitempty"`
	SalePrice     *decimal.Decimal `json:"precioVenta,omitempty"`
	PurchasePrice *decimal.Decimal `json:"precioCompra,omitempty"`
	Total         *decimal.Decimal `json:"total,omitempty"`
	Description   *string          `json:"descripcion,omitempty"`
	SaleCode      *string          `json:"ventaCodigo,omitempty"`
}

func (p SaleLinePatch) Apply(l *SaleLine) {
	set(&l.ProductID, p.ProductID)
	set(&l.Quantity, p.Quantity)
	set(&l.SalePrice, p.SalePrice)
	set(&l.PurchasePrice, p.PurchasePrice)
	set(&l.Total, p.Total)
	set(&l.Description, p.Description)
	set(&l.SaleCode, p.SaleCode)
}

func sumLines(lines []SaleLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Total)
	}
	return total
}
