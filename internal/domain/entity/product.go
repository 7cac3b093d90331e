package entity

import "github.com/shopspring/decimal"

// ProductStatusActive estado de un producto a la venta.
const ProductStatusActive = "activo"

// Product representa un producto del inventario.
// SalePrice se espera mayor que PurchasePrice, pero no se valida.
type Product struct {
	ID            int             `json:"id"`
	CompanyID     int             `json:"empresaId"`
	Code          string          `json:"codigo"` // único, legible (PROD-00001)
	Name          string          `json:"nombre"`
	Description   string          `json:"descripcion"`
	Stock         int             `json:"stockTotal"`
	UnitType      string          `json:"tipoUnidad"`
	PurchasePrice decimal.Decimal `json:"precioCompra"`
	SalePrice     decimal.Decimal `json:"precioVenta"`
	Brand         string          `json:"marca"`
	Model         string          `json:"modelo"`
	Status        string          `json:"estado"`
	Photo         string          `json:"foto,omitempty"`
	CategoryID    int             `json:"categoriaId"`
	Audit
}

func (p *Product) GetID() int        { return p.ID }
func (p *Product) SetID(id int)      { p.ID = id }
func (p *Product) GetCompanyID() int { return p.CompanyID }

// ProductPatch actualización parcial de un producto.
type ProductPatch struct {
	Code          *string          `json:"codigo,omitempty"`
	Name          *string          `json:"nombre,omitempty"`
	Description   *string          `json:"descripcion,omitempty"`
	Stock         *int             `json:"stockTotal,omitempty"`
	UnitType      *string          `json:"tipoUnidad,omitempty"`
	PurchasePrice *decimal.Decimal `json:"precioCompra,omitempty"`
	SalePrice     *decimal.Decimal `json:"precioVenta,omitempty"`
	Brand         *string          `json:"marca,omitempty"`
	Model         *string          `json:"modelo,omitempty"`
	Status        *string          `json:"estado,omitempty"`
	Photo         *string          `json:"foto,omitempty"`
	CategoryID    *int             `json:"categoriaId,omitempty"`
}

func (p ProductPatch) Apply(dst *Product) {
	set(&dst.Code, p.Code)
	set(&dst.Name, p.Name)
	set(&dst.Description, p.Description)
	set(&dst.Stock, p.Stock)
	set(&dst.UnitType, p.UnitType)
	set(&dst.PurchasePrice, p.PurchasePrice)
	set(&dst.SalePrice, p.SalePrice)
	set(&dst.Brand, p.Brand)
	set(&dst.Model, p.Model)
	set(&dst.Status, p.Status)
	set(&dst.Photo, p.Photo)
	set(&dst.CategoryID, p.CategoryID)
}
