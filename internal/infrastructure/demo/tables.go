package demo

import "github.com/superventas/pos-api/internal/domain/entity"

// Table vista tabular de una colección del dataset, usada por los exportadores.
// Los valores conservan su tipo Go (decimal.Decimal, *time.Time, *int...).
type Table struct {
	Name    string
	Columns []string
	Rows    [][]any
}

var auditColumns = []string{"created_at", "updated_at", "deleted_at"}

func withAudit(a entity.Audit, values ...any) []any {
	return append(values, a.CreatedAt, a.UpdatedAt, a.DeletedAt)
}

func columns(names ...string) []string {
	return append(names, auditColumns...)
}

// Tables devuelve el dataset como tablas, en orden de dependencia
// (una tabla solo referencia a las anteriores).
func (ds *Dataset) Tables() []Table {
	tables := []Table{
		{
			Name:    "empresas",
			Columns: columns("id", "nombre", "nit", "telefono", "email", "direccion", "owner_id", "foto"),
			Rows: [][]any{withAudit(ds.Company.Audit,
				ds.Company.ID, ds.Company.Name, ds.Company.TaxID, ds.Company.Phone,
				ds.Company.Email, ds.Company.Address, ds.Company.OwnerID, ds.Company.Photo)},
		},
		{
			Name: "usuarios",
			Columns: columns("id", "empresa_id", "nombre", "apellido", "email", "usuario", "clave_hash",
				"cargo", "foto", "caja_id", "estado", "has_changed_password"),
		},
		{Name: "cajas", Columns: columns("id", "empresa_id", "numero", "nombre", "estado", "efectivo")},
		{Name: "categorias", Columns: columns("id", "empresa_id", "nombre", "ubicacion")},
		{
			Name: "productos",
			Columns: columns("id", "empresa_id", "codigo", "nombre", "descripcion", "stock_total", "tipo_unidad",
				"precio_compra", "precio_venta", "marca", "modelo", "estado", "foto", "categoria_id"),
		},
		{
			Name: "clientes",
			Columns: columns("id", "empresa_id", "tipo_documento", "numero_documento", "nombre", "apellido",
				"departamento", "municipio", "direccion", "telefono", "email"),
		},
		{
			Name: "proveedores",
			Columns: columns("id", "empresa_id", "tipo_documento", "numero_documento", "nombre",
				"departamento", "municipio", "direccion", "telefono", "email"),
		},
		{
			Name: "ventas",
			Columns: columns("id", "empresa_id", "codigo", "fecha", "hora", "total", "pagado", "cambio",
				"usuario_id", "cliente_id", "caja_id", "estado"),
		},
		{
			Name: "venta_detalles",
			Columns: columns("id", "empresa_id", "producto_id", "cantidad", "precio_venta", "precio_compra",
				"total", "descripcion", "venta_codigo"),
		},
		{
			Name: "compras",
			Columns: columns("id", "empresa_id", "codigo", "fecha", "hora", "total", "pagado", "cambio",
				"usuario_id", "proveedor_id", "caja_id"),
		},
		{
			Name:    "compra_detalles",
			Columns: columns("id", "empresa_id", "producto_id", "cantidad", "precio_compra", "total", "compra_codigo"),
		},
		{Name: "gastos", Columns: columns("id", "empresa_id", "razon", "monto", "fondo", "caja_id")},
		{
			Name: "ventas_pendientes",
			Columns: columns("id", "empresa_id", "codigo", "fecha", "hora", "total", "pagado", "cambio",
				"usuario_id", "cliente_id", "caja_id", "estado", "cliente_nombre", "vendedor_nombre", "detalles"),
		},
	}

	for _, u := range ds.Users {
		tables[1].Rows = append(tables[1].Rows, withAudit(u.Audit,
			u.ID, u.CompanyID, u.FirstName, u.LastName, u.Email, u.Username, u.PasswordHash,
			u.Role, u.Photo, u.RegisterID, u.Status, u.HasChangedPassword))
	}
	for _, r := range ds.Registers {
		tables[2].Rows = append(tables[2].Rows, withAudit(r.Audit,
			r.ID, r.CompanyID, r.Number, r.Name, r.Status, r.Cash))
	}
	for _, c := range ds.Categories {
		tables[3].Rows = append(tables[3].Rows, withAudit(c.Audit, c.ID, c.CompanyID, c.Name, c.Location))
	}
	for _, p := range ds.Products {
		tables[4].Rows = append(tables[4].Rows, withAudit(p.Audit,
			p.ID, p.CompanyID, p.Code, p.Name, p.Description, p.Stock, p.UnitType,
			p.PurchasePrice, p.SalePrice, p.Brand, p.Model, p.Status, p.Photo, p.CategoryID))
	}
	for _, c := range ds.Clients {
		tables[5].Rows = append(tables[5].Rows, withAudit(c.Audit,
			c.ID, c.CompanyID, c.DocumentType, c.DocumentNumber, c.FirstName, c.LastName,
			c.Department, c.Municipality, c.Address, c.Phone, c.Email))
	}
	for _, s := range ds.Suppliers {
		tables[6].Rows = append(tables[6].Rows, withAudit(s.Audit,
			s.ID, s.CompanyID, s.DocumentType, s.DocumentNumber, s.Name,
			s.Department, s.Municipality, s.Address, s.Phone, s.Email))
	}
	for _, s := range ds.Sales {
		tables[7].Rows = append(tables[7].Rows, withAudit(s.Audit,
			s.ID, s.CompanyID, s.Code, s.Date, s.Time, s.Total, s.Paid, s.Change,
			s.UserID, s.ClientID, s.RegisterID, string(s.Status)))
	}
	for _, l := range ds.SaleLines {
		tables[8].Rows = append(tables[8].Rows, withAudit(l.Audit,
			l.ID, l.CompanyID, l.ProductID, l.Quantity, l.SalePrice, l.PurchasePrice,
			l.Total, l.Description, l.SaleCode))
	}
	for _, p := range ds.Purchases {
		tables[9].Rows = append(tables[9].Rows, withAudit(p.Audit,
			p.ID, p.CompanyID, p.Code, p.Date, p.Time, p.Total, p.Paid, p.Change,
			p.UserID, p.SupplierID, p.RegisterID))
	}
	for _, l := range ds.PurchaseLines {
		tables[10].Rows = append(tables[10].Rows, withAudit(l.Audit,
			l.ID, l.CompanyID, l.ProductID, l.Quantity, l.PurchasePrice, l.Total, l.PurchaseCode))
	}
	for _, e := range ds.Expenses {
		tables[11].Rows = append(tables[11].Rows, withAudit(e.Audit,
			e.ID, e.CompanyID, e.Reason, e.Amount, e.Funding, e.RegisterID))
	}
	for _, ps := range ds.PendingSales {
		lines := ps.Lines
		if lines == nil {
			lines = []entity.SaleLine{}
		}
		tables[12].Rows = append(tables[12].Rows, withAudit(ps.Audit,
			ps.ID, ps.CompanyID, ps.Code, ps.Date, ps.Time, ps.Total, ps.Paid, ps.Change,
			ps.UserID, ps.ClientID, ps.RegisterID, string(ps.Status), ps.ClientName, ps.SellerName, lines))
	}
	return tables
}
