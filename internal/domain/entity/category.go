package entity

// Category representa una categoría de productos con su ubicación en tienda.
type Category struct {
	ID        int    `json:"id"`
	CompanyID int    `json:"empresaId"`
	Name      string `json:"nombre"`
	Location  string `json:"ubicacion"` // pasillo
	Audit
}

func (c *Category) GetID() int        { return c.ID }
func (c *Category) SetID(id int)      { c.ID = id }
func (c *Category) GetCompanyID() int { return c.CompanyID }

// CategoryPatch actualización parcial de una categoría.
type CategoryPatch struct {
	Name     *string `json:"nombre,omitempty"`
	Location *string `json:"ubicacion,omitempty"`
}

func (p CategoryPatch) Apply(c *Category) {
	set(&c.Name, p.Name)
	set(&c.Location, p.Location)
}
