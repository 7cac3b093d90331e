package entity

// Company representa la empresa (tenant). En modo demo existe exactamente una.
type Company struct {
	ID      int    `json:"id"`
	Name    string `json:"nombre"`
	TaxID   string `json:"nit"` // NIT guatemalteco con dígito verificador
	Phone   string `json:"telefono"`
	Email   string `json:"email"`
	Address string `json:"direccion"`
	OwnerID int    `json:"owner"` // usuario dueño
	Photo   string `json:"foto,omitempty"`
	Audit
}

func (c *Company) GetID() int        { return c.ID }
func (c *Company) SetID(id int)      { c.ID = id }
func (c *Company) GetCompanyID() int { return c.ID }

// CompanyPatch actualización parcial de la empresa.
type CompanyPatch struct {
	Name    *string `json:"nombre,omitempty"`
	TaxID   *string `json:"nit,omitempty"`
	Phone   *string `json:"telefono,omitempty"`
	Email   *string `json:"email,omitempty"`
	Address *string `json:"direccion,omitempty"`
	OwnerID *int    `json:"owner,omitempty"`
	Photo   *string `json:"foto,omitempty"`
}

func (p CompanyPatch) Apply(c *Company) {
	set(&c.Name, p.Name)
	set(&c.TaxID, p.TaxID)
	set(&c.Phone, p.Phone)
	set(&c.Email, p.Email)
	set(&c.Address, p.Address)
	set(&c.OwnerID, p.OwnerID)
	set(&c.Photo, p.Photo)
}
