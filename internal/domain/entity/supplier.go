package entity

// Supplier representa un proveedor.
type Supplier struct {
	ID             int    `json:"id"`
	CompanyID      int    `json:"empresaId"`
	DocumentType   string `json:"tipoDocumento"`
	DocumentNumber string `json:"numeroDocumento"`
	Name           string `json:"nombre"`
	Department     string `json:"departamento"`
	Municipality   string `json:"municipio"`
	Address        string `json:"direccion"`
	Phone          string `json:"telefono"`
	Email          string `json:"email"`
	Audit
}

func (s *Supplier) GetID() int        { return s.ID }
func (s *Supplier) SetID(id int)      { s.ID = id }
func (s *Supplier) GetCompanyID() int { return s.CompanyID }

// SupplierPatch actualización parcial de un proveedor.
type SupplierPatch struct {
	DocumentType   *string `json:"tipoDocumento,omitempty"`
	DocumentNumber *string `json:"numeroDocumento,omitempty"`
	Name           *string `json:"nombre,omitempty"`
	Department     *string `json:"departamento,omitempty"`
	Municipality   *string `json:"municipio,omitempty"`
	Address        *string `json:"direccion,omitempty"`
	Phone          *string `json:"telefono,omitempty"`
	Email          *string `json:"email,omitempty"`
}

func (p SupplierPatch) Apply(s *Supplier) {
	set(&s.DocumentType, p.DocumentType)
	set(&s.DocumentNumber, p.DocumentNumber)
	set(&s.Name, p.Name)
	set(&s.Department, p.Department)
	set(&s.Municipality, p.Municipality)
	set(&s.Address, p.Address)
	set(&s.Phone, p.Phone)
	set(&s.Email, p.Email)
}
