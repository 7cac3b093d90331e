package entity

// Tipos de documento de identificación.
const (
	DocumentDPI      = "DPI"
	DocumentNIT      = "NIT"
	DocumentPassport = "Pasaporte"
)

// Client representa un cliente de la empresa.
type Client struct {
	ID             int    `json:"id"`
	CompanyID      int    `json:"empresaId"`
	DocumentType   string `json:"tipoDocumento"`
	DocumentNumber string `json:"numeroDocumento"`
	FirstName      string `json:"nombre"`
	LastName       string `json:"apellido"`
	Department     string `json:"departamento"`
	Municipality   string `json:"municipio"`
	Address        string `json:"direccion"`
	Phone          string `json:"telefono"`
	Email          string `json:"email"`
	Audit
}

func (c *Client) GetID() int        { return c.ID }
func (c *Client) SetID(id int)      { c.ID = id }
func (c *Client) GetCompanyID() int { return c.CompanyID }

// FullName nombre completo para mostrar en tickets y ventas pendientes.
func (c Client) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// ClientPatch actualización parcial de un cliente.
type ClientPatch struct {
	DocumentType   *string `json:"tipoDocumento,omitempty"`
	DocumentNumber *string `json:"numeroDocumento,omitempty"`
	FirstName      *string `json:"nombre,omitempty"`
	LastName       *string `json:"apellido,omitempty"`
	Department     *string `json:"departamento,omitempty"`
	Municipality   *string `json:"municipio,omitempty"`
	Address        *string `json:"direccion,omitempty"`
	Phone          *string `json:"telefono,omitempty"`
	Email          *string `json:"email,omitempty"`
}

func (p ClientPatch) Apply(c *Client) {
	set(&c.DocumentType, p.DocumentType)
	set(&c.DocumentNumber, p.DocumentNumber)
	set(&c.FirstName, p.FirstName)
	set(&c.LastName, p.LastName)
	set(&c.Department, p.Department)
	set(&c.Municipality, p.Municipality)
	set(&c.Address, p.Address)
	set(&c.Phone, p.Phone)
	set(&c.Email, p.Email)
}
