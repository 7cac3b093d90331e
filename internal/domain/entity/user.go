package entity

// Roles (cargo) de usuario. El núcleo no los aplica; se exponen como dato.
const (
	RoleOwner   = "Owner"
	RoleAdmin   = "Administrador"
	RoleCashier = "Cajero"
	RoleSeller  = "Vendedor"
)

// Estados de usuario.
const (
	UserStatusActive   = "activo"
	UserStatusInactive = "inactivo"
)

// User representa un usuario de la empresa.
// PasswordHash nunca se serializa.
type User struct {
	ID                 int    `json:"id"`
	CompanyID          int    `json:"empresaId"`
	FirstName          string `json:"nombre"`
	LastName           string `json:"apellido"`
	Email              string `json:"email"`
	Username           string `json:"usuario"`
	PasswordHash       string `json:"-"`
	Role               string `json:"cargo"`
	Photo              string `json:"foto,omitempty"`
	RegisterID         int    `json:"cajaId"`
	Status             string `json:"estado"`
	HasChangedPassword bool   `json:"hasChangedPassword"`
	Audit
}

func (u *User) GetID() int        { return u.ID }
func (u *User) SetID(id int)      { u.ID = id }
func (u *User) GetCompanyID() int { return u.CompanyID }

// FullName nombre y apellido del usuario.
func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// UserPatch actualización parcial de un usuario.
type UserPatch struct {
	FirstName  *string `json:"nombre,omitempty"`
	LastName   *string `json:"apellido,omitempty"`
	Email      *string `json:"email,omitempty"`
	Role       *string `json:"cargo,omitempty"`
	Photo      *string `json:"foto,omitempty"`
	RegisterID *int    `json:"cajaId,omitempty"`
	Status     *string `json:"estado,omitempty"`
}

func (p UserPatch) Apply(u *User) {
	set(&u.FirstName, p.FirstName)
	set(&u.LastName, p.LastName)
	set(&u.Email, p.Email)
	set(&u.Role, p.Role)
	set(&u.Photo, p.Photo)
	set(&u.RegisterID, p.RegisterID)
	set(&u.Status, p.Status)
}
