package entity

import "time"

// Audit agrupa los campos de auditoría comunes a todas las entidades.
// DeletedAt != nil indica borrado lógico: el registro sigue existiendo.
type Audit struct {
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt"`
}

// Audited devuelve el bloque de auditoría para que el almacén lo actualice.
func (a *Audit) Audited() *Audit { return a }

// Stamp marca un registro recién creado.
func (a *Audit) Stamp(now time.Time) {
	a.CreatedAt = now
	a.UpdatedAt = now
	a.DeletedAt = nil
}

// Touch refresca la fecha de actualización.
func (a *Audit) Touch(now time.Time) { a.UpdatedAt = now }

// SoftDelete marca el registro como eliminado sin quitarlo de su colección.
func (a *Audit) SoftDelete(now time.Time) {
	t := now
	a.DeletedAt = &t
}

// IsDeleted indica si el registro tiene borrado lógico.
func (a Audit) IsDeleted() bool { return a.DeletedAt != nil }

// Record es el contrato mínimo de una entidad persistible en el almacén demo.
// T es el tipo valor; la interfaz se satisface con *T.
type Record[T any] interface {
	*T
	GetID() int
	SetID(id int)
	GetCompanyID() int
	Audited() *Audit
}

// Patch es una actualización parcial: los campos nil no se tocan.
type Patch[T any] interface {
	Apply(dst *T)
}

func set[V any](dst *V, src *V) {
	if src != nil {
		*dst = *src
	}
}
