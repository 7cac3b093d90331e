package demo

import (
	"sync"
	"time"

	"github.com/superventas/pos-api/internal/domain/entity"
)

// cloner lo implementan las entidades con slices o punteros internos.
type cloner[T any] interface {
	Clone() T
}

// Collection es una lista ordenada de registros de una misma entidad.
// Cada colección tiene su propio lock; las lecturas devuelven copias.
// El siguiente ID es 1 + el mayor ID asignado alguna vez (no se reutilizan IDs).
type Collection[T any, R entity.Record[T]] struct {
	mu    sync.RWMutex
	name  string
	items []T
	maxID int
	now   func() time.Time
}

func newCollection[T any, R entity.Record[T]](name string, now func() time.Time, items []T) *Collection[T, R] {
	c := &Collection[T, R]{name: name, now: now}
	c.replace(items)
	return c
}

// Name nombre de la entidad en el almacén.
func (c *Collection[T, R]) Name() string { return c.name }

// Len número de registros, incluidos los de borrado lógico.
func (c *Collection[T, R]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// All devuelve copias de todos los registros; companyID 0 no filtra.
func (c *Collection[T, R]) All(companyID int) []*T {
	return c.Find(func(t *T) bool {
		return companyID == 0 || R(t).GetCompanyID() == companyID
	})
}

// Find devuelve copias de los registros que cumplen match, en orden de inserción.
func (c *Collection[T, R]) Find(match func(*T) bool) []*T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*T, 0)
	for i := range c.items {
		if match(&c.items[i]) {
			cp := clone(c.items[i])
			out = append(out, &cp)
		}
	}
	return out
}

// First devuelve una copia del primer registro que cumple match.
func (c *Collection[T, R]) First(match func(*T) bool) (*T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.items {
		if match(&c.items[i]) {
			cp := clone(c.items[i])
			return &cp, true
		}
	}
	return nil, false
}

// Get devuelve una copia del registro con el ID dado.
func (c *Collection[T, R]) Get(id int) (*T, bool) {
	return c.First(func(t *T) bool { return R(t).GetID() == id })
}

// Insert asigna ID y fechas de auditoría, agrega el registro al final y devuelve una copia.
func (c *Collection[T, R]) Insert(rec T) *T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.insertLocked(rec)
}

// Update aplica fn sobre el registro y refresca UpdatedAt. false si no existe.
func (c *Collection[T, R]) Update(id int, fn func(*T)) (*T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.updateLocked(id, fn)
}

// SoftDelete marca DeletedAt. No hace nada si el ID no existe.
func (c *Collection[T, R]) SoftDelete(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexLocked(id); i >= 0 {
		R(&c.items[i]).Audited().SoftDelete(c.now())
	}
}

// Remove quita físicamente el registro. No hace nada si el ID no existe.
func (c *Collection[T, R]) Remove(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(id)
}

func (c *Collection[T, R]) insertLocked(rec T) *T {
	c.maxID++
	rec = clone(rec)
	r := R(&rec)
	r.SetID(c.maxID)
	r.Audited().Stamp(c.now())
	c.items = append(c.items, rec)
	out := clone(rec)
	return &out
}

// appendLocked agrega un registro que ya trae ID y auditoría (promoción).
func (c *Collection[T, R]) appendLocked(rec T) {
	if id := R(&rec).GetID(); id > c.maxID {
		c.maxID = id
	}
	c.items = append(c.items, clone(rec))
}

func (c *Collection[T, R]) nextIDLocked() int { return c.maxID + 1 }

func (c *Collection[T, R]) updateLocked(id int, fn func(*T)) (*T, bool) {
	i := c.indexLocked(id)
	if i < 0 {
		return nil, false
	}
	fn(&c.items[i])
	R(&c.items[i]).Audited().Touch(c.now())
	out := clone(c.items[i])
	return &out, true
}

// updateWhereLocked aplica fn a todos los registros que cumplen match.
func (c *Collection[T, R]) updateWhereLocked(match func(*T) bool, fn func(*T)) int {
	n := 0
	now := c.now()
	for i := range c.items {
		if match(&c.items[i]) {
			fn(&c.items[i])
			R(&c.items[i]).Audited().Touch(now)
			n++
		}
	}
	return n
}

func (c *Collection[T, R]) getLocked(id int) (T, bool) {
	var zero T
	i := c.indexLocked(id)
	if i < 0 {
		return zero, false
	}
	return clone(c.items[i]), true
}

func (c *Collection[T, R]) removeLocked(id int) (T, bool) {
	var zero T
	i := c.indexLocked(id)
	if i < 0 {
		return zero, false
	}
	rec := c.items[i]
	c.items = append(c.items[:i], c.items[i+1:]...)
	return rec, true
}

func (c *Collection[T, R]) indexLocked(id int) int {
	for i := range c.items {
		if R(&c.items[i]).GetID() == id {
			return i
		}
	}
	return -1
}

// replace sustituye el contenido por copias de items y recalcula el ID máximo.
func (c *Collection[T, R]) replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make([]T, 0, len(items))
	c.maxID = 0
	for _, it := range items {
		c.appendLocked(it)
	}
}

// snapshot copia profunda del contenido actual.
func (c *Collection[T, R]) snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	for i := range c.items {
		out[i] = clone(c.items[i])
	}
	return out
}

func clone[T any](v T) T {
	if c, ok := any(&v).(cloner[T]); ok {
		v = c.Clone()
	}
	if a, ok := any(&v).(interface{ Audited() *entity.Audit }); ok {
		if d := a.Audited().DeletedAt; d != nil {
			t := *d
			a.Audited().DeletedAt = &t
		}
	}
	return v
}
