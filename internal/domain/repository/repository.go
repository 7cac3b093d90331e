package repository

import (
	"context"

	"github.com/superventas/pos-api/internal/domain/entity"
)

// Repository es el puerto CRUD uniforme que expone cada gateway de entidad (DIP).
// Las implementaciones viven en infrastructure/demo (almacén en memoria) e
// infrastructure/api (backend remoto).
type Repository[T any, P entity.Patch[T]] interface {
	// ListAll devuelve todos los registros; companyID 0 significa sin filtro.
	// Los registros con borrado lógico se incluyen.
	ListAll(ctx context.Context, companyID int) ([]*T, error)
	GetByID(ctx context.Context, id int) (*T, error)
	// Create asigna ID y fechas de auditoría y devuelve el registro guardado.
	Create(ctx context.Context, record *T) (*T, error)
	// Update aplica una actualización parcial: los campos nil del patch no se tocan.
	Update(ctx context.Context, id int, patch P) (*T, error)
	// Delete es silencioso si el ID no existe.
	Delete(ctx context.Context, id int) error
}
