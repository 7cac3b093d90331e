package repository

import (
	"context"

	"github.com/superventas/pos-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// En modo demo existe una única empresa: Create y Delete no están permitidos.
type CompanyRepository interface {
	Repository[entity.Company, entity.CompanyPatch]
	GetByOwner(ctx context.Context, ownerID int) (*entity.Company, error)
	GetByEmployee(ctx context.Context, userID int) (*entity.Company, error)
}
