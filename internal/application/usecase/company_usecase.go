package usecase

import (
	"context"

	"github.com/superventas/pos-api/internal/domain/entity"
	"github.com/superventas/pos-api/internal/domain/repository"
)

// CompanyUseCase casos de uso de empresa. En modo demo hay una sola empresa:
// Create y Delete devuelven domain.ErrInvalidOperation.
type CompanyUseCase struct {
	*crud[entity.Company, entity.CompanyPatch, repository.CompanyRepository]
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(demo, live repository.CompanyRepository, d Deps) *CompanyUseCase {
	return &CompanyUseCase{newCrud[entity.Company, entity.CompanyPatch]("empresa", demo, live, d)}
}

// GetByOwner empresa cuyo propietario es ownerID.
func (uc *CompanyUseCase) GetByOwner(ctx context.Context, ownerID int) (*entity.Company, error) {
	return call(uc.modal, "by_owner", func(r repository.CompanyRepository) (*entity.Company, error) {
		return r.GetByOwner(ctx, ownerID)
	})
}

// GetByEmployee empresa a la que pertenece el usuario.
func (uc *CompanyUseCase) GetByEmployee(ctx context.Context, userID int) (*entity.Company, error) {
	return call(uc.modal, "by_employee", func(r repository.CompanyRepository) (*entity.Company, error) {
		return r.GetByEmployee(ctx, userID)
	})
}
