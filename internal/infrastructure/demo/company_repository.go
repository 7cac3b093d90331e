package demo

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/superventas/pos-api/internal/domain"
	"github.com/superventas/pos-api/internal/domain/entity"
	"github.com/superventas/pos-api/internal/domain/repository"
)

// CompanyRepository empresa única del modo demo.
type CompanyRepository struct {
	*Repository[entity.Company, entity.CompanyPatch, *entity.Company]
	store *Store
}

func NewCompanyRepository(s *Store) *CompanyRepository {
	return &CompanyRepository{
		Repository: newRepository[entity.Company, entity.CompanyPatch](s.Companies, true),
		store:      s,
	}
}

// Create no está permitido: el dataset demo tiene una sola empresa.
func (r *CompanyRepository) Create(context.Context, *entity.Company) (*entity.Company, error) {
	return nil, domain.InvalidOperation("no se pueden crear empresas en modo demo")
}

// Delete no está permitido en modo demo.
func (r *CompanyRepository) Delete(context.Context, int) error {
	return domain.InvalidOperation("no se pueden eliminar empresas en modo demo")
}

func (r *CompanyRepository) GetByOwner(_ context.Context, ownerID int) (*entity.Company, error) {
	c, ok := r.store.Companies.First(func(c *entity.Company) bool { return c.OwnerID == ownerID })
	if !ok {
		return nil, domain.NotFound(EntityCompany, ownerID)
	}
	return c, nil
}

// GetByEmployee devuelve la empresa del usuario si existe en el dataset.
func (r *CompanyRepository) GetByEmployee(ctx context.Context, userID int) (*entity.Company, error) {
	u, ok := r.store.Users.Get(userID)
	if !ok {
		return nil, domain.NotFound(EntityUsers, userID)
	}
	return r.GetByID(ctx, u.CompanyID)
}

// UserRepository usuarios del modo demo.
type UserRepository struct {
	*Repository[entity.User, entity.UserPatch, *entity.User]
	store *Store
}

func NewUserRepository(s *Store) *UserRepository {
	return &UserRepository{
		Repository: newRepository[entity.User, entity.UserPatch](s.Users, true),
		store:      s,
	}
}

// Authenticate compara la contraseña con el hash bcrypt del usuario.
// Usuarios inactivos o eliminados no pueden autenticarse.
func (r *UserRepository) Authenticate(_ context.Context, email, password string) (*entity.User, error) {
	u, ok := r.store.Users.First(func(u *entity.User) bool { return strings.EqualFold(u.Email, email) })
	if !ok || u.IsDeleted() || u.Status != entity.UserStatusActive {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	return u, nil
}

var (
	_ repository.CompanyRepository = (*CompanyRepository)(nil)
	_ repository.UserRepository    = (*UserRepository)(nil)
)
