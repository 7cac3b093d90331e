package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/superventas/pos-api/internal/domain"
	"github.com/superventas/pos-api/internal/domain/entity"
	"github.com/superventas/pos-api/internal/domain/repository"
)

type CompanyRepository struct {
	*Repository[entity.Company, entity.CompanyPatch]
}

func NewCompanyRepository(c *Client) *CompanyRepository {
	return &CompanyRepository{Repository: newRepository[entity.Company, entity.CompanyPatch](c, ResourceCompanies)}
}

// ListAll el backend no filtra empresas por empresa.
func (r *CompanyRepository) ListAll(ctx context.Context, _ int) ([]*entity.Company, error) {
	return r.list(ctx, ResourceCompanies+"/all")
}

func (r *CompanyRepository) GetByOwner(ctx context.Context, ownerID int) (*entity.Company, error) {
	return r.get(ctx, fmt.Sprintf("%s/by-owner/%d", ResourceCompanies, ownerID))
}

func (r *CompanyRepository) GetByEmployee(ctx context.Context, userID int) (*entity.Company, error) {
	return r.get(ctx, fmt.Sprintf("%s/by-empleado/%d", ResourceCompanies, userID))
}

type UserRepository struct {
	*Repository[entity.User, entity.UserPatch]
}

func NewUserRepository(c *Client) *UserRepository {
	return &UserRepository{Repository: newRepository[entity.User, entity.UserPatch](c, ResourceUsers)}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"clave"`
}

type loginResponse struct {
	User entity.User `json:"usuario"`
}

// Authenticate delega la validación de credenciales al backend (auth/login).
func (r *UserRepository) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	var resp loginResponse
	err := r.client.Post(ctx, "auth/login", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		var up *domain.UpstreamError
		if errors.As(err, &up) && (up.Status == http.StatusUnauthorized || up.Status == http.StatusForbidden) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnauthorized, up.Body)
		}
		return nil, err
	}
	return &resp.User, nil
}

var (
	_ repository.CompanyRepository = (*CompanyRepository)(nil)
	_ repository.UserRepository    = (*UserRepository)(nil)
)
