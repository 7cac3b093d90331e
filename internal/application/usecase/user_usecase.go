package usecase

import (
	"context"
	"strings"

	"github.com/superventas/pos-api/internal/domain"
	"github.com/superventas/pos-api/internal/domain/entity"
	"github.com/superventas/pos-api/internal/domain/repository"
)

// UserUseCase casos de uso de usuarios.
type UserUseCase struct {
	*crud[entity.User, entity.UserPatch, repository.UserRepository]
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(demo, live repository.UserRepository, d Deps) *UserUseCase {
	return &UserUseCase{newCrud[entity.User, entity.UserPatch]("usuarios", demo, live, d)}
}

// Authenticate valida email y contraseña. Devuelve domain.ErrUnauthorized si no coinciden.
func (uc *UserUseCase) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, domain.ErrUnauthorized
	}
	return call(uc.modal, "authenticate", func(r repository.UserRepository) (*entity.User, error) {
		return r.Authenticate(ctx, email, password)
	})
}
