package repository

import (
	"context"

	"github.com/superventas/pos-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Repository[entity.User, entity.UserPatch]
	// Authenticate valida credenciales y devuelve el usuario; ErrUnauthorized si no coinciden.
	Authenticate(ctx context.Context, email, password string) (*entity.User, error)
}
