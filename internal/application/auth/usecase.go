package auth

import (
	"context"

	"github.com/superventas/pos-api/internal/application/dto"
	"github.com/superventas/pos-api/internal/domain"
	"github.com/superventas/pos-api/internal/domain/entity"
	"github.com/superventas/pos-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Authenticator valida credenciales contra el almacén activo (demo o backend).
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*entity.User, error)
}

// AuthUseCase login de usuarios del POS.
type AuthUseCase struct {
	users  Authenticator
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users Authenticator, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg}
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.Authenticate(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.CompanyID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: uc.jwtCfg.ExpMinutes * 60,
		User:      user,
	}, nil
}
