package dto

import "github.com/superventas/pos-api/internal/domain/entity"

// LoginRequest credenciales del usuario.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT y usuario autenticado (sin hash de contraseña).
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expiresIn"`
	User      *entity.User `json:"usuario"`
}
