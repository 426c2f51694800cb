package dto

import "github.com/StefanoMT20/daw2/internal/model"

// ── DTO del módulo de autenticación ──

// LoginRequest solicitud de inicio de sesión
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse respuesta de inicio de sesión
type LoginResponse struct {
	Token   string         `json:"token"`
	Usuario *model.Usuario `json:"usuario"`
}
