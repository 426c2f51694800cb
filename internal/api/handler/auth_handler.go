package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/StefanoMT20/daw2/internal/dto"
	"github.com/StefanoMT20/daw2/internal/service"
	"github.com/StefanoMT20/daw2/pkg/response"
)

// AuthHandler módulo de autenticación
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler crea un AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login inicio de sesión
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros inválidos")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrCredencialesInvalidas) {
			response.Unauthorized(c, 10002, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Me usuario actual
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	email, ok := MustGetEmail(c)
	if !ok {
		return
	}

	usuario, err := h.authSvc.Me(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, service.ErrUsuarioNoEncontrado) {
			response.NotFound(c, 10404, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, usuario)
}

// Logout cierre de sesión (invalida el token actual)
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	jti, expiresAt, ok := MustGetTokenInfo(c)
	if !ok {
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), jti, expiresAt); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
