package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/StefanoMT20/daw2/internal/dto"
	"github.com/StefanoMT20/daw2/internal/service"
	"github.com/StefanoMT20/daw2/pkg/response"
)

// UsuarioHandler módulo de registro de cuentas
type UsuarioHandler struct {
	usuarioSvc service.UsuarioService
}

// NewUsuarioHandler crea un UsuarioHandler
func NewUsuarioHandler(usuarioSvc service.UsuarioService) *UsuarioHandler {
	return &UsuarioHandler{usuarioSvc: usuarioSvc}
}

// Registrar registro de cuenta
// POST /api/usuario
func (h *UsuarioHandler) Registrar(c *gin.Context) {
	var req dto.RegistroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros inválidos")
		return
	}

	usuario, err := h.usuarioSvc.Registrar(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailRegistrado) {
			response.Conflict(c, 10409, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, usuario)
}
