package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/StefanoMT20/daw2/internal/service"
	"github.com/StefanoMT20/daw2/pkg/response"
)

// DocenteHandler módulo de docentes
type DocenteHandler struct {
	docenteSvc service.DocenteService
}

// NewDocenteHandler crea un DocenteHandler
func NewDocenteHandler(docenteSvc service.DocenteService) *DocenteHandler {
	return &DocenteHandler{docenteSvc: docenteSvc}
}

// List lista de docentes
// GET /api/teachers
func (h *DocenteHandler) List(c *gin.Context) {
	docentes, err := h.docenteSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, docentes)
}

// Get detalle de un docente
// GET /api/teachers/:id
func (h *DocenteHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, 10001, "id inválido")
		return
	}

	docente, err := h.docenteSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDocenteNoEncontrado) {
			response.NotFound(c, 10404, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, docente)
}
