package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/StefanoMT20/daw2/internal/service"
	"github.com/StefanoMT20/daw2/pkg/response"
)

// CarreraHandler módulo de carreras
type CarreraHandler struct {
	carreraSvc service.CarreraService
}

// NewCarreraHandler crea un CarreraHandler
func NewCarreraHandler(carreraSvc service.CarreraService) *CarreraHandler {
	return &CarreraHandler{carreraSvc: carreraSvc}
}

// List lista de carreras
// GET /api/carreras
func (h *CarreraHandler) List(c *gin.Context) {
	carreras, err := h.carreraSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, carreras)
}

// Get detalle de una carrera
// GET /api/carreras/:id
func (h *CarreraHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, 10001, "id inválido")
		return
	}

	carrera, err := h.carreraSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCarreraNoEncontrada) {
			response.NotFound(c, 10404, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, carrera)
}
