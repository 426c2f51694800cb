package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/StefanoMT20/daw2/internal/dto"
	"github.com/StefanoMT20/daw2/internal/service"
	"github.com/StefanoMT20/daw2/pkg/response"
)

// ProyeccionHandler módulo de proyección de cursos del estudiante
type ProyeccionHandler struct {
	proyeccionSvc service.ProyeccionService
	calendarioSvc service.CalendarioService
}

// NewProyeccionHandler crea un ProyeccionHandler
func NewProyeccionHandler(
	proyeccionSvc service.ProyeccionService,
	calendarioSvc service.CalendarioService,
) *ProyeccionHandler {
	return &ProyeccionHandler{
		proyeccionSvc: proyeccionSvc,
		calendarioSvc: calendarioSvc,
	}
}

// Get proyección actual del estudiante
// GET /api/student/projections
func (h *ProyeccionHandler) Get(c *gin.Context) {
	email, ok := MustGetEmail(c)
	if !ok {
		return
	}

	proyeccion, err := h.proyeccionSvc.Get(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, service.ErrProyeccionNoEncontrada) {
			response.NotFound(c, 10404, err.Error())
			return
		}
		// ErrUsuarioNoEncontrado con token válido es una falla del
		// sistema, no un caso de cliente
		response.InternalError(c)
		return
	}

	response.OK(c, proyeccion)
}

// Replace reemplaza la proyección completa del estudiante
// POST /api/student/projections
func (h *ProyeccionHandler) Replace(c *gin.Context) {
	email, ok := MustGetEmail(c)
	if !ok {
		return
	}

	var req dto.ProyeccionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros inválidos")
		return
	}

	proyeccion, err := h.proyeccionSvc.Replace(c.Request.Context(), email, &req)
	if err != nil {
		h.handleReplaceError(c, err)
		return
	}

	response.OK(c, proyeccion)
}

func (h *ProyeccionHandler) handleReplaceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCicloVacio),
		errors.Is(err, service.ErrCicloFormatoInvalido),
		errors.Is(err, service.ErrCicloFueraDeRango):
		response.BadRequest(c, 10001, err.Error())
	case errors.Is(err, service.ErrCursoNoEncontrado):
		response.BadRequest(c, 10002, err.Error())
	case errors.Is(err, service.ErrConflictoProyeccion):
		// violación de integridad, distinta de la validación
		response.BadRequest(c, 10003, err.Error())
	default:
		response.InternalError(c)
	}
}

// Calendario horario semanal proyectado en formato iCalendar
// GET /api/student/projections/calendar
func (h *ProyeccionHandler) Calendario(c *gin.Context) {
	email, ok := MustGetEmail(c)
	if !ok {
		return
	}

	contenido, filename, err := h.calendarioSvc.ProyeccionICS(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, service.ErrProyeccionNoEncontrada) ||
			errors.Is(err, service.ErrCalendarioSinHorarios) {
			response.NotFound(c, 10404, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(contenido))
}
