package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/StefanoMT20/daw2/internal/dto"
	"github.com/StefanoMT20/daw2/internal/service"
	"github.com/StefanoMT20/daw2/pkg/response"
)

// CursoHandler módulo del catálogo de cursos
type CursoHandler struct {
	cursoSvc service.CursoService
}

// NewCursoHandler crea un CursoHandler
func NewCursoHandler(cursoSvc service.CursoService) *CursoHandler {
	return &CursoHandler{cursoSvc: cursoSvc}
}

// List lista el catálogo, opcionalmente filtrado por carrera y ciclo
// GET /api/courses?careerId=1&cycle=Ciclo_03
func (h *CursoHandler) List(c *gin.Context) {
	var carreraID *int
	if raw := c.Query("careerId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(c, 10001, "careerId inválido")
			return
		}
		carreraID = &id
	}
	ciclo := c.Query("cycle")

	cursos, err := h.cursoSvc.List(c.Request.Context(), carreraID, ciclo)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, cursos)
}

// Get detalle de un curso
// GET /api/courses/:id
func (h *CursoHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, 10001, "id inválido")
		return
	}

	curso, err := h.cursoSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCursoNoEncontrado) {
			response.NotFound(c, 10404, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, curso)
}

// Create crea un curso (admin)
// POST /api/courses
func (h *CursoHandler) Create(c *gin.Context) {
	var req dto.CursoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros inválidos")
		return
	}

	curso, err := h.cursoSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrCodigoCursoRegistrado) {
			response.Conflict(c, 10409, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, curso)
}

// Update actualiza un curso (admin)
// PUT /api/courses/:id
func (h *CursoHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, 10001, "id inválido")
		return
	}

	var req dto.CursoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros inválidos")
		return
	}

	curso, err := h.cursoSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCursoNoEncontrado):
			response.NotFound(c, 10404, err.Error())
		case errors.Is(err, service.ErrCodigoCursoRegistrado):
			response.Conflict(c, 10409, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, curso)
}

// Delete elimina un curso (admin)
// DELETE /api/courses/:id
func (h *CursoHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, 10001, "id inválido")
		return
	}

	if err := h.cursoSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrCursoNoEncontrado) {
			response.NotFound(c, 10404, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
