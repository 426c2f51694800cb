package handler

import "github.com/StefanoMT20/daw2/internal/service"

// Handler punto de entrada agregado de todos los handlers
type Handler struct {
	Auth       *AuthHandler
	Usuario    *UsuarioHandler
	Carrera    *CarreraHandler
	Docente    *DocenteHandler
	Curso      *CursoHandler
	Proyeccion *ProyeccionHandler
	Export     *ExportHandler
}

// NewHandler crea el agregado de handlers
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		Usuario:    NewUsuarioHandler(svc.Usuario),
		Carrera:    NewCarreraHandler(svc.Carrera),
		Docente:    NewDocenteHandler(svc.Docente),
		Curso:      NewCursoHandler(svc.Curso),
		Proyeccion: NewProyeccionHandler(svc.Proyeccion, svc.Calendario),
		Export:     NewExportHandler(svc.Export),
	}
}
