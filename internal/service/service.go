package service

import (
	"go.uber.org/zap"

	"github.com/StefanoMT20/daw2/config"
	"github.com/StefanoMT20/daw2/internal/repository"
	"github.com/StefanoMT20/daw2/pkg/jwt"
	"github.com/StefanoMT20/daw2/pkg/redis"
)

// Service punto de entrada agregado de todos los servicios
type Service struct {
	Auth       AuthService
	Usuario    UsuarioService
	Carrera    CarreraService
	Docente    DocenteService
	Curso      CursoService
	Proyeccion ProyeccionService
	Export     ExportService
	Calendario CalendarioService
}

// NewService crea el agregado de servicios
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:       NewAuthService(repo, jwtMgr, rdb, logger),
		Usuario:    NewUsuarioService(repo, logger),
		Carrera:    NewCarreraService(repo, logger),
		Docente:    NewDocenteService(repo, logger),
		Curso:      NewCursoService(repo, logger),
		Proyeccion: NewProyeccionService(repo, logger),
		Export:     NewExportService(repo, logger),
		Calendario: NewCalendarioService(repo, logger),
	}
}
