package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/StefanoMT20/daw2/internal/dto"
	"github.com/StefanoMT20/daw2/internal/model"
	"github.com/StefanoMT20/daw2/internal/repository"
)

// ── Errores del módulo de catálogo ──

var ErrCodigoCursoRegistrado = errors.New("el código de curso ya existe")

// CursoService catálogo de cursos. El filtro por carrera y ciclo solo
// aplica cuando ambos parámetros están presentes, igual que el listado
// completo cuando falta alguno.
type CursoService interface {
	List(ctx context.Context, carreraID *int, ciclo string) ([]model.Curso, error)
	GetByID(ctx context.Context, id int) (*model.Curso, error)
	Create(ctx context.Context, req *dto.CursoRequest) (*model.Curso, error)
	Update(ctx context.Context, id int, req *dto.CursoRequest) (*model.Curso, error)
	Delete(ctx context.Context, id int) error
}

type cursoService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCursoService crea una instancia de CursoService
func NewCursoService(repo *repository.Repository, logger *zap.Logger) CursoService {
	return &cursoService{repo: repo, logger: logger}
}

func (s *cursoService) List(ctx context.Context, carreraID *int, ciclo string) ([]model.Curso, error) {
	if carreraID != nil && ciclo != "" {
		cursos, err := s.repo.Curso.ListByCarreraAndCiclo(ctx, *carreraID, ciclo)
		if err != nil {
			s.logger.Error("listar cursos por carrera y ciclo", zap.Error(err))
			return nil, err
		}
		return cursos, nil
	}

	cursos, err := s.repo.Curso.List(ctx)
	if err != nil {
		s.logger.Error("listar cursos", zap.Error(err))
		return nil, err
	}
	return cursos, nil
}

func (s *cursoService) GetByID(ctx context.Context, id int) (*model.Curso, error) {
	curso, err := s.repo.Curso.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCursoNoEncontrado
		}
		s.logger.Error("consultar curso", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return curso, nil
}

func (s *cursoService) Create(ctx context.Context, req *dto.CursoRequest) (*model.Curso, error) {
	curso := cursoFromRequest(req)

	if err := s.repo.Curso.Create(ctx, curso); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCodigoCursoRegistrado
		}
		s.logger.Error("crear curso", zap.Error(err))
		return nil, err
	}
	return curso, nil
}

func (s *cursoService) Update(ctx context.Context, id int, req *dto.CursoRequest) (*model.Curso, error) {
	existente, err := s.repo.Curso.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCursoNoEncontrado
		}
		s.logger.Error("consultar curso", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	curso := cursoFromRequest(req)
	curso.ID = existente.ID
	curso.FechaCreacion = existente.FechaCreacion

	if err := s.repo.Curso.Update(ctx, curso); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCodigoCursoRegistrado
		}
		s.logger.Error("actualizar curso", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return curso, nil
}

func (s *cursoService) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.Curso.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCursoNoEncontrado
		}
		s.logger.Error("consultar curso", zap.Int("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Curso.Delete(ctx, id); err != nil {
		s.logger.Error("eliminar curso", zap.Int("id", id), zap.Error(err))
		return err
	}
	return nil
}

func cursoFromRequest(req *dto.CursoRequest) *model.Curso {
	activo := true
	if req.Activo != nil {
		activo = *req.Activo
	}
	return &model.Curso{
		CodigoCurso:         req.CodigoCurso,
		Nombre:              req.Nombre,
		Descripcion:         req.Descripcion,
		Creditos:            req.Creditos,
		Ciclo:               req.Ciclo,
		CarreraID:           req.CarreraID,
		AreaConocimiento:    req.AreaConocimiento,
		Modalidad:           req.Modalidad,
		Sede:                req.Sede,
		Turno:               req.Turno,
		VacantesTotales:     req.VacantesTotales,
		VacantesDisponibles: req.VacantesDisponibles,
		DocenteID:           req.DocenteID,
		HorarioDias:         req.HorarioDias,
		HoraInicio:          req.HoraInicio,
		HoraFin:             req.HoraFin,
		Aula:                req.Aula,
		EnlaceVirtual:       req.EnlaceVirtual,
		Activo:              activo,
	}
}
