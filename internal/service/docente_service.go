package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/StefanoMT20/daw2/internal/model"
	"github.com/StefanoMT20/daw2/internal/repository"
)

var ErrDocenteNoEncontrado = errors.New("docente no encontrado")

// DocenteService consulta de docentes
type DocenteService interface {
	List(ctx context.Context) ([]model.Docente, error)
	GetByID(ctx context.Context, id int) (*model.Docente, error)
}

type docenteService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDocenteService crea una instancia de DocenteService
func NewDocenteService(repo *repository.Repository, logger *zap.Logger) DocenteService {
	return &docenteService{repo: repo, logger: logger}
}

func (s *docenteService) List(ctx context.Context) ([]model.Docente, error) {
	docentes, err := s.repo.Docente.List(ctx)
	if err != nil {
		s.logger.Error("listar docentes", zap.Error(err))
		return nil, err
	}
	return docentes, nil
}

func (s *docenteService) GetByID(ctx context.Context, id int) (*model.Docente, error) {
	docente, err := s.repo.Docente.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocenteNoEncontrado
		}
		s.logger.Error("consultar docente", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return docente, nil
}
