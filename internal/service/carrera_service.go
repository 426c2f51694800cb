package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/StefanoMT20/daw2/internal/model"
	"github.com/StefanoMT20/daw2/internal/repository"
)

var ErrCarreraNoEncontrada = errors.New("carrera no encontrada")

// CarreraService consulta de carreras
type CarreraService interface {
	List(ctx context.Context) ([]model.Carrera, error)
	GetByID(ctx context.Context, id int) (*model.Carrera, error)
}

type carreraService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCarreraService crea una instancia de CarreraService
func NewCarreraService(repo *repository.Repository, logger *zap.Logger) CarreraService {
	return &carreraService{repo: repo, logger: logger}
}

func (s *carreraService) List(ctx context.Context) ([]model.Carrera, error) {
	carreras, err := s.repo.Carrera.List(ctx)
	if err != nil {
		s.logger.Error("listar carreras", zap.Error(err))
		return nil, err
	}
	return carreras, nil
}

func (s *carreraService) GetByID(ctx context.Context, id int) (*model.Carrera, error) {
	carrera, err := s.repo.Carrera.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCarreraNoEncontrada
		}
		s.logger.Error("consultar carrera", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return carrera, nil
}
