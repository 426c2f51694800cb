package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/StefanoMT20/daw2/internal/model"
)

// CarreraRepository acceso a datos de carreras
type CarreraRepository interface {
	List(ctx context.Context) ([]model.Carrera, error)
	GetByID(ctx context.Context, id int) (*model.Carrera, error)
}

type carreraRepo struct {
	db *gorm.DB
}

// NewCarreraRepo crea una instancia de CarreraRepository
func NewCarreraRepo(db *gorm.DB) CarreraRepository {
	return &carreraRepo{db: db}
}

func (r *carreraRepo) List(ctx context.Context) ([]model.Carrera, error) {
	var carreras []model.Carrera
	err := r.db.WithContext(ctx).
		Order("nombre ASC").
		Find(&carreras).Error
	return carreras, err
}

func (r *carreraRepo) GetByID(ctx context.Context, id int) (*model.Carrera, error) {
	var carrera model.Carrera
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&carrera).Error
	if err != nil {
		return nil, err
	}
	return &carrera, nil
}
