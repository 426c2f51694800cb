package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/StefanoMT20/daw2/internal/model"
)

// DocenteRepository acceso a datos de docentes
type DocenteRepository interface {
	List(ctx context.Context) ([]model.Docente, error)
	GetByID(ctx context.Context, id int) (*model.Docente, error)
}

type docenteRepo struct {
	db *gorm.DB
}

// NewDocenteRepo crea una instancia de DocenteRepository
func NewDocenteRepo(db *gorm.DB) DocenteRepository {
	return &docenteRepo{db: db}
}

func (r *docenteRepo) List(ctx context.Context) ([]model.Docente, error) {
	var docentes []model.Docente
	err := r.db.WithContext(ctx).
		Order("apellido ASC, nombre ASC").
		Find(&docentes).Error
	return docentes, err
}

func (r *docenteRepo) GetByID(ctx context.Context, id int) (*model.Docente, error) {
	var docente model.Docente
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&docente).Error
	if err != nil {
		return nil, err
	}
	return &docente, nil
}
