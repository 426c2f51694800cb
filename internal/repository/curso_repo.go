package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/StefanoMT20/daw2/internal/model"
)

// CursoRepository acceso a datos del catálogo de cursos
type CursoRepository interface {
	List(ctx context.Context) ([]model.Curso, error)
	ListByCarreraAndCiclo(ctx context.Context, carreraID int, ciclo string) ([]model.Curso, error)
	GetByID(ctx context.Context, id int) (*model.Curso, error)
	GetByCodigo(ctx context.Context, codigo string) (*model.Curso, error)
	Create(ctx context.Context, curso *model.Curso) error
	Update(ctx context.Context, curso *model.Curso) error
	Delete(ctx context.Context, id int) error
}

type cursoRepo struct {
	db *gorm.DB
}

// NewCursoRepo crea una instancia de CursoRepository
func NewCursoRepo(db *gorm.DB) CursoRepository {
	return &cursoRepo{db: db}
}

func (r *cursoRepo) List(ctx context.Context) ([]model.Curso, error) {
	var cursos []model.Curso
	err := r.db.WithContext(ctx).
		Order("codigo_curso ASC").
		Find(&cursos).Error
	return cursos, err
}

func (r *cursoRepo) ListByCarreraAndCiclo(ctx context.Context, carreraID int, ciclo string) ([]model.Curso, error) {
	var cursos []model.Curso
	err := r.db.WithContext(ctx).
		Where("carrera_id = ? AND ciclo = ?", carreraID, ciclo).
		Order("codigo_curso ASC").
		Find(&cursos).Error
	return cursos, err
}

func (r *cursoRepo) GetByID(ctx context.Context, id int) (*model.Curso, error) {
	var curso model.Curso
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&curso).Error
	if err != nil {
		return nil, err
	}
	return &curso, nil
}

func (r *cursoRepo) GetByCodigo(ctx context.Context, codigo string) (*model.Curso, error) {
	var curso model.Curso
	err := r.db.WithContext(ctx).
		Where("codigo_curso = ?", codigo).
		First(&curso).Error
	if err != nil {
		return nil, err
	}
	return &curso, nil
}

func (r *cursoRepo) Create(ctx context.Context, curso *model.Curso) error {
	return r.db.WithContext(ctx).Create(curso).Error
}

func (r *cursoRepo) Update(ctx context.Context, curso *model.Curso) error {
	return r.db.WithContext(ctx).Save(curso).Error
}

func (r *cursoRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Curso{}).Error
}
