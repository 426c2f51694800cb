package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/StefanoMT20/daw2/internal/model"
)

// DemandaCurso fila del reporte de demanda: cuántas proyecciones
// incluyen cada curso en un ciclo dado
type DemandaCurso struct {
	CodigoCurso string `json:"codigoCurso"`
	Nombre      string `json:"nombre"`
	Creditos    int    `json:"creditos"`
	Cantidad    int64  `json:"cantidad"`
}

// ProyeccionRepository acceso a datos de proyecciones y sus cursos
type ProyeccionRepository interface {
	GetByUsuario(ctx context.Context, usuarioID int) (*model.Proyeccion, error)
	GetByID(ctx context.Context, id int) (*model.Proyeccion, error)
	Create(ctx context.Context, proyeccion *model.Proyeccion) error
	Delete(ctx context.Context, proyeccion *model.Proyeccion) error
	DeleteCursos(ctx context.Context, proyeccionID int) error
	AddCurso(ctx context.Context, pc *model.ProyeccionCurso) error
	DemandaPorCiclo(ctx context.Context, ciclo string) ([]DemandaCurso, error)
}

type proyeccionRepo struct {
	db *gorm.DB
}

// NewProyeccionRepo crea una instancia de ProyeccionRepository
func NewProyeccionRepo(db *gorm.DB) ProyeccionRepository {
	return &proyeccionRepo{db: db}
}

// preloadCursos carga los cursos de la proyección en orden de inserción
func preloadCursos(db *gorm.DB) *gorm.DB {
	return db.
		Preload("ProyeccionCursos", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("ProyeccionCursos.Curso")
}

func (r *proyeccionRepo) GetByUsuario(ctx context.Context, usuarioID int) (*model.Proyeccion, error) {
	var proyeccion model.Proyeccion
	err := preloadCursos(r.db.WithContext(ctx)).
		Where("usuario_id = ?", usuarioID).
		First(&proyeccion).Error
	if err != nil {
		return nil, err
	}
	return &proyeccion, nil
}

func (r *proyeccionRepo) GetByID(ctx context.Context, id int) (*model.Proyeccion, error) {
	var proyeccion model.Proyeccion
	err := preloadCursos(r.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&proyeccion).Error
	if err != nil {
		return nil, err
	}
	return &proyeccion, nil
}

func (r *proyeccionRepo) Create(ctx context.Context, proyeccion *model.Proyeccion) error {
	return r.db.WithContext(ctx).Create(proyeccion).Error
}

func (r *proyeccionRepo) Delete(ctx context.Context, proyeccion *model.Proyeccion) error {
	return r.db.WithContext(ctx).Delete(proyeccion).Error
}

// DeleteCursos elimina todos los cursos de una proyección.
// Borrado físico: el reemplazo destruye la proyección anterior completa.
func (r *proyeccionRepo) DeleteCursos(ctx context.Context, proyeccionID int) error {
	return r.db.WithContext(ctx).
		Where("proyeccion_id = ?", proyeccionID).
		Delete(&model.ProyeccionCurso{}).Error
}

func (r *proyeccionRepo) AddCurso(ctx context.Context, pc *model.ProyeccionCurso) error {
	return r.db.WithContext(ctx).Create(pc).Error
}

func (r *proyeccionRepo) DemandaPorCiclo(ctx context.Context, ciclo string) ([]DemandaCurso, error) {
	var filas []DemandaCurso
	err := r.db.WithContext(ctx).
		Table("proyeccion_cursos").
		Select("cursos.codigo_curso, cursos.nombre, cursos.creditos, COUNT(*) AS cantidad").
		Joins("JOIN proyecciones ON proyecciones.id = proyeccion_cursos.proyeccion_id").
		Joins("JOIN cursos ON cursos.id = proyeccion_cursos.curso_id").
		Where("proyecciones.ciclo_proyectado = ?", ciclo).
		Group("cursos.codigo_curso, cursos.nombre, cursos.creditos").
		Order("cantidad DESC, cursos.codigo_curso ASC").
		Scan(&filas).Error
	return filas, err
}
