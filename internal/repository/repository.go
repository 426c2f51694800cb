package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository punto de entrada agregado de todos los repositorios
type Repository struct {
	Usuario    UsuarioRepository
	Carrera    CarreraRepository
	Docente    DocenteRepository
	Curso      CursoRepository
	Proyeccion ProyeccionRepository

	db *gorm.DB

	// TxRunner reemplaza la transacción real en pruebas unitarias;
	// en producción queda nil y se usa la transacción de gorm.
	TxRunner func(ctx context.Context, fn func(*Repository) error) error
}

// NewRepository crea el agregado de repositorios
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Usuario:    NewUsuarioRepo(db),
		Carrera:    NewCarreraRepo(db),
		Docente:    NewDocenteRepo(db),
		Curso:      NewCursoRepo(db),
		Proyeccion: NewProyeccionRepo(db),
		db:         db,
	}
}

// Transaction ejecuta fn dentro de una transacción de base de datos.
// El *Repository recibido por fn opera sobre la conexión transaccional;
// cualquier error devuelto por fn revierte todo lo escrito.
func (r *Repository) Transaction(ctx context.Context, fn func(*Repository) error) error {
	if r.db == nil {
		if r.TxRunner != nil {
			return r.TxRunner(ctx, fn)
		}
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
