package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/StefanoMT20/daw2/internal/model"
)

// UsuarioRepository acceso a datos de usuarios
type UsuarioRepository interface {
	Create(ctx context.Context, usuario *model.Usuario) error
	GetByID(ctx context.Context, id int) (*model.Usuario, error)
	GetByEmail(ctx context.Context, email string) (*model.Usuario, error)
}

type usuarioRepo struct {
	db *gorm.DB
}

// NewUsuarioRepo crea una instancia de UsuarioRepository
func NewUsuarioRepo(db *gorm.DB) UsuarioRepository {
	return &usuarioRepo{db: db}
}

func (r *usuarioRepo) Create(ctx context.Context, usuario *model.Usuario) error {
	return r.db.WithContext(ctx).Create(usuario).Error
}

func (r *usuarioRepo) GetByID(ctx context.Context, id int) (*model.Usuario, error) {
	var usuario model.Usuario
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&usuario).Error
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepo) GetByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var usuario model.Usuario
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&usuario).Error
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}
