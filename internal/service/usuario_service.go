package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/StefanoMT20/daw2/internal/dto"
	"github.com/StefanoMT20/daw2/internal/model"
	"github.com/StefanoMT20/daw2/internal/repository"
)

// ── Errores del módulo de usuarios ──

var ErrEmailRegistrado = errors.New("el email ya está registrado")

// UsuarioService registro de cuentas
type UsuarioService interface {
	Registrar(ctx context.Context, req *dto.RegistroRequest) (*model.Usuario, error)
}

type usuarioService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUsuarioService crea una instancia de UsuarioService
func NewUsuarioService(repo *repository.Repository, logger *zap.Logger) UsuarioService {
	return &usuarioService{repo: repo, logger: logger}
}

func (s *usuarioService) Registrar(ctx context.Context, req *dto.RegistroRequest) (*model.Usuario, error) {
	_, err := s.repo.Usuario.GetByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrEmailRegistrado
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("verificar email en registro", zap.Error(err))
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("generar hash de contraseña", zap.Error(err))
		return nil, err
	}

	rol := req.Rol
	if rol == "" {
		rol = model.RolEstudiante
	}

	usuario := &model.Usuario{
		Nombre:           req.Nombre,
		Apellido:         req.Apellido,
		Email:            req.Email,
		PasswordHash:     string(hash),
		CodigoEstudiante: req.CodigoEstudiante,
		CarreraID:        req.CarreraID,
		CicloActual:      req.CicloActual,
		Rol:              rol,
	}

	if err := s.repo.Usuario.Create(ctx, usuario); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// registro concurrente con el mismo email
			return nil, ErrEmailRegistrado
		}
		s.logger.Error("crear usuario", zap.Error(err))
		return nil, err
	}

	return usuario, nil
}
