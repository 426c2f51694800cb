package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/StefanoMT20/daw2/internal/dto"
	"github.com/StefanoMT20/daw2/internal/model"
	"github.com/StefanoMT20/daw2/internal/repository"
	"github.com/StefanoMT20/daw2/pkg/jwt"
	"github.com/StefanoMT20/daw2/pkg/redis"
)

// ── Errores del módulo de autenticación ──

var (
	ErrCredencialesInvalidas = errors.New("email o contraseña incorrectos")
	ErrUsuarioNoEncontrado   = errors.New("usuario no encontrado")
)

// AuthService autenticación y sesión
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Me(ctx context.Context, email string) (*model.Usuario, error)
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
}

type authService struct {
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService crea una instancia de AuthService
func NewAuthService(
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		jwtMgr: jwtMgr,
		rdb:    rdb,
		logger: logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := s.repo.Usuario.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredencialesInvalidas
		}
		s.logger.Error("consultar usuario en login", zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrCredencialesInvalidas
	}

	token, err := s.jwtMgr.GenerateToken(usuario.ID, usuario.Email, usuario.Nombre, usuario.Rol)
	if err != nil {
		s.logger.Error("generar token", zap.Error(err))
		return nil, err
	}

	return &dto.LoginResponse{
		Token:   token,
		Usuario: usuario,
	}, nil
}

func (s *authService) Me(ctx context.Context, email string) (*model.Usuario, error) {
	usuario, err := s.repo.Usuario.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsuarioNoEncontrado
		}
		s.logger.Error("consultar usuario actual", zap.Error(err))
		return nil, err
	}
	return usuario, nil
}

// Logout invalida el token agregando su JTI a la lista negra.
// Sin Redis la operación es un no-op: el token expira por TTL.
func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.rdb == nil {
		s.logger.Warn("logout sin Redis: el token expirará por TTL", zap.String("jti", jti))
		return nil
	}
	return s.rdb.BlacklistToken(ctx, jti, time.Until(expiresAt))
}
