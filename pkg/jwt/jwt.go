package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/StefanoMT20/daw2/config"
)

var (
	ErrTokenExpired = errors.New("token expirado")
	ErrTokenInvalid = errors.New("token inválido")
)

// Claims declaraciones personalizadas del JWT.
// El sujeto (sub) es el email del usuario; el backend resuelve el id
// numérico contra la tabla usuarios en cada petición autenticada.
type Claims struct {
	UsuarioID int    `json:"usuario_id"`
	Nombre    string `json:"nombre"`
	Rol       string `json:"rol"`
	jwtv5.RegisteredClaims
}

// Manager gestor de tokens JWT (firma HS256)
type Manager struct {
	secret   []byte
	tokenTTL time.Duration
}

// NewManager crea el gestor de JWT
func NewManager(cfg *config.AuthConfig) *Manager {
	return &Manager{
		secret:   []byte(cfg.JWTSecret),
		tokenTTL: cfg.TokenTTL,
	}
}

// TokenTTL devuelve la duración configurada de los tokens
func (m *Manager) TokenTTL() time.Duration {
	return m.tokenTTL
}

// GenerateToken genera un token de acceso para el usuario
func (m *Manager) GenerateToken(usuarioID int, email, nombre, rol string) (string, error) {
	now := time.Now()
	claims := Claims{
		UsuarioID: usuarioID,
		Nombre:    nombre,
		Rol:       rol,
		RegisteredClaims: jwtv5.RegisteredClaims{
			Subject:   email,
			ID:        uuid.New().String(),
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(m.tokenTTL)),
			Issuer:    "samebanner",
		},
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseToken valida el token y devuelve sus claims
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
