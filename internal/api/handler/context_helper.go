package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/StefanoMT20/daw2/pkg/response"
)

// MustGetEmail extrae el email autenticado del contexto de Gin.
// Si el middleware JWT no lo inyectó, escribe 401 y devuelve false;
// el llamador debe hacer return inmediato.
func MustGetEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get("email")
	if !exists {
		response.Unauthorized(c, 10002, "no autenticado")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "no autenticado")
		return "", false
	}
	return s, true
}

// MustGetTokenInfo extrae el JTI y la expiración del token actual
func MustGetTokenInfo(c *gin.Context) (jti string, expiresAt time.Time, ok bool) {
	v, exists := c.Get("jti")
	if !exists {
		response.Unauthorized(c, 10002, "no autenticado")
		return "", time.Time{}, false
	}
	jti, okJTI := v.(string)

	e, exists := c.Get("token_exp")
	if !exists || !okJTI {
		response.Unauthorized(c, 10002, "no autenticado")
		return "", time.Time{}, false
	}
	expiresAt, okExp := e.(time.Time)
	if !okExp {
		response.Unauthorized(c, 10002, "no autenticado")
		return "", time.Time{}, false
	}
	return jti, expiresAt, true
}
