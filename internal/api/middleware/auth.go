package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/StefanoMT20/daw2/pkg/jwt"
	"github.com/StefanoMT20/daw2/pkg/redis"
	"github.com/StefanoMT20/daw2/pkg/response"
)

// JWTAuth middleware de autenticación.
// Extrae y valida el token de Authorization: Bearer <token> y verifica
// que su JTI no esté en la lista negra (rdb puede ser nil si Redis no
// está disponible; en ese caso solo se valida la firma y expiración).
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "falta la cabecera de autenticación")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "cabecera de autenticación inválida")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "token inválido o expirado")
			c.Abort()
			return
		}

		if rdb != nil {
			blacklisted, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && blacklisted {
				response.Unauthorized(c, 10002, "sesión cerrada")
				c.Abort()
				return
			}
		}

		c.Set("usuario_id", claims.UsuarioID)
		c.Set("email", claims.Subject)
		c.Set("rol", claims.Rol)
		c.Set("jti", claims.ID)
		c.Set("token_exp", claims.ExpiresAt.Time)

		c.Next()
	}
}

// RoleAuth middleware de autorización por rol.
// La comparación no distingue mayúsculas, igual que el cliente.
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rol, exists := c.Get("rol")
		if !exists {
			response.Unauthorized(c, 10002, "no autenticado")
			c.Abort()
			return
		}

		userRol := strings.ToUpper(rol.(string))
		for _, r := range allowedRoles {
			if userRol == strings.ToUpper(r) {
				c.Next()
				return
			}
		}

		response.Forbidden(c, 10003, "sin permiso de acceso")
		c.Abort()
	}
}
