package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/StefanoMT20/daw2/config"
	"github.com/StefanoMT20/daw2/internal/api/handler"
	"github.com/StefanoMT20/daw2/internal/api/middleware"
	"github.com/StefanoMT20/daw2/internal/model"
	"github.com/StefanoMT20/daw2/pkg/jwt"
	"github.com/StefanoMT20/daw2/pkg/redis"
)

// Setup registra los middlewares globales y todas las rutas de la API.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Rutas públicas
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/usuario", h.Usuario.Registrar)

	// Rutas autenticadas
	auth := api.Group("")
	auth.Use(middleware.JWTAuth(jwtMgr, rdb))
	{
		auth.GET("/auth/me", h.Auth.Me)
		auth.POST("/auth/logout", h.Auth.Logout)

		auth.GET("/courses", h.Curso.List)
		auth.GET("/courses/:id", h.Curso.Get)

		auth.GET("/carreras", h.Carrera.List)
		auth.GET("/carreras/:id", h.Carrera.Get)

		auth.GET("/teachers", h.Docente.List)
		auth.GET("/teachers/:id", h.Docente.Get)

		student := auth.Group("/student")
		{
			student.GET("/projections", h.Proyeccion.Get)
			student.POST("/projections", h.Proyeccion.Replace)
			student.GET("/projections/calendar", h.Proyeccion.Calendario)
		}

		admin := auth.Group("")
		admin.Use(middleware.RoleAuth(model.RolAdministrador))
		{
			admin.POST("/courses", h.Curso.Create)
			admin.PUT("/courses/:id", h.Curso.Update)
			admin.DELETE("/courses/:id", h.Curso.Delete)

			admin.GET("/admin/projections/export", h.Export.DemandaProyectada)
		}
	}

	return r
}
