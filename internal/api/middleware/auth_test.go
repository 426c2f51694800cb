package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/StefanoMT20/daw2/config"
	"github.com/StefanoMT20/daw2/internal/model"
	"github.com/StefanoMT20/daw2/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func nuevoManager(ttl time.Duration) *jwt.Manager {
	return jwt.NewManager(&config.AuthConfig{
		JWTSecret: "clave-de-prueba",
		TokenTTL:  ttl,
	})
}

func routerConAuth(jwtMgr *jwt.Manager) *gin.Engine {
	r := gin.New()
	r.GET("/protegido", JWTAuth(jwtMgr, nil), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"email": c.GetString("email"),
			"rol":   c.GetString("rol"),
		})
	})
	r.GET("/admin", JWTAuth(jwtMgr, nil), RoleAuth(model.RolAdministrador), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestJWTAuthTokenValido(t *testing.T) {
	jwtMgr := nuevoManager(time.Hour)
	r := routerConAuth(jwtMgr)

	token, err := jwtMgr.GenerateToken(1, "ana@uni.edu.pe", "Ana", model.RolEstudiante)
	if err != nil {
		t.Fatalf("generar token: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, se esperaba 200: %s", w.Code, w.Body.String())
	}
}

func TestJWTAuthRechazos(t *testing.T) {
	jwtMgr := nuevoManager(time.Hour)
	r := routerConAuth(jwtMgr)

	expirado := nuevoManager(-time.Minute)
	tokenExpirado, _ := expirado.GenerateToken(1, "ana@uni.edu.pe", "Ana", model.RolEstudiante)

	casos := []struct {
		nombre string
		header string
	}{
		{"sin cabecera", ""},
		{"esquema incorrecto", "Basic abc"},
		{"token basura", "Bearer no-es-un-jwt"},
		{"token expirado", "Bearer " + tokenExpirado},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
			if c.header != "" {
				req.Header.Set("Authorization", c.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, se esperaba 401", w.Code)
			}
		})
	}
}

func TestRoleAuth(t *testing.T) {
	jwtMgr := nuevoManager(time.Hour)
	r := routerConAuth(jwtMgr)

	tokenEstudiante, _ := jwtMgr.GenerateToken(1, "ana@uni.edu.pe", "Ana", model.RolEstudiante)
	tokenAdmin, _ := jwtMgr.GenerateToken(2, "admin@uni.edu.pe", "Admin", model.RolAdministrador)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+tokenEstudiante)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("estudiante en ruta admin: status = %d, se esperaba 403", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+tokenAdmin)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("administrador en ruta admin: status = %d, se esperaba 200", w.Code)
	}
}
