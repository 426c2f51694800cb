package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/StefanoMT20/daw2/config"
	"github.com/StefanoMT20/daw2/internal/api/handler"
	"github.com/StefanoMT20/daw2/internal/api/router"
	"github.com/StefanoMT20/daw2/internal/repository"
	"github.com/StefanoMT20/daw2/internal/service"
	"github.com/StefanoMT20/daw2/pkg/database"
	"github.com/StefanoMT20/daw2/pkg/jwt"
	"github.com/StefanoMT20/daw2/pkg/logger"
	"github.com/StefanoMT20/daw2/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "ruta del archivo de configuración")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("cargar configuración: %v", err)
	}

	zapLogger, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		log.Fatalf("inicializar logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, zapLogger)
	if err != nil {
		zapLogger.Fatal("conectar a la base de datos", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("obtener conexión sql", zap.Error(err))
	}
	defer sqlDB.Close()

	if err := database.RunMigrations(sqlDB, zapLogger); err != nil {
		zapLogger.Fatal("ejecutar migraciones", zap.Error(err))
	}

	// Redis es opcional: sin él, el logout no invalida tokens antes de
	// su expiración pero el resto de la API funciona con normalidad.
	rdb, err := redis.NewClient(&cfg.Redis, zapLogger)
	if err != nil {
		zapLogger.Warn("redis no disponible, lista negra de tokens deshabilitada", zap.Error(err))
		rdb = nil
	} else {
		defer rdb.Close()
	}

	jwtMgr := jwt.NewManager(&cfg.Auth)
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, zapLogger)
	h := handler.NewHandler(svc)

	engine := router.Setup(cfg, h, jwtMgr, rdb, zapLogger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zapLogger.Info("servidor iniciado", zap.Int("puerto", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("servidor http", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("apagando servidor...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("apagado forzado", zap.Error(err))
	}
	zapLogger.Info("servidor detenido")
}
