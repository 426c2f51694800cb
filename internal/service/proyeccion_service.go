package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/StefanoMT20/daw2/internal/dto"
	"github.com/StefanoMT20/daw2/internal/model"
	"github.com/StefanoMT20/daw2/internal/repository"
)

// ── Errores del módulo de proyecciones ──

var (
	ErrProyeccionNoEncontrada = errors.New("proyección no encontrada")
	ErrCursoNoEncontrado      = errors.New("curso no encontrado")
	ErrConflictoProyeccion    = errors.New("conflicto de datos al guardar la proyección")
)

// ProyeccionService operaciones sobre la proyección de cursos del
// estudiante. La identidad llega como email (sujeto del token ya
// verificado); el servicio la resuelve al id numérico del usuario.
type ProyeccionService interface {
	Get(ctx context.Context, email string) (*model.Proyeccion, error)
	Replace(ctx context.Context, email string, req *dto.ProyeccionRequest) (*model.Proyeccion, error)
}

type proyeccionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewProyeccionService crea una instancia de ProyeccionService
func NewProyeccionService(repo *repository.Repository, logger *zap.Logger) ProyeccionService {
	return &proyeccionService{repo: repo, logger: logger}
}

// resolverUsuario convierte el email autenticado al registro de usuario.
// Que no exista aquí es una falla del sistema (el token ya fue
// validado), no un error de entrada: se propaga como ErrUsuarioNoEncontrado
// y el handler responde 500.
func (s *proyeccionService) resolverUsuario(ctx context.Context, email string) (*model.Usuario, error) {
	usuario, err := s.repo.Usuario.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsuarioNoEncontrado
		}
		s.logger.Error("resolver usuario autenticado", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	return usuario, nil
}

// ────────────────────── Get ──────────────────────

func (s *proyeccionService) Get(ctx context.Context, email string) (*model.Proyeccion, error) {
	usuario, err := s.resolverUsuario(ctx, email)
	if err != nil {
		return nil, err
	}

	proyeccion, err := s.repo.Proyeccion.GetByUsuario(ctx, usuario.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProyeccionNoEncontrada
		}
		s.logger.Error("consultar proyección", zap.Int("usuario_id", usuario.ID), zap.Error(err))
		return nil, err
	}

	return proyeccion, nil
}

// ────────────────────── Replace ──────────────────────
//
// Reemplaza por completo la proyección del usuario:
//  1. canonicaliza el ciclo (sin mutación si se rechaza)
//  2. dentro de UNA transacción: elimina los cursos y la proyección
//     anterior, crea la nueva y enlaza cada código en orden de entrada
//  3. recarga el agregado ya confirmado
//
// Cualquier código que no resuelva aborta la transacción entera: el
// efecto visible de una llamada fallida es ningún cambio. Los códigos
// repetidos generan un curso por aparición; no se deduplica.

func (s *proyeccionService) Replace(ctx context.Context, email string, req *dto.ProyeccionRequest) (*model.Proyeccion, error) {
	ciclo, err := NormalizarCiclo(req.CicloProyectado)
	if err != nil {
		return nil, err
	}

	usuario, err := s.resolverUsuario(ctx, email)
	if err != nil {
		return nil, err
	}

	var nuevaID int
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		existente, err := tx.Proyeccion.GetByUsuario(ctx, usuario.ID)
		switch {
		case err == nil:
			if err := tx.Proyeccion.DeleteCursos(ctx, existente.ID); err != nil {
				return err
			}
			if err := tx.Proyeccion.Delete(ctx, existente); err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// primera proyección del usuario
		default:
			return err
		}

		nueva := &model.Proyeccion{
			UsuarioID:       usuario.ID,
			CicloProyectado: ciclo,
		}
		if err := tx.Proyeccion.Create(ctx, nueva); err != nil {
			return err
		}

		for _, codigo := range req.CodigosCursos {
			curso, err := tx.Curso.GetByCodigo(ctx, codigo)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: %s", ErrCursoNoEncontrado, codigo)
				}
				return err
			}
			pc := &model.ProyeccionCurso{
				ProyeccionID: nueva.ID,
				CursoID:      curso.ID,
			}
			if err := tx.Proyeccion.AddCurso(ctx, pc); err != nil {
				return err
			}
		}

		nuevaID = nueva.ID
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// reemplazo concurrente para el mismo usuario
			return nil, ErrConflictoProyeccion
		}
		if errors.Is(err, ErrCursoNoEncontrado) {
			return nil, err
		}
		s.logger.Error("reemplazar proyección",
			zap.Int("usuario_id", usuario.ID),
			zap.String("ciclo", ciclo),
			zap.Error(err),
		)
		return nil, err
	}

	// Se recarga lo confirmado, no los objetos en memoria de la transacción
	proyeccion, err := s.repo.Proyeccion.GetByID(ctx, nuevaID)
	if err != nil {
		s.logger.Error("recargar proyección creada", zap.Int("id", nuevaID), zap.Error(err))
		return nil, err
	}

	return proyeccion, nil
}
