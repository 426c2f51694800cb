package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/StefanoMT20/daw2/internal/repository"
)

// ── Errores del módulo de exportación ──

var ErrExportSinDemanda = errors.New("ningún estudiante proyectó cursos en ese ciclo")

// ExportService reporte de demanda proyectada.
// Genera un libro Excel con una fila por curso y la cantidad de
// proyecciones que lo incluyen para el ciclo indicado. El buffer se
// devuelve al handler, que arma las cabeceras de descarga.
type ExportService interface {
	DemandaProyectada(ctx context.Context, rawCiclo string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService crea una instancia de ExportService
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) DemandaProyectada(ctx context.Context, rawCiclo string) (*bytes.Buffer, string, error) {
	ciclo, err := NormalizarCiclo(rawCiclo)
	if err != nil {
		return nil, "", err
	}

	filas, err := s.repo.Proyeccion.DemandaPorCiclo(ctx, ciclo)
	if err != nil {
		s.logger.Error("consultar demanda proyectada", zap.String("ciclo", ciclo), zap.Error(err))
		return nil, "", err
	}
	if len(filas) == 0 {
		return nil, "", ErrExportSinDemanda
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Demanda"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheet, "A", "A", 14)
	f.SetColWidth(sheet, "B", "B", 40)
	f.SetColWidth(sheet, "C", "D", 12)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DCE6F1"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, "", err
	}

	f.SetCellValue(sheet, "A1", "Código")
	f.SetCellValue(sheet, "B1", "Curso")
	f.SetCellValue(sheet, "C1", "Créditos")
	f.SetCellValue(sheet, "D1", "Demanda")
	f.SetCellStyle(sheet, "A1", "D1", headerStyle)

	for i, fila := range filas {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), fila.CodigoCurso)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), fila.Nombre)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), fila.Creditos)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), fila.Cantidad)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("generar archivo Excel", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("demanda_%s.xlsx", ciclo)
	return buf, filename, nil
}
