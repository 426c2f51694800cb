package service

import (
	"context"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/StefanoMT20/daw2/internal/dto"
	"github.com/StefanoMT20/daw2/internal/model"
)

func TestDemandaProyectada(t *testing.T) {
	store := newMockStore()
	repo := newTestRepository(store)
	proySvc := NewProyeccionService(repo, zap.NewNop())
	svc := NewExportService(repo, zap.NewNop())

	sembrarCursos(store)
	store.agregarUsuario(model.Usuario{ID: 1, Email: "ana@uni.edu.pe", Rol: model.RolEstudiante})
	store.agregarUsuario(model.Usuario{ID: 2, Email: "luis@uni.edu.pe", Rol: model.RolEstudiante})

	ctx := context.Background()
	if _, err := proySvc.Replace(ctx, "ana@uni.edu.pe", &dto.ProyeccionRequest{
		CicloProyectado: "3",
		CodigosCursos:   []string{"MAT101", "FIS202"},
	}); err != nil {
		t.Fatalf("Replace devolvió error: %v", err)
	}
	if _, err := proySvc.Replace(ctx, "luis@uni.edu.pe", &dto.ProyeccionRequest{
		CicloProyectado: "Ciclo_03",
		CodigosCursos:   []string{"MAT101"},
	}); err != nil {
		t.Fatalf("Replace devolvió error: %v", err)
	}

	buf, filename, err := svc.DemandaProyectada(ctx, "3")
	if err != nil {
		t.Fatalf("DemandaProyectada devolvió error: %v", err)
	}
	if filename != "demanda_Ciclo_03.xlsx" {
		t.Errorf("filename = %q, se esperaba demanda_Ciclo_03.xlsx", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("abrir el libro generado: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Demanda")
	if err != nil {
		t.Fatalf("leer la hoja Demanda: %v", err)
	}
	// cabecera + dos cursos, ordenados por demanda descendente
	if len(rows) != 3 {
		t.Fatalf("filas = %d, se esperaban 3", len(rows))
	}
	if rows[1][0] != "MAT101" || rows[1][3] != "2" {
		t.Errorf("fila 2 = %v, se esperaba MAT101 con demanda 2", rows[1])
	}
	if rows[2][0] != "FIS202" || rows[2][3] != "1" {
		t.Errorf("fila 3 = %v, se esperaba FIS202 con demanda 1", rows[2])
	}
}

func TestDemandaProyectadaSinFilas(t *testing.T) {
	svc := NewExportService(newTestRepository(newMockStore()), zap.NewNop())

	_, _, err := svc.DemandaProyectada(context.Background(), "9")
	if !errors.Is(err, ErrExportSinDemanda) {
		t.Errorf("DemandaProyectada devolvió %v, se esperaba ErrExportSinDemanda", err)
	}
}

func TestDemandaProyectadaCicloInvalido(t *testing.T) {
	store := newMockStore()
	svc := NewExportService(newTestRepository(store), zap.NewNop())

	_, _, err := svc.DemandaProyectada(context.Background(), "veinte")
	if !errors.Is(err, ErrCicloFormatoInvalido) {
		t.Errorf("DemandaProyectada devolvió %v, se esperaba ErrCicloFormatoInvalido", err)
	}
}
