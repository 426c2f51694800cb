package service

import (
	"errors"
	"testing"
)

func TestNormalizarCiclo(t *testing.T) {
	casos := []struct {
		nombre  string
		entrada string
		salida  string
	}{
		{"numero simple", "3", "Ciclo_03"},
		{"numero con cero", "03", "Ciclo_03"},
		{"texto con numero", "ciclo 3", "Ciclo_03"},
		{"forma canonica", "Ciclo_03", "Ciclo_03"},
		{"canonica limite superior", "Ciclo_10", "Ciclo_10"},
		{"espacios alrededor", "  7  ", "Ciclo_07"},
		{"decimo ciclo", "10", "Ciclo_10"},
		{"primer ciclo", "1", "Ciclo_01"},
		{"minuscula no canonica", "ciclo_03", "Ciclo_03"},
		{"signo descartado", "-1", "Ciclo_01"},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			got, err := NormalizarCiclo(c.entrada)
			if err != nil {
				t.Fatalf("NormalizarCiclo(%q) devolvió error inesperado: %v", c.entrada, err)
			}
			if got != c.salida {
				t.Errorf("NormalizarCiclo(%q) = %q, se esperaba %q", c.entrada, got, c.salida)
			}
		})
	}
}

func TestNormalizarCicloErrores(t *testing.T) {
	casos := []struct {
		nombre  string
		entrada string
		err     error
	}{
		{"vacio", "", ErrCicloVacio},
		{"solo espacios", "   ", ErrCicloVacio},
		{"sin digitos", "ciclo", ErrCicloFormatoInvalido},
		{"cero", "0", ErrCicloFueraDeRango},
		{"once", "11", ErrCicloFueraDeRango},
		{"canonica fuera de rango", "Ciclo_99", ErrCicloFueraDeRango},
		{"canonica cero", "Ciclo_00", ErrCicloFueraDeRango},
		{"numero gigante", "999999999999999999999", ErrCicloFormatoInvalido},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			_, err := NormalizarCiclo(c.entrada)
			if err == nil {
				t.Fatalf("NormalizarCiclo(%q) no devolvió error", c.entrada)
			}
			if !errors.Is(err, c.err) {
				t.Errorf("NormalizarCiclo(%q) devolvió %v, se esperaba %v", c.entrada, err, c.err)
			}
		})
	}
}
