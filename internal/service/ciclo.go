package service

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ── Normalizador de ciclo académico ─────────────────────────
//
// Canonicaliza la entrada libre del cliente ("3", "ciclo 3", "03",
// "Ciclo_03") al token exacto Ciclo_NN con NN entre 01 y 10. Así las
// consultas por carrera y ciclo siguen siendo de coincidencia exacta.
// ─────────────────────────────────────────────────────────────

var (
	ErrCicloVacio           = errors.New("el ciclo no puede estar vacío")
	ErrCicloFormatoInvalido = errors.New("formato de ciclo inválido")
	ErrCicloFueraDeRango    = errors.New("número de ciclo inválido: debe estar entre 1 y 10")
)

var (
	cicloCanonico = regexp.MustCompile(`^Ciclo_\d{2}$`)
	noDigitos     = regexp.MustCompile(`\D+`)
)

// NormalizarCiclo valida y canonicaliza un identificador de ciclo.
// Devuelve siempre uno de los diez tokens Ciclo_01 … Ciclo_10.
func NormalizarCiclo(raw string) (string, error) {
	ciclo := strings.TrimSpace(raw)
	if ciclo == "" {
		return "", ErrCicloVacio
	}

	// Forma canónica exacta: se devuelve sin cambios si está en rango
	if cicloCanonico.MatchString(ciclo) {
		numero, _ := strconv.Atoi(ciclo[len("Ciclo_"):])
		if numero >= 1 && numero <= 10 {
			return ciclo, nil
		}
		return "", ErrCicloFueraDeRango
	}

	// Entrada libre: se descartan los caracteres no numéricos
	soloDigitos := noDigitos.ReplaceAllString(ciclo, "")
	numero, err := strconv.Atoi(soloDigitos)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrCicloFormatoInvalido, raw)
	}
	if numero < 1 || numero > 10 {
		return "", ErrCicloFueraDeRango
	}

	return fmt.Sprintf("Ciclo_%02d", numero), nil
}
