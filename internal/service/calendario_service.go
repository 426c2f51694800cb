package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/StefanoMT20/daw2/internal/repository"
)

// ── Calendario de la proyección ──────────────────────────────
//
// Serializa el horario semanal de los cursos proyectados como
// iCalendar (RFC 5545): un VEVENT por (curso, día) con RRULE semanal.
// Los cursos sin horario completo se omiten del calendario.
// ─────────────────────────────────────────────────────────────

var ErrCalendarioSinHorarios = errors.New("la proyección no tiene cursos con horario")

const limaTimezone = "America/Lima"

// díasSemana abreviatura del catálogo → día ICS y time.Weekday
var diasSemana = map[string]struct {
	ics     string
	weekday time.Weekday
}{
	"LUN": {"MO", time.Monday},
	"MAR": {"TU", time.Tuesday},
	"MIE": {"WE", time.Wednesday},
	"MIÉ": {"WE", time.Wednesday},
	"JUE": {"TH", time.Thursday},
	"VIE": {"FR", time.Friday},
	"SAB": {"SA", time.Saturday},
	"SÁB": {"SA", time.Saturday},
	"DOM": {"SU", time.Sunday},
}

// CalendarioService exporta la proyección del estudiante como ICS
type CalendarioService interface {
	ProyeccionICS(ctx context.Context, email string) (string, string, error)
}

type calendarioService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCalendarioService crea una instancia de CalendarioService
func NewCalendarioService(repo *repository.Repository, logger *zap.Logger) CalendarioService {
	return &calendarioService{repo: repo, logger: logger}
}

// ProyeccionICS devuelve (contenido ICS, nombre de archivo sugerido, error)
func (s *calendarioService) ProyeccionICS(ctx context.Context, email string) (string, string, error) {
	usuario, err := s.repo.Usuario.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", ErrUsuarioNoEncontrado
		}
		s.logger.Error("resolver usuario autenticado", zap.String("email", email), zap.Error(err))
		return "", "", err
	}

	proyeccion, err := s.repo.Proyeccion.GetByUsuario(ctx, usuario.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", ErrProyeccionNoEncontrada
		}
		s.logger.Error("consultar proyección", zap.Int("usuario_id", usuario.ID), zap.Error(err))
		return "", "", err
	}

	loc, err := time.LoadLocation(limaTimezone)
	if err != nil {
		loc = time.UTC
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//samebanner//proyeccion//ES")

	eventos := 0
	now := time.Now().In(loc)

	for _, pc := range proyeccion.ProyeccionCursos {
		if pc.Curso == nil {
			continue
		}
		curso := pc.Curso

		inicio, errIni := parseHora(curso.HoraInicio)
		fin, errFin := parseHora(curso.HoraFin)
		if curso.HorarioDias == "" || errIni != nil || errFin != nil {
			continue
		}

		for _, dia := range splitDias(curso.HorarioDias) {
			info, ok := diasSemana[dia]
			if !ok {
				continue
			}

			fecha := proximoDia(now, info.weekday)
			dtStart := time.Date(fecha.Year(), fecha.Month(), fecha.Day(),
				inicio.Hour(), inicio.Minute(), 0, 0, loc)
			dtEnd := time.Date(fecha.Year(), fecha.Month(), fecha.Day(),
				fin.Hour(), fin.Minute(), 0, 0, loc)

			uid := fmt.Sprintf("%s-%s-%d@samebanner", curso.CodigoCurso, dia, proyeccion.ID)
			ev := cal.AddEvent(uid)
			ev.SetDtStampTime(now)
			ev.SetStartAt(dtStart)
			ev.SetEndAt(dtEnd)
			ev.SetSummary(fmt.Sprintf("%s — %s", curso.CodigoCurso, curso.Nombre))
			ev.AddRrule("FREQ=WEEKLY;BYDAY=" + info.ics)
			if curso.Aula != "" {
				ev.SetLocation(curso.Aula)
			} else if curso.EnlaceVirtual != "" {
				ev.SetLocation(curso.EnlaceVirtual)
			}
			if curso.Modalidad != "" {
				ev.SetDescription("Modalidad: " + curso.Modalidad)
			}

			eventos++
		}
	}

	if eventos == 0 {
		return "", "", ErrCalendarioSinHorarios
	}

	filename := fmt.Sprintf("proyeccion_%s.ics", proyeccion.CicloProyectado)
	return cal.Serialize(), filename, nil
}

// splitDias separa "LUN-MIE" o "LUN,MIE" en abreviaturas individuales
func splitDias(horarioDias string) []string {
	f := func(r rune) bool { return r == '-' || r == ',' || r == ' ' }
	partes := strings.FieldsFunc(strings.ToUpper(horarioDias), f)
	return partes
}

// parseHora acepta "HH:MM" y "HH:MM:SS"
func parseHora(s string) (time.Time, error) {
	if t, err := time.Parse("15:04:05", s); err == nil {
		return t, nil
	}
	return time.Parse("15:04", s)
}

// proximoDia primera fecha >= hoy que cae en el día de semana indicado
func proximoDia(desde time.Time, dia time.Weekday) time.Time {
	delta := (int(dia) - int(desde.Weekday()) + 7) % 7
	return desde.AddDate(0, 0, delta)
}
