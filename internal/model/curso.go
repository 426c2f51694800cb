package model

import "time"

// Curso oferta del catálogo de cursos — tabla cursos.
// Inmutable desde el flujo de proyecciones: solo el módulo de
// administración del catálogo escribe en esta tabla.
type Curso struct {
	ID                  int       `gorm:"primaryKey"                             json:"id"`
	CodigoCurso         string    `gorm:"type:varchar(20);not null;uniqueIndex"  json:"codigoCurso"`
	Nombre              string    `gorm:"type:varchar(150);not null"             json:"nombre"`
	Descripcion         string    `gorm:"type:text"                              json:"descripcion"`
	Creditos            int       `json:"creditos"`
	Ciclo               string    `gorm:"type:varchar(20);not null"              json:"ciclo"`
	CarreraID           *int      `json:"carreraId"`
	AreaConocimiento    string    `gorm:"type:varchar(150)"                      json:"areaConocimiento"`
	Modalidad           string    `gorm:"type:varchar(50)"                       json:"modalidad"`
	Sede                string    `gorm:"type:varchar(100)"                      json:"sede"`
	Turno               string    `gorm:"type:varchar(50)"                       json:"turno"`
	VacantesTotales     int       `json:"vacantesTotales"`
	VacantesDisponibles int       `json:"vacantesDisponibles"`
	DocenteID           *int      `json:"docenteId"`
	HorarioDias         string    `gorm:"type:varchar(50)"                       json:"horarioDias"` // ej. "LUN-MIE"
	HoraInicio          string    `gorm:"type:time"                              json:"horaInicio"`  // "HH:MM"
	HoraFin             string    `gorm:"type:time"                              json:"horaFin"`
	Aula                string    `gorm:"type:varchar(50)"                       json:"aula"`
	EnlaceVirtual       string    `gorm:"type:varchar(255)"                      json:"enlaceVirtual"`
	Activo              bool      `gorm:"not null;default:true"                  json:"activo"`
	FechaCreacion       time.Time `gorm:"autoCreateTime"                         json:"fechaCreacion"`
}

// TableName nombre de la tabla
func (Curso) TableName() string { return "cursos" }
