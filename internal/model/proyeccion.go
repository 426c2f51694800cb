package model

import "time"

// Proyeccion lista de cursos propuesta por un estudiante para un ciclo
// académico — tabla proyecciones. Existe a lo más una proyección por
// usuario (índice único sobre usuario_id); reemplazarla destruye la
// anterior junto con todos sus cursos.
type Proyeccion struct {
	ID                 int               `gorm:"primaryKey"                      json:"id"`
	UsuarioID          int               `gorm:"not null;uniqueIndex"            json:"usuarioId"`
	CicloProyectado    string            `gorm:"type:varchar(20);not null"       json:"cicloProyectado"`
	ProyeccionCursos   []ProyeccionCurso `gorm:"foreignKey:ProyeccionID"         json:"proyeccionCursos"`
	FechaCreacion      time.Time         `gorm:"autoCreateTime"                  json:"fechaCreacion"`
	FechaActualizacion time.Time         `gorm:"autoUpdateTime"                  json:"fechaActualizacion"`
}

// TableName nombre de la tabla
func (Proyeccion) TableName() string { return "proyecciones" }

// ProyeccionCurso un curso seleccionado dentro de una proyección —
// tabla proyeccion_cursos. La referencia al padre se serializa solo
// como clave foránea, nunca como objeto anidado.
type ProyeccionCurso struct {
	ID            int       `gorm:"primaryKey"     json:"id"`
	ProyeccionID  int       `gorm:"not null;index" json:"-"`
	CursoID       int       `gorm:"not null"       json:"-"`
	Curso         *Curso    `gorm:"foreignKey:CursoID" json:"curso,omitempty"`
	FechaAgregado time.Time `gorm:"autoCreateTime" json:"fechaAgregado"`
}

// TableName nombre de la tabla
func (ProyeccionCurso) TableName() string { return "proyeccion_cursos" }
