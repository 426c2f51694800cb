package model

import "time"

// Docente profesor del catálogo — tabla docentes
type Docente struct {
	ID                 int       `gorm:"primaryKey"                 json:"id"`
	CodigoDocente      string    `gorm:"type:varchar(20);not null"  json:"codigoDocente"`
	Nombre             string    `gorm:"type:varchar(100);not null" json:"nombre"`
	Apellido           string    `gorm:"type:varchar(100);not null" json:"apellido"`
	Email              string    `gorm:"type:varchar(255)"          json:"email"`
	Especialidad       string    `gorm:"type:varchar(150)"          json:"especialidad"`
	Departamento       string    `gorm:"type:varchar(150)"          json:"departamento"`
	UbicacionOficina   string    `gorm:"type:varchar(100)"          json:"ubicacionOficina"`
	HorarioAtencion    string    `gorm:"type:varchar(150)"          json:"horarioAtencion"`
	AreasInvestigacion string    `gorm:"type:text"                  json:"areasInvestigacion"`
	GradoAcademico     string    `gorm:"type:varchar(100)"          json:"gradoAcademico"`
	Activo             bool      `gorm:"not null;default:true"      json:"activo"`
	FechaCreacion      time.Time `gorm:"autoCreateTime"             json:"fechaCreacion"`
}

// TableName nombre de la tabla
func (Docente) TableName() string { return "docentes" }
