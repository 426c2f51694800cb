package model

import "time"

// Carrera carrera profesional — tabla carreras
type Carrera struct {
	ID             int       `gorm:"primaryKey"                  json:"id"`
	CodigoCarrera  string    `gorm:"type:varchar(20);not null"   json:"codigoCarrera"`
	Nombre         string    `gorm:"type:varchar(150);not null"  json:"nombre"`
	Descripcion    string    `gorm:"type:text"                   json:"descripcion"`
	DuracionCiclos int       `gorm:"not null;default:10"         json:"duracionCiclos"`
	Activa         bool      `gorm:"not null;default:true"       json:"activa"`
	FechaCreacion  time.Time `gorm:"autoCreateTime"              json:"fechaCreacion"`
}

// TableName nombre de la tabla
func (Carrera) TableName() string { return "carreras" }
