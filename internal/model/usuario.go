package model

import "time"

// Roles de usuario
const (
	RolEstudiante    = "ESTUDIANTE"
	RolAdministrador = "ADMINISTRADOR"
)

// Usuario cuenta de estudiante o administrador — tabla usuarios
type Usuario struct {
	ID                 int       `gorm:"primaryKey"                                  json:"id"`
	CodigoEstudiante   string    `gorm:"type:varchar(20)"                            json:"codigoEstudiante"`
	Email              string    `gorm:"type:varchar(255);not null;uniqueIndex"      json:"email"`
	PasswordHash       string    `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	Nombre             string    `gorm:"type:varchar(100);not null"                  json:"nombre"`
	Apellido           string    `gorm:"type:varchar(100)"                           json:"apellido"`
	CarreraID          *int      `json:"carreraId"`
	CicloActual        string    `gorm:"type:varchar(20)"                            json:"cicloActual"`
	Rol                string    `gorm:"type:varchar(20);not null;default:'ESTUDIANTE'" json:"rol"`
	FechaCreacion      time.Time `gorm:"autoCreateTime"                              json:"fechaCreacion"`
	FechaActualizacion time.Time `gorm:"autoUpdateTime"                              json:"fechaActualizacion"`
}

// TableName nombre de la tabla
func (Usuario) TableName() string { return "usuarios" }
