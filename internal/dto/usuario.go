package dto

// RegistroRequest solicitud de registro de cuenta
type RegistroRequest struct {
	Nombre           string `json:"nombre"   binding:"required,min=2,max=100"`
	Apellido         string `json:"apellido"`
	Email            string `json:"email"    binding:"required,email"`
	Password         string `json:"password" binding:"required,min=8,max=72"`
	CodigoEstudiante string `json:"codigoEstudiante"`
	CarreraID        *int   `json:"carreraId"`
	CicloActual      string `json:"cicloActual"`
	Rol              string `json:"rol"`
}
