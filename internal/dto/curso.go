package dto

// CursoRequest solicitud de creación/actualización de curso (admin)
type CursoRequest struct {
	CodigoCurso         string `json:"codigoCurso" binding:"required"`
	Nombre              string `json:"nombre"      binding:"required"`
	Descripcion         string `json:"descripcion"`
	Creditos            int    `json:"creditos"`
	Ciclo               string `json:"ciclo"       binding:"required"`
	CarreraID           *int   `json:"carreraId"`
	AreaConocimiento    string `json:"areaConocimiento"`
	Modalidad           string `json:"modalidad"`
	Sede                string `json:"sede"`
	Turno               string `json:"turno"`
	VacantesTotales     int    `json:"vacantesTotales"`
	VacantesDisponibles int    `json:"vacantesDisponibles"`
	DocenteID           *int   `json:"docenteId"`
	HorarioDias         string `json:"horarioDias"`
	HoraInicio          string `json:"horaInicio"`
	HoraFin             string `json:"horaFin"`
	Aula                string `json:"aula"`
	EnlaceVirtual       string `json:"enlaceVirtual"`
	Activo              *bool  `json:"activo"`
}
