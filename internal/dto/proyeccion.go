package dto

// ProyeccionRequest solicitud de reemplazo de proyección.
// CicloProyectado acepta formato libre ("3", "ciclo 3", "Ciclo_03");
// el servicio lo canonicaliza o rechaza. La lista de códigos puede ser
// vacía: una proyección sin cursos es válida.
type ProyeccionRequest struct {
	CicloProyectado string   `json:"cicloProyectado"`
	CodigosCursos   []string `json:"codigosCursos"`
}
