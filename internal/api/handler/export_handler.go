package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/StefanoMT20/daw2/internal/service"
	"github.com/StefanoMT20/daw2/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler módulo de reportes de demanda
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler crea un ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// DemandaProyectada descarga el reporte de demanda de un ciclo (admin)
// GET /api/admin/projections/export?cycle=Ciclo_03
func (h *ExportHandler) DemandaProyectada(c *gin.Context) {
	ciclo := c.Query("cycle")

	buf, filename, err := h.exportSvc.DemandaProyectada(c.Request.Context(), ciclo)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCicloVacio),
			errors.Is(err, service.ErrCicloFormatoInvalido),
			errors.Is(err, service.ErrCicloFueraDeRango):
			response.BadRequest(c, 10001, err.Error())
		case errors.Is(err, service.ErrExportSinDemanda):
			response.NotFound(c, 10404, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
