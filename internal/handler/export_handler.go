package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/acp-backend-go/internal/service"
	"github.com/jengzang/acp-backend-go/pkg/response"
)

// exportFilename names the CSV download attachment.
const exportFilename = "alarm_chain_data.csv"

// ExportHandler handles HTTP requests for dataset export.
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new export handler.
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// Export handles POST /export-data/:cache_key?format=csv|json.
func (h *ExportHandler) Export(c *gin.Context) {
	filters, ok := bindFilters(c)
	if !ok {
		return
	}
	format, err := service.ValidateFormat(c.DefaultQuery("format", "csv"))
	if err != nil {
		renderError(c, err)
		return
	}

	key := c.Param("cache_key")
	switch format {
	case "csv":
		data, err := h.exportService.CSV(key, filters)
		if err != nil {
			renderError(c, err)
			return
		}
		c.Header("Content-Disposition", "attachment; filename="+exportFilename)
		c.Data(http.StatusOK, "text/csv", data)
	case "json":
		result, err := h.exportService.JSON(key, filters)
		if err != nil {
			renderError(c, err)
			return
		}
		response.Success(c, result)
	}
}
