package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/acp-backend-go/internal/models"
	"github.com/jengzang/acp-backend-go/internal/service"
	"github.com/jengzang/acp-backend-go/pkg/response"
)

// TableHandler handles HTTP requests for paginated table data.
type TableHandler struct {
	tableService *service.TableService
}

// NewTableHandler creates a new table handler.
func NewTableHandler(tableService *service.TableService) *TableHandler {
	return &TableHandler{tableService: tableService}
}

// Table handles POST /table/:cache_key.
func (h *TableHandler) Table(c *gin.Context) {
	req := models.TableRequest{Page: 1, PageSize: 50}
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(c, "Invalid table request payload")
		return
	}

	page, err := h.tableService.Page(c.Param("cache_key"), req)
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, page)
}
