package handler

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/acp-backend-go/internal/service"
	"github.com/jengzang/acp-backend-go/pkg/response"
)

// UploadHandler handles HTTP requests for dataset ingestion.
type UploadHandler struct {
	uploadService *service.UploadService
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Upload handles POST /upload. The multipart field "files" carries the
// register CSVs in upload order.
func (h *UploadHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "Invalid multipart form")
		return
	}
	parts := form.File["files"]
	if len(parts) == 0 {
		response.BadRequest(c, "No files uploaded")
		return
	}

	files := make([]service.UploadedFile, 0, len(parts))
	for _, p := range parts {
		f, err := p.Open()
		if err != nil {
			response.InternalError(c, fmt.Sprintf("Error processing files: %v", err))
			return
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			response.InternalError(c, fmt.Sprintf("Error processing files: %v", err))
			return
		}
		files = append(files, service.UploadedFile{Name: p.Filename, Content: content})
	}

	result, err := h.uploadService.Process(files)
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, result)
}
