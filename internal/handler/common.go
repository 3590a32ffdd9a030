package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/acp-backend-go/internal/models"
	"github.com/jengzang/acp-backend-go/internal/service"
	"github.com/jengzang/acp-backend-go/internal/store"
	"github.com/jengzang/acp-backend-go/pkg/response"
)

// bindFilters reads the FilterRequest body. An empty body is the empty
// predicate; malformed JSON reports a bad request and returns ok=false.
func bindFilters(c *gin.Context) (models.FilterRequest, bool) {
	var req models.FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(c, "Invalid filter payload")
		return req, false
	}
	return req, true
}

// renderError maps service errors onto the response taxonomy: unknown keys
// are not found, rejected input is a bad request, anything else is a
// processing failure.
func renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		response.NotFound(c, "Data not found")
	case errors.Is(err, service.ErrTooManyFiles),
		errors.Is(err, service.ErrNotCSV),
		errors.Is(err, service.ErrUnsupportedFormat):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, err.Error())
	}
}
