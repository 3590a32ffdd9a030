package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/acp-backend-go/internal/service"
	"github.com/jengzang/acp-backend-go/pkg/response"
)

// TrainHandler handles HTTP requests for per-train breakdowns.
type TrainHandler struct {
	trainService *service.TrainService
}

// NewTrainHandler creates a new train handler.
func NewTrainHandler(trainService *service.TrainService) *TrainHandler {
	return &TrainHandler{trainService: trainService}
}

// Incidents handles POST /train-incidents/:cache_key?limit=.
func (h *TrainHandler) Incidents(c *gin.Context) {
	filters, ok := bindFilters(c)
	if !ok {
		return
	}
	limit, ok := parseLimit(c, "25")
	if !ok {
		return
	}
	result, err := h.trainService.Incidents(c.Param("cache_key"), filters, limit)
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, result)
}

// List handles POST /train-list/:cache_key?limit=.
func (h *TrainHandler) List(c *gin.Context) {
	filters, ok := bindFilters(c)
	if !ok {
		return
	}
	limit, ok := parseLimit(c, "25")
	if !ok {
		return
	}
	result, err := h.trainService.List(c.Param("cache_key"), filters, limit)
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, result)
}

// Analytics handles POST /train-analytics/:cache_key?train_no=&limit=.
func (h *TrainHandler) Analytics(c *gin.Context) {
	filters, ok := bindFilters(c)
	if !ok {
		return
	}
	limit, ok := parseLimit(c, "10")
	if !ok {
		return
	}
	result, err := h.trainService.Analytics(c.Param("cache_key"), filters, c.Query("train_no"), limit)
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, result)
}

// Timeline handles POST /train-timeline/:cache_key?train_no=&granularity=.
func (h *TrainHandler) Timeline(c *gin.Context) {
	filters, ok := bindFilters(c)
	if !ok {
		return
	}
	granularity := c.DefaultQuery("granularity", "monthly")
	result, err := h.trainService.Timeline(c.Param("cache_key"), filters, c.Query("train_no"), granularity)
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, result)
}

// Search handles GET /train-search/:cache_key?query=.
func (h *TrainHandler) Search(c *gin.Context) {
	result, err := h.trainService.Search(c.Param("cache_key"), c.Query("query"))
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, result)
}

func parseLimit(c *gin.Context, def string) (int, bool) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", def))
	if err != nil {
		response.BadRequest(c, "Invalid limit parameter")
		return 0, false
	}
	return limit, true
}
