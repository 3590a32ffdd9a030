package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jengzang/acp-backend-go/internal/service"
	"github.com/jengzang/acp-backend-go/pkg/response"
)

// AnalyticsHandler handles HTTP requests for dashboard summaries.
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// FilterOptions handles GET /filter-options/:cache_key.
func (h *AnalyticsHandler) FilterOptions(c *gin.Context) {
	opts, err := h.analyticsService.FilterOptions(c.Param("cache_key"))
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, opts)
}

// Analytics handles POST /analytics/:cache_key.
func (h *AnalyticsHandler) Analytics(c *gin.Context) {
	filters, ok := bindFilters(c)
	if !ok {
		return
	}
	result, err := h.analyticsService.Analytics(c.Param("cache_key"), filters)
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, result)
}

// Timeline handles POST /timeline/:cache_key?granularity=.
func (h *AnalyticsHandler) Timeline(c *gin.Context) {
	filters, ok := bindFilters(c)
	if !ok {
		return
	}
	granularity := c.DefaultQuery("granularity", "monthly")
	result, err := h.analyticsService.Timeline(c.Param("cache_key"), filters, granularity)
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, result)
}

// KPI handles POST /kpi-data/:cache_key.
func (h *AnalyticsHandler) KPI(c *gin.Context) {
	filters, ok := bindFilters(c)
	if !ok {
		return
	}
	result, err := h.analyticsService.KPI(c.Param("cache_key"), filters)
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, result)
}

// DayAnalysis handles POST /day-analysis/:cache_key.
func (h *AnalyticsHandler) DayAnalysis(c *gin.Context) {
	filters, ok := bindFilters(c)
	if !ok {
		return
	}
	result, err := h.analyticsService.DayAnalysis(c.Param("cache_key"), filters)
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, result)
}
