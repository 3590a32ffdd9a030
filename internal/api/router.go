package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/acp-backend-go/internal/config"
	"github.com/jengzang/acp-backend-go/internal/handler"
	"github.com/jengzang/acp-backend-go/internal/middleware"
	"github.com/jengzang/acp-backend-go/internal/service"
	"github.com/jengzang/acp-backend-go/internal/store"
)

// SetupRouter builds the HTTP surface over the shared dataset store.
func SetupRouter(cfg *config.Config, st *store.Store) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())
	r.MaxMultipartMemory = cfg.MaxMultipartMemory

	// CORS for the dashboard origin
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.AllowOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	uploadHandler := handler.NewUploadHandler(service.NewUploadService(st, cfg.MaxUploadFiles))
	analyticsHandler := handler.NewAnalyticsHandler(service.NewAnalyticsService(st))
	tableHandler := handler.NewTableHandler(service.NewTableService(st))
	trainHandler := handler.NewTrainHandler(service.NewTrainService(st))
	exportHandler := handler.NewExportHandler(service.NewExportService(st))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":        "healthy",
			"cache_entries": st.Len(),
		})
	})

	r.POST("/upload", uploadHandler.Upload)
	r.GET("/filter-options/:cache_key", analyticsHandler.FilterOptions)
	r.POST("/analytics/:cache_key", analyticsHandler.Analytics)
	r.POST("/table/:cache_key", tableHandler.Table)
	r.POST("/timeline/:cache_key", analyticsHandler.Timeline)
	r.POST("/kpi-data/:cache_key", analyticsHandler.KPI)
	r.POST("/day-analysis/:cache_key", analyticsHandler.DayAnalysis)
	r.POST("/train-incidents/:cache_key", trainHandler.Incidents)
	r.POST("/train-list/:cache_key", trainHandler.List)
	r.POST("/train-analytics/:cache_key", trainHandler.Analytics)
	r.POST("/train-timeline/:cache_key", trainHandler.Timeline)
	r.GET("/train-search/:cache_key", trainHandler.Search)
	r.POST("/export-data/:cache_key", exportHandler.Export)

	return r
}
