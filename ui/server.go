package ui

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"datadash/app"
	"datadash/internal/config"
)

// Server is the HTTP surface of the dashboard API
type Server struct {
	router   *gin.Engine
	config   *config.Config
	datasets *app.DatasetService
	insights *app.InsightService
	reports  *app.ReportService
	graphs   *app.GraphService
}

// NewServer creates the server and wires its routes
func NewServer(
	cfg *config.Config,
	datasets *app.DatasetService,
	insights *app.InsightService,
	reports *app.ReportService,
	graphs *app.GraphService,
) *Server {
	gin.SetMode(cfg.Server.GinMode)
	s := &Server{
		router:   gin.Default(),
		config:   cfg,
		datasets: datasets,
		insights: insights,
		reports:  reports,
		graphs:   graphs,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleHome)

	s.router.POST("/upload", s.handleUpload)
	s.router.GET("/datasets", s.handleListDatasets)
	s.router.GET("/datasets/:id", s.handleGetDataset)
	s.router.GET("/insights/generate/:id", s.handleGenerateInsights)
	s.router.GET("/reports/generate/:id", s.handleGenerateReport)
	s.router.GET("/graphs/:id", s.handleGraphData)

	// Serve uploaded files and generated reports directly
	s.router.Static("/uploaded_files", s.config.Paths.UploadDir)
	s.router.Static("/report_files", s.config.Paths.ReportsDir)
}

// Router exposes the underlying engine, mainly for handler tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start runs the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.config.Server.Port)
	return s.router.Run(addr)
}
