package ui

import (
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"datadash/domain/core"
)

func (s *Server) handleHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to Smart Data Dashboard API!"})
}

// handleUpload accepts a multipart CSV/XLSX file, stores it, and registers the
// dataset
func (s *Server) handleUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A file upload is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not open uploaded file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded file"})
		return
	}

	ds, err := s.datasets.Register(c.Request.Context(), fileHeader.Filename, data)
	if err != nil {
		respondError(c, err)
		return
	}

	log.Printf("[API] Uploaded dataset %s (%s, %d rows)", ds.ID, ds.Filename, ds.TotalRows)
	c.JSON(http.StatusOK, gin.H{
		"message":    "File uploaded successfully",
		"filename":   ds.Filename,
		"total_rows": ds.TotalRows,
		"dataset_id": ds.ID,
	})
}

func (s *Server) handleListDatasets(c *gin.Context) {
	summaries, err := s.datasets.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if len(summaries) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No datasets found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"datasets": summaries})
}

func (s *Server) handleGetDataset(c *gin.Context) {
	detail, err := s.datasets.Get(c.Request.Context(), core.ID(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (s *Server) handleGenerateInsights(c *gin.Context) {
	result, err := s.insights.Generate(c.Request.Context(), core.ID(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleGenerateReport(c *gin.Context) {
	generated, err := s.reports.Generate(c.Request.Context(), core.ID(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.FileAttachment(generated.Path, generated.DownloadName)
}

func (s *Server) handleGraphData(c *gin.Context) {
	data, err := s.graphs.GraphData(c.Request.Context(), core.ID(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}
