package ui

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"datadash/domain/core"
)

// respondError maps domain errors to distinct client-visible statuses so
// callers can tell "nothing to show" from bad input from server failure
func respondError(c *gin.Context, err error) {
	switch {
	case core.IsNotFoundError(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "Dataset not found"})
	case errors.Is(err, core.ErrDatasetFileMissing):
		c.JSON(http.StatusNotFound, gin.H{"error": "Dataset file not found on server"})
	case errors.Is(err, core.ErrNoInsights):
		c.JSON(http.StatusNotFound, gin.H{"error": "No insights found for this dataset"})
	case errors.Is(err, core.ErrUnreadableFile):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error reading file: " + err.Error()})
	case errors.Is(err, core.ErrInvalidUpload):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only CSV or Excel files are allowed"})
	case errors.Is(err, core.ErrRenderingFailure):
		log.Printf("[API] Report rendering failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating PDF"})
	default:
		log.Printf("[API] Unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
