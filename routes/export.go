package routes

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AnthonySaastify/Dr.Viva-v2/models"
	"github.com/AnthonySaastify/Dr.Viva-v2/services"
)

func RegisterExportRoutes(group *gin.RouterGroup, exportService services.ExportServiceInterface) {
	group.POST("/track-plan/export-sessions-zip", func(c *gin.Context) { ExportSessionsZip(c, exportService) })
}

// ExportSessionsZip bundles the attachments of the posted sessions into a
// single ZIP download. The body is plain text on failure, matching the
// statuses the planner UI expects.
func ExportSessionsZip(c *gin.Context, exportService services.ExportServiceInterface) {
	var req struct {
		Sessions []models.SessionRef `json:"sessions"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Sessions) == 0 {
		c.String(http.StatusBadRequest, "No sessions provided")
		return
	}

	data, err := exportService.ExportSessions(c.Request.Context(), req.Sessions)
	if err != nil {
		if errors.Is(err, services.ErrNoSessions) {
			c.String(http.StatusBadRequest, "No sessions provided")
			return
		}
		log.Printf("ZIP export error: %v", err)
		c.String(http.StatusInternalServerError, "Failed to export ZIP")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="sessions.zip"`)
	c.Data(http.StatusOK, "application/zip", data)
}
