package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AnthonySaastify/Dr.Viva-v2/config"
)

// RegisterHealthRoutes exposes a liveness probe. It reports process state
// only; the Google backends are checked lazily by the endpoints that use
// them.
func RegisterHealthRoutes(group *gin.RouterGroup, cfg config.Config) {
	group.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.AppEnv,
			"time":   time.Now(),
		})
	})
}
