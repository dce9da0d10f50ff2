package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"
)

// CORSMiddleware adds the required headers to allow cross-origin requests
// from the dashboard frontend
func CORSMiddleware(appOrigins string) gin.HandlerFunc {

	// Set up CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(appOrigins, ",")
	corsConfig.AllowWildcard = true
	corsConfig.AllowCredentials = true
	corsConfig.ExposeHeaders = append(corsConfig.ExposeHeaders, "Content-Disposition")
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, []string{
		"Accept",
		"Authorization",
		"Accept-Encoding",
		"X-Requested-With",
	}...)

	return cors.New(corsConfig)
}
