package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/AnthonySaastify/Dr.Viva-v2/config"
)

func RegisterOAuthRoutes(group *gin.RouterGroup, cfg config.Config) {
	group.GET("/oauth/callback", func(c *gin.Context) { OAuthCallback(c, cfg) })
}

// OAuthCallback exchanges the authorization code from the Drive consent
// flow for tokens and returns them to the caller. Token persistence is
// the caller's concern.
func OAuthCallback(c *gin.Context, cfg config.Config) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing code"})
		return
	}

	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Missing Google OAuth credentials"})
		return
	}

	conf := &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.OAuthRedirectURI,
		Endpoint:     google.Endpoint,
	}

	token, err := conf.Exchange(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to exchange code", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, token)
}
