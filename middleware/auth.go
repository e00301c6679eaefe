package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// APIKeyAuth gates every mutating request behind the shared BLOG_API_KEY
// secret, sent by clients in the api-key header. Read-only methods pass
// through so the public blog surface stays open.
func APIKeyAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		secret := os.Getenv("BLOG_API_KEY")
		if secret == "" {
			log.Error().Msg("BLOG_API_KEY is not configured")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		if c.GetHeader("api-key") != secret {
			log.Warn().Str("path", c.Request.URL.Path).Msg("invalid api key")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "api key is required"})
			return
		}

		c.Next()
	}
}
