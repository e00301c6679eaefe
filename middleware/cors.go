package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORS answers preflight requests and reflects allowed origins. ALLOW_ORIGIN
// is a comma or semicolon separated list; the literal entry "self" allows
// the server's own origin.
func CORS(allowOrigin string) gin.HandlerFunc {
	allowed := []string{}
	for _, origin := range strings.FieldsFunc(allowOrigin, func(r rune) bool {
		return r == ',' || r == ';'
	}) {
		if origin = strings.TrimSpace(origin); origin != "" {
			allowed = append(allowed, origin)
		}
	}

	isAllowed := func(c *gin.Context, origin string) bool {
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		selfOrigin := scheme + "://" + c.Request.Host
		for _, entry := range allowed {
			if entry == origin || (entry == "self" && origin == selfOrigin) {
				return true
			}
		}
		return false
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		c.Header("Vary", "Origin")

		if origin != "" && isAllowed(c, origin) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
		}

		if c.Request.Method == http.MethodOptions {
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, api-key")
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
