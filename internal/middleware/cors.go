package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSConfig holds the configuration for CORS middleware.
type CORSConfig struct {
	// AllowedOrigins is a list of origins that are allowed to make requests.
	// Use "*" to allow all origins. Wildcard subdomains like
	// "https://*.example.com" are accepted.
	AllowedOrigins []string
	MaxAge         time.Duration
}

// DefaultCORSConfig allows every origin.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins: []string{"*"},
		MaxAge:         24 * time.Hour,
	}
}

// CORS returns the gin-contrib/cors handler for config.
func CORS(config CORSConfig) gin.HandlerFunc {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept", "Accept-Encoding", "X-Requested-With", RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", RequestIDHeader},
		AllowCredentials: false,
		AllowWildcard:    true,
		AllowWebSockets:  true,
		MaxAge:           config.MaxAge,
	}
	if len(config.AllowedOrigins) == 0 || containsAny(config.AllowedOrigins) {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = config.AllowedOrigins
	}
	return cors.New(c)
}

func containsAny(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
