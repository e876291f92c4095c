package middleware

import (
	"jwt-builder/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a 500 and reports it to Discord when configured.
func (m Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				m.l.Errorf(ctx, "Panic recovered: %v | Method: %s | Path: %s",
					err, c.Request.Method, c.Request.URL.Path)

				response.PanicError(c, err, m.discord)
				c.Abort()
			}
		}()
		c.Next()
	}
}
