package http

import "github.com/gin-gonic/gin"

// RegisterTokenRoutes mounts the signing endpoints the builder form posts to.
func (h *Handler) RegisterTokenRoutes(r gin.IRouter) {
	tokens := r.Group("/tokens")
	{
		tokens.POST("", h.Sign)
		tokens.POST("/verify", h.Verify)
	}
}

// RegisterRoutes mounts the helper endpoints under the versioned API group.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/keys", h.GenerateKey)

	b64 := r.Group("/base64")
	{
		b64.POST("/encode", h.Encode)
		b64.POST("/decode", h.Decode)
	}
}
