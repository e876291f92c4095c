package http

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the claim endpoints under r.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	claims := r.Group("/claims")
	{
		claims.POST("/assemble", h.Assemble)
		claims.GET("/defaults", h.Defaults)
		claims.GET("/presets", h.Presets)
		claims.GET("/presets/:name", h.Preset)
	}
}
