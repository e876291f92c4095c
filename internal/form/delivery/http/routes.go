package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the form socket.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	ws := r.Group("/ws")
	{
		ws.GET("/form", h.HandleWebSocket)
	}
}
