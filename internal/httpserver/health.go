package httpserver

import (
	"jwt-builder/pkg/jwt"
	"jwt-builder/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "jwt-builder"
	serviceVersion = "1.0.0"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the service is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	stats := srv.formUC.GetStats(c.Request.Context())
	response.OK(c, gin.H{
		"status":      "healthy",
		"version":     serviceVersion,
		"service":     serviceName,
		"environment": srv.environment,
		"signer":      srv.signerMode,
		"algorithms":  srv.algorithms(),
		"sessions": gin.H{
			"active": stats.ActiveSessions,
			"max":    stats.MaxSessions,
		},
	})
}

// readyCheck handles readiness check requests
// @Summary Readiness Check
// @Description Check if the service is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"version": serviceVersion,
		"service": serviceName,
		"signer":  srv.signerMode,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the service is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": serviceVersion,
		"service": serviceName,
	})
}

func (srv *HTTPServer) algorithms() []string {
	return jwt.New().Algorithms()
}
