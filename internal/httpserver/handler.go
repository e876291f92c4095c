package httpserver

import (
	claimHTTP "jwt-builder/internal/claim/delivery/http"
	formHTTP "jwt-builder/internal/form/delivery/http"
	"jwt-builder/internal/middleware"
	tokenHTTP "jwt-builder/internal/token/delivery/http"

	// Import this to execute the init function in docs.go which setups the Swagger docs.
	_ "jwt-builder/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	Api = "/api/v1"
)

func (srv *HTTPServer) mapHandlers() {
	mw := middleware.New(srv.l, srv.discord)
	srv.gin.Use(
		mw.Recovery(),
		mw.RequestID(),
		mw.AccessLog(),
		middleware.CORS(srv.corsConfig),
	)

	// Health check endpoints
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	claimH := claimHTTP.New(srv.l, srv.claimUC, srv.discord)
	tokenH := tokenHTTP.New(srv.l, srv.tokenUC, srv.discord)
	formH := formHTTP.New(srv.l, srv.formUC, srv.wsConfig)

	// The builder form posts here without a version prefix.
	tokenH.RegisterTokenRoutes(srv.gin)
	formH.RegisterRoutes(srv.gin)

	api := srv.gin.Group(Api)
	claimH.RegisterRoutes(api)
	tokenH.RegisterRoutes(api)
}
