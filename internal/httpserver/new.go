package httpserver

import (
	"errors"
	"time"

	"jwt-builder/internal/claim"
	"jwt-builder/internal/form"
	formHTTP "jwt-builder/internal/form/delivery/http"
	"jwt-builder/internal/middleware"
	"jwt-builder/internal/token"
	"jwt-builder/pkg/discord"
	"jwt-builder/pkg/log"

	"github.com/gin-gonic/gin"
)

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them.
// Run() (in httpserver.go) is responsible for serving and shutdown.
type HTTPServer struct {
	// Server configuration
	gin             *gin.Engine
	l               log.Logger
	host            string
	port            int
	environment     string
	shutdownTimeout time.Duration

	// Domain use cases
	claimUC claim.UseCase
	tokenUC token.UseCase
	formUC  form.UseCase

	// Transport configuration
	wsConfig   formHTTP.WSConfig
	corsConfig middleware.CORSConfig
	signerMode string

	// External services
	discord discord.IDiscord
}

// Config is the constructor input for HTTPServer.
type Config struct {
	// Server configuration
	Host            string
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	// Domain use cases
	ClaimUC claim.UseCase
	TokenUC token.UseCase
	FormUC  form.UseCase

	// Transport configuration
	WSConfig   formHTTP.WSConfig
	CORSConfig middleware.CORSConfig
	// SignerMode is "remote" or "local"; reported by the health endpoints.
	SignerMode string

	// External services
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
// Note: This does NOT start serving. Use (*HTTPServer).Run().
func New(l log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 30 * time.Second
	}

	srv := &HTTPServer{
		gin:             gin.New(),
		l:               l,
		host:            cfg.Host,
		port:            cfg.Port,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,

		claimUC: cfg.ClaimUC,
		tokenUC: cfg.TokenUC,
		formUC:  cfg.FormUC,

		wsConfig:   cfg.WSConfig,
		corsConfig: cfg.CORSConfig,
		signerMode: cfg.SignerMode,

		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.claimUC == nil {
		return errors.New("claim use case is required")
	}
	if srv.tokenUC == nil {
		return errors.New("token use case is required")
	}
	if srv.formUC == nil {
		return errors.New("form use case is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
