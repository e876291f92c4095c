package main

import (
	"context"
	"fmt"

	"jwt-builder/config"
	claimUsecase "jwt-builder/internal/claim/usecase"
	"jwt-builder/internal/form"
	formHTTP "jwt-builder/internal/form/delivery/http"
	formUsecase "jwt-builder/internal/form/usecase"
	"jwt-builder/internal/httpserver"
	"jwt-builder/internal/middleware"
	tokenUsecase "jwt-builder/internal/token/usecase"
	"jwt-builder/pkg/discord"
	"jwt-builder/pkg/jwt"
	"jwt-builder/pkg/log"
	"jwt-builder/pkg/signer"
)

// @title       JWT Builder API
// @description Assembles JWT claim sets, signs them with HMAC keys and serves live builder form sessions.
// @version     1.0
// @host        localhost:8080
// @schemes     http ws
// @BasePath    /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config:", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting JWT builder...")

	// Initialize Discord webhook (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookID != "" {
		d, err := discord.NewFromParts(logger, cfg.Discord.WebhookID, cfg.Discord.WebhookToken)
		if err != nil {
			logger.Warnf(ctx, "Failed to initialize Discord webhook: %v", err)
		} else {
			discordClient = d
			defer discordClient.Close()
			logger.Info(ctx, "Discord webhook initialized")
		}
	}

	// Domain use cases
	claimUC := claimUsecase.New(logger)
	tokenUC := tokenUsecase.New(logger, jwt.New())

	// Form sessions sign remotely when a signer is configured
	var submitter form.Submitter
	signerMode := "local"
	if cfg.Signer.URL != "" {
		client, err := signer.New(signer.Config{BaseURL: cfg.Signer.URL, Timeout: cfg.Signer.Timeout})
		if err != nil {
			logger.Errorf(ctx, "Failed to initialize signer client: %v", err)
			return
		}
		defer client.Close()
		submitter = client
		signerMode = "remote"
		logger.Infof(ctx, "Form sessions sign through %s", cfg.Signer.URL)
	}
	formUC := formUsecase.New(logger, claimUC, tokenUC, submitter, formUsecase.WithMaxSessions(cfg.WebSocket.MaxSessions))

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server configuration
		Host:            cfg.Server.Host,
		Port:            cfg.Server.Port,
		Mode:            cfg.Server.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,

		// Domain use cases
		ClaimUC: claimUC,
		TokenUC: tokenUC,
		FormUC:  formUC,

		// Transport configuration
		WSConfig: formHTTP.WSConfig{
			PongWait:        cfg.WebSocket.PongWait,
			PingPeriod:      cfg.WebSocket.PingInterval,
			WriteWait:       cfg.WebSocket.WriteWait,
			MaxMessageSize:  cfg.WebSocket.MaxMessageSize,
			ReadBufferSize:  cfg.WebSocket.ReadBufferSize,
			WriteBufferSize: cfg.WebSocket.WriteBufferSize,
			SendBufferSize:  cfg.WebSocket.SendBufferSize,
			AllowedOrigins:  cfg.CORS.AllowedOrigins,
		},
		CORSConfig: middleware.CORSConfig{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			MaxAge:         middleware.DefaultCORSConfig().MaxAge,
		},
		SignerMode: signerMode,

		// Monitoring & notification
		Discord: discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
	}
}
