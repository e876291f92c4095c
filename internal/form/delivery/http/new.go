package http

import (
	"time"

	"jwt-builder/internal/form"
	"jwt-builder/pkg/log"
)

// WSConfig holds the socket timings and limits.
type WSConfig struct {
	PongWait        time.Duration
	PingPeriod      time.Duration
	WriteWait       time.Duration
	MaxMessageSize  int64
	ReadBufferSize  int
	WriteBufferSize int
	SendBufferSize  int
	AllowedOrigins  []string
}

type Handler struct {
	l        log.Logger
	uc       form.UseCase
	wsConfig WSConfig
}

func New(l log.Logger, uc form.UseCase, wsCfg WSConfig) *Handler {
	if wsCfg.PongWait <= 0 {
		wsCfg.PongWait = 60 * time.Second
	}
	if wsCfg.PingPeriod <= 0 || wsCfg.PingPeriod >= wsCfg.PongWait {
		wsCfg.PingPeriod = wsCfg.PongWait * 9 / 10
	}
	if wsCfg.WriteWait <= 0 {
		wsCfg.WriteWait = 10 * time.Second
	}
	if wsCfg.MaxMessageSize <= 0 {
		wsCfg.MaxMessageSize = 64 * 1024
	}
	if wsCfg.SendBufferSize <= 0 {
		wsCfg.SendBufferSize = 16
	}
	return &Handler{
		l:        l,
		uc:       uc,
		wsConfig: wsCfg,
	}
}
