package http

import (
	"jwt-builder/internal/token"
	"jwt-builder/pkg/discord"
	"jwt-builder/pkg/log"
)

type Handler struct {
	l       log.Logger
	uc      token.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc token.UseCase, d discord.IDiscord) *Handler {
	return &Handler{
		l:       l,
		uc:      uc,
		discord: d,
	}
}
