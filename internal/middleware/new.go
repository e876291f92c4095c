package middleware

import (
	"jwt-builder/pkg/discord"
	"jwt-builder/pkg/log"
)

type Middleware struct {
	l       log.Logger
	discord discord.IDiscord
}

func New(l log.Logger, d discord.IDiscord) Middleware {
	return Middleware{
		l:       l,
		discord: d,
	}
}
