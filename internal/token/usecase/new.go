package usecase

import (
	"jwt-builder/internal/token"
	"jwt-builder/pkg/jwt"
	"jwt-builder/pkg/log"
)

type implUseCase struct {
	l      log.Logger
	signer jwt.Signer
}

func New(l log.Logger, signer jwt.Signer) token.UseCase {
	return &implUseCase{
		l:      l,
		signer: signer,
	}
}
