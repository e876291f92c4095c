package usecase

import (
	"context"

	"jwt-builder/internal/token"
	"jwt-builder/pkg/keygen"
)

func (uc *implUseCase) GenerateKey(ctx context.Context, length int) (string, error) {
	if length == 0 {
		length = token.DefaultKeyLength
	}
	if length < 0 || length > token.MaxKeyLength {
		return "", token.ErrInvalidKeyLength
	}

	key, err := keygen.Generate(length)
	if err != nil {
		uc.l.Errorf(ctx, "internal.token.usecase.GenerateKey: %v", err)
		return "", err
	}
	return key, nil
}
