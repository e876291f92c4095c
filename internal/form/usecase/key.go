package usecase

import (
	"context"
	"errors"

	"jwt-builder/internal/form"
	"jwt-builder/internal/token"
	"jwt-builder/pkg/jwt"
)

func (s *implSession) SetKey(ctx context.Context, key string) error {
	return s.update(ctx, func() error {
		s.key = key
		return nil
	})
}

func (s *implSession) GenerateKey(ctx context.Context, length int) error {
	key, err := s.tokenUC.GenerateKey(ctx, length)
	if err != nil {
		if errors.Is(err, token.ErrInvalidKeyLength) {
			return form.ErrInvalidKeyLength
		}
		return err
	}
	return s.SetKey(ctx, key)
}

func (s *implSession) SelectAlgorithm(ctx context.Context, alg string) error {
	if !jwt.IsSupported(alg) {
		return form.ErrUnsupportedAlgorithm
	}
	return s.update(ctx, func() error {
		s.alg = alg
		return nil
	})
}

func (s *implSession) ToggleBase64(ctx context.Context) error {
	return s.update(ctx, func() error {
		s.base64 = !s.base64
		return nil
	})
}
