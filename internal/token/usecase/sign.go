package usecase

import (
	"context"
	"errors"

	"jwt-builder/internal/token"
	"jwt-builder/pkg/jwt"
)

func (uc *implUseCase) Sign(ctx context.Context, input token.SignInput) (token.SignOutput, error) {
	if !jwt.IsSupported(input.Alg) {
		return token.SignOutput{}, token.ErrUnsupportedAlgorithm
	}
	if input.Key == "" {
		return token.SignOutput{}, token.ErrMissingKey
	}
	if input.Claims == nil {
		return token.SignOutput{}, token.ErrMissingClaims
	}

	signed, err := uc.signer.Sign(input.Claims, []byte(input.Key), input.Alg)
	if err != nil {
		uc.l.Errorf(ctx, "internal.token.usecase.Sign: %v", err)
		return token.SignOutput{}, err
	}

	uc.l.Debugf(ctx, "internal.token.usecase.Sign: signed %d claims with %s", len(input.Claims), input.Alg)
	return token.SignOutput{Token: signed}, nil
}

func (uc *implUseCase) Verify(ctx context.Context, input token.VerifyInput) (token.VerifyOutput, error) {
	if input.Key == "" {
		return token.VerifyOutput{}, token.ErrMissingKey
	}

	parsed, err := uc.signer.Verify(input.Token, []byte(input.Key))
	if err != nil {
		if errors.Is(err, jwt.ErrInvalidToken) {
			uc.l.Warnf(ctx, "internal.token.usecase.Verify: %v", err)
			return token.VerifyOutput{}, token.ErrInvalidToken
		}
		uc.l.Errorf(ctx, "internal.token.usecase.Verify: %v", err)
		return token.VerifyOutput{}, err
	}

	return token.VerifyOutput{
		Alg:    parsed.Alg,
		Header: parsed.Header,
		Claims: parsed.Claims,
	}, nil
}
