package usecase

import (
	"context"
	"errors"

	"jwt-builder/internal/token"
	"jwt-builder/pkg/base64"
)

func (uc *implUseCase) Encode(ctx context.Context, input token.CodecInput) (token.CodecOutput, error) {
	v, err := base64.EncodeArgs(input.Args...)
	if err != nil {
		uc.l.Warnf(ctx, "internal.token.usecase.Encode: %v", err)
		return token.CodecOutput{}, mapCodecError(err)
	}
	return token.CodecOutput{Value: v}, nil
}

func (uc *implUseCase) Decode(ctx context.Context, input token.CodecInput) (token.CodecOutput, error) {
	if len(input.Args) != 1 {
		return token.CodecOutput{}, token.ErrArgument
	}
	v, err := base64.Decode(input.Args[0])
	if err != nil {
		uc.l.Warnf(ctx, "internal.token.usecase.Decode: %v", err)
		return token.CodecOutput{}, mapCodecError(err)
	}
	return token.CodecOutput{Value: v}, nil
}

func mapCodecError(err error) error {
	switch {
	case errors.Is(err, base64.ErrEncoding):
		return token.ErrEncoding
	case errors.Is(err, base64.ErrArgument):
		return token.ErrArgument
	case errors.Is(err, base64.ErrDecode):
		return token.ErrDecoding
	}
	return err
}
