package token

import "context"

// UseCase signs claim sets and exposes the helpers the builder form needs.
type UseCase interface {
	Sign(ctx context.Context, input SignInput) (SignOutput, error)
	Verify(ctx context.Context, input VerifyInput) (VerifyOutput, error)
	GenerateKey(ctx context.Context, length int) (string, error)
	Encode(ctx context.Context, input CodecInput) (CodecOutput, error)
	Decode(ctx context.Context, input CodecInput) (CodecOutput, error)
}
