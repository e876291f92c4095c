package token

import "errors"

var (
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
	ErrMissingKey           = errors.New("missing key")
	ErrMissingClaims        = errors.New("missing claims")
	ErrInvalidToken         = errors.New("invalid token")
	ErrInvalidKeyLength     = errors.New("invalid key length")
	ErrEncoding             = errors.New("input contains characters outside the byte range")
	ErrDecoding             = errors.New("input is not valid base64")
	ErrArgument             = errors.New("expected exactly one argument")
)
