package jwt

import "errors"

// Supported HMAC algorithms.
const (
	AlgHS256 = "HS256"
	AlgHS384 = "HS384"
	AlgHS512 = "HS512"
)

var (
	ErrUnsupportedAlgorithm = errors.New("jwt: unsupported signing algorithm")
	ErrEmptyKey             = errors.New("jwt: signing key is empty")
	ErrInvalidToken         = errors.New("jwt: invalid token")
)

// Parsed is a verified token.
type Parsed struct {
	Alg    string
	Header map[string]any
	Claims map[string]any
}
