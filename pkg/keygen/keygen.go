// Package keygen creates random symmetric signing keys.
package keygen

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// Charset is the pool keys are drawn from.
const Charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

var ErrInvalidLength = errors.New("keygen: length must be positive")

// Generate returns a key of n characters drawn uniformly from Charset.
func Generate(n int) (string, error) {
	if n <= 0 {
		return "", ErrInvalidLength
	}
	max := big.NewInt(int64(len(Charset)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = Charset[idx.Int64()]
	}
	return string(out), nil
}
