// Package jwt signs builder claim sets with HMAC keys.
package jwt

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var methods = map[string]*jwt.SigningMethodHMAC{
	AlgHS256: jwt.SigningMethodHS256,
	AlgHS384: jwt.SigningMethodHS384,
	AlgHS512: jwt.SigningMethodHS512,
}

type hmacSigner struct {
	methods map[string]*jwt.SigningMethodHMAC
}

// IsSupported reports whether alg names one of the HMAC methods.
func IsSupported(alg string) bool {
	_, ok := methods[alg]
	return ok
}

func (s *hmacSigner) Algorithms() []string {
	return []string{AlgHS256, AlgHS384, AlgHS512}
}

func (s *hmacSigner) Sign(claims map[string]any, key []byte, alg string) (string, error) {
	method, ok := s.methods[alg]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
	}
	if len(key) == 0 {
		return "", ErrEmptyKey
	}
	token := jwt.NewWithClaims(method, jwt.MapClaims(claims))
	signed, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *hmacSigner) Verify(tokenString string, key []byte) (Parsed, error) {
	if len(key) == 0 {
		return Parsed{}, ErrEmptyKey
	}
	parser := jwt.NewParser(
		jwt.WithValidMethods(s.Algorithms()),
		jwt.WithoutClaimsValidation(),
	)
	token, err := parser.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return Parsed{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return Parsed{}, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Parsed{}, fmt.Errorf("%w: invalid claims format", ErrInvalidToken)
	}
	return Parsed{
		Alg:    token.Method.Alg(),
		Header: token.Header,
		Claims: map[string]any(claims),
	}, nil
}
