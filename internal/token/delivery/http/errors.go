package http

import (
	stderrors "errors"
	"net/http"

	"jwt-builder/internal/token"
	"jwt-builder/pkg/errors"
)

var (
	errUnsupportedAlgorithm = errors.NewHTTPError(11001, "Unsupported algorithm", http.StatusBadRequest)
	errMissingKey           = errors.NewHTTPError(11002, "Missing key", http.StatusBadRequest)
	errMissingClaims        = errors.NewHTTPError(11003, "Missing claims", http.StatusBadRequest)
	errInvalidToken         = errors.NewHTTPError(11004, "Invalid token", http.StatusUnauthorized)
	errInvalidKeyLength     = errors.NewHTTPError(11005, "Key length must be between 1 and 512", http.StatusBadRequest)
	errEncoding             = errors.NewHTTPError(11006, "Input contains characters outside the byte range", http.StatusBadRequest)
	errDecoding             = errors.NewHTTPError(11007, "Input is not valid base64", http.StatusBadRequest)
	errArgument             = errors.NewHTTPError(11008, "Expected exactly one argument", http.StatusBadRequest)
)

var errClaimsNotObject = stderrors.New("must be a JSON object")

func (h *Handler) mapError(err error) error {
	switch err {
	case token.ErrUnsupportedAlgorithm:
		return errUnsupportedAlgorithm
	case token.ErrMissingKey:
		return errMissingKey
	case token.ErrMissingClaims:
		return errMissingClaims
	case token.ErrInvalidToken:
		return errInvalidToken
	case token.ErrInvalidKeyLength:
		return errInvalidKeyLength
	case token.ErrEncoding:
		return errEncoding
	case token.ErrDecoding:
		return errDecoding
	case token.ErrArgument:
		return errArgument
	}
	return err
}
