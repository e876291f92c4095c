package http

import (
	"errors"
	"net/http"

	"jwt-builder/internal/form"
	pkgErrors "jwt-builder/pkg/errors"
)

var (
	errUnknownAction  = errors.New("unknown action")
	errInvalidMessage = errors.New("invalid message format")
)

var errMaxSessionsReached = pkgErrors.NewHTTPError(12001, "Maximum sessions reached", http.StatusServiceUnavailable)

// mapHTTPError maps failures that happen before the upgrade.
func (h *Handler) mapHTTPError(err error) error {
	switch err {
	case form.ErrMaxSessionsReached:
		return errMaxSessionsReached
	}
	return err
}

// mapError turns an action failure into the text pushed to the client.
func (h *Handler) mapError(err error) string {
	switch err {
	case form.ErrClaimNotFound:
		return "Claim not found"
	case form.ErrPresetNotFound:
		return "Preset not found"
	case form.ErrUnsupportedAlgorithm:
		return "Unsupported algorithm"
	case form.ErrInvalidKeyLength:
		return "Key length must be between 1 and 512"
	case errUnknownAction:
		return "Unknown action"
	case errInvalidMessage:
		return "Invalid message format"
	}
	return "Something went wrong"
}
