package form

import "errors"

var (
	ErrClaimNotFound        = errors.New("claim not found")
	ErrPresetNotFound       = errors.New("preset not found")
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
	ErrInvalidKeyLength     = errors.New("invalid key length")
	ErrMaxSessionsReached   = errors.New("maximum sessions reached")
)
