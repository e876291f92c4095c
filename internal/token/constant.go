package token

const (
	// DefaultKeyLength is used when no length is requested.
	DefaultKeyLength = 32
	// MaxKeyLength bounds generated keys.
	MaxKeyLength = 512
)
