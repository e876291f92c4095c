package jwt

// Signer signs and verifies arbitrary claim maps with a shared secret.
type Signer interface {
	// Sign returns the compact serialization of claims signed with key.
	Sign(claims map[string]any, key []byte, alg string) (string, error)
	// Verify checks the signature only. Time-based claims are not enforced.
	Verify(token string, key []byte) (Parsed, error)
	// Algorithms lists the accepted algorithm names.
	Algorithms() []string
}

// New returns the HMAC signer.
func New() Signer {
	return &hmacSigner{methods: methods}
}
