package signer

import (
	"fmt"
	"time"
)

// ContentType matches what the builder form sends.
const ContentType = "application/json;charset=utf8"

// DefaultTimeout bounds one submission.
const DefaultTimeout = 15 * time.Second

// Config configures the client.
type Config struct {
	// BaseURL is the signer's origin, e.g. "https://jwt.example.com".
	BaseURL string
	Timeout time.Duration
}

// Request is the body of POST /tokens.
type Request struct {
	Claims any    `json:"claims"`
	Key    string `json:"key"`
	Alg    string `json:"alg"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// ResponseError carries a non-2xx reply. Body is the raw response text.
type ResponseError struct {
	StatusCode int
	Body       string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("signer returned status %d: %s", e.StatusCode, e.Body)
}
