package errors

import "net/http"

const (
	// HTTP status codes for predefined errors
	StatusBadRequest         = http.StatusBadRequest         // 400
	StatusServiceUnavailable = http.StatusServiceUnavailable // 503
)

const (
	// MessageBadRequest is the default message for malformed request bodies.
	MessageBadRequest = "Bad request"
)
