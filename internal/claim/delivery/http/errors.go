package http

import (
	"net/http"

	"jwt-builder/internal/claim"
	"jwt-builder/pkg/errors"
	"jwt-builder/pkg/response"
)

var (
	errPresetNotFound = errors.NewHTTPError(10001, "Preset not found", http.StatusNotFound)
)

var errorMapping = response.ErrorMapping{
	claim.ErrPresetNotFound: errPresetNotFound,
}
