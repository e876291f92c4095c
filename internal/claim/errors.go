package claim

import "errors"

var (
	ErrPresetNotFound = errors.New("preset not found")
	ErrRenderFailed   = errors.New("failed to render claim set")
)
