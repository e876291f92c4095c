package claim

import "context"

// UseCase assembles claim sets and serves the builder form's starting state.
type UseCase interface {
	Assemble(ctx context.Context, input AssembleInput) (AssembleOutput, error)
	Defaults(ctx context.Context) FormDefaults
	Presets(ctx context.Context) []Preset
	Preset(ctx context.Context, name string) (Preset, error)
}
