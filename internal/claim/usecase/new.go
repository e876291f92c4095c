package usecase

import (
	"time"

	"jwt-builder/internal/claim"
	"jwt-builder/pkg/log"
)

type implUseCase struct {
	l     log.Logger
	clock func() time.Time
	loc   *time.Location
}

// Option customises the use case.
type Option func(*implUseCase)

// WithClock replaces time.Now.
func WithClock(clock func() time.Time) Option {
	return func(uc *implUseCase) {
		uc.clock = clock
	}
}

// WithLocation sets the zone used for dates written without an offset.
func WithLocation(loc *time.Location) Option {
	return func(uc *implUseCase) {
		uc.loc = loc
	}
}

func New(l log.Logger, opts ...Option) claim.UseCase {
	uc := &implUseCase{
		l:     l,
		clock: time.Now,
		loc:   time.Local,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
