package usecase

import (
	"context"
	"sync"
	"time"

	"jwt-builder/internal/claim"
	"jwt-builder/internal/form"
	"jwt-builder/internal/token"
	"jwt-builder/pkg/jwt"
	"jwt-builder/pkg/log"

	"github.com/google/uuid"
)

type implUseCase struct {
	l         log.Logger
	claimUC   claim.UseCase
	tokenUC   token.UseCase
	submitter form.Submitter
	clock     func() time.Time

	mu          sync.Mutex
	sessions    map[string]form.Session
	maxSessions int
}

// Option customises the use case.
type Option func(*implUseCase)

// WithClock replaces time.Now for the "now" buttons.
func WithClock(clock func() time.Time) Option {
	return func(uc *implUseCase) {
		uc.clock = clock
	}
}

// WithMaxSessions caps the number of live sessions. Zero means unlimited.
func WithMaxSessions(n int) Option {
	return func(uc *implUseCase) {
		uc.maxSessions = n
	}
}

// New wires a form use case. A nil submitter signs in-process through tokenUC.
func New(l log.Logger, claimUC claim.UseCase, tokenUC token.UseCase, submitter form.Submitter, opts ...Option) form.UseCase {
	if submitter == nil {
		submitter = NewLocalSubmitter(tokenUC)
	}
	uc := &implUseCase{
		l:         l,
		claimUC:   claimUC,
		tokenUC:   tokenUC,
		submitter: submitter,
		clock:     time.Now,
		sessions:  make(map[string]form.Session),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *implUseCase) NewSession(ctx context.Context) (form.Session, error) {
	uc.mu.Lock()
	full := uc.maxSessions > 0 && len(uc.sessions) >= uc.maxSessions
	uc.mu.Unlock()
	if full {
		uc.l.Warnf(ctx, "internal.form.usecase.NewSession: %d sessions open, refusing", uc.maxSessions)
		return nil, form.ErrMaxSessionsReached
	}

	d := uc.claimUC.Defaults(ctx)

	s := &implSession{
		id:        uuid.NewString(),
		l:         uc.l,
		claimUC:   uc.claimUC,
		tokenUC:   uc.tokenUC,
		submitter: uc.submitter,
		clock:     uc.clock,
		standard:  d.Standard,
		key:       d.Key,
		alg:       d.Algorithm,
		observers: make(map[uint64]form.Observer),
	}
	for _, c := range d.Additional {
		s.additional = append(s.additional, form.Claim{ID: uuid.NewString(), ClaimType: c.ClaimType, Value: c.Value})
	}
	if err := s.recompute(ctx); err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.maxSessions > 0 && len(uc.sessions) >= uc.maxSessions {
		return nil, form.ErrMaxSessionsReached
	}
	uc.sessions[s.id] = s

	uc.l.Debugf(ctx, "internal.form.usecase.NewSession: opened %s", s.id)
	return s, nil
}

func (uc *implUseCase) CloseSession(ctx context.Context, id string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, ok := uc.sessions[id]; !ok {
		return
	}
	delete(uc.sessions, id)
	uc.l.Debugf(ctx, "internal.form.usecase.CloseSession: closed %s", id)
}

func (uc *implUseCase) GetStats(ctx context.Context) form.Stats {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return form.Stats{
		ActiveSessions: len(uc.sessions),
		MaxSessions:    uc.maxSessions,
	}
}

var algorithms = []string{jwt.AlgHS256, jwt.AlgHS384, jwt.AlgHS512}
