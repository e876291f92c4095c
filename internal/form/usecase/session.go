package usecase

import (
	"context"
	"sync"
	"time"

	"jwt-builder/internal/claim"
	"jwt-builder/internal/form"
	"jwt-builder/internal/token"
	"jwt-builder/pkg/claimset"
	"jwt-builder/pkg/log"
)

type implSession struct {
	id        string
	l         log.Logger
	claimUC   claim.UseCase
	tokenUC   token.UseCase
	submitter form.Submitter
	clock     func() time.Time

	// notifyMu serialises change+notify so observers see snapshots in order.
	notifyMu sync.Mutex
	mu       sync.Mutex

	standard   claimset.StandardClaims
	additional []form.Claim
	key        string
	alg        string
	base64     bool
	createdJwt string

	derived claim.AssembleOutput

	pending     int
	submissions uint64

	observers  map[uint64]form.Observer
	observerID uint64
}

func (s *implSession) ID() string {
	return s.id
}

// update runs fn under the state lock, recomputes the claim set and notifies.
func (s *implSession) update(ctx context.Context, fn func() error) error {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	if err := fn(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.createdJwt = ""
	if err := s.recompute(ctx); err != nil {
		s.mu.Unlock()
		return err
	}
	snap, observers := s.snapshotLocked(), s.observerList()
	s.mu.Unlock()

	for _, o := range observers {
		o(snap)
	}
	return nil
}

func (s *implSession) recompute(ctx context.Context) error {
	additional := make([]claimset.AdditionalClaim, 0, len(s.additional))
	for _, c := range s.additional {
		additional = append(additional, claimset.AdditionalClaim{ClaimType: c.ClaimType, Value: c.Value})
	}
	out, err := s.claimUC.Assemble(ctx, claim.AssembleInput{Standard: s.standard, Additional: additional})
	if err != nil {
		s.l.Errorf(ctx, "internal.form.usecase.recompute: %v", err)
		return err
	}
	s.derived = out
	return nil
}

func (s *implSession) Snapshot() form.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *implSession) snapshotLocked() form.Snapshot {
	additional := make([]form.Claim, len(s.additional))
	copy(additional, s.additional)
	warnings := make([]string, len(s.derived.Warnings))
	copy(warnings, s.derived.Warnings)
	algs := make([]string, len(algorithms))
	copy(algs, algorithms)

	return form.Snapshot{
		ID:          s.id,
		Standard:    s.standard,
		Additional:  additional,
		Key:         s.key,
		KeyLength:   len(s.key),
		Algorithm:   s.alg,
		Algorithms:  algs,
		Base64:      s.base64,
		Claims:      s.derived.Claims,
		Display:     s.derived.Display,
		Warnings:    warnings,
		CreatedJwt:  s.createdJwt,
		Pending:     s.pending,
		Submissions: s.submissions,
	}
}

func (s *implSession) Subscribe(o form.Observer) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observerID++
	id := s.observerID
	s.observers[id] = o

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.observers, id)
			s.mu.Unlock()
		})
	}
}

func (s *implSession) observerList() []form.Observer {
	out := make([]form.Observer, 0, len(s.observers))
	for i := uint64(1); i <= s.observerID; i++ {
		if o, ok := s.observers[i]; ok {
			out = append(out, o)
		}
	}
	return out
}

// notify pushes the current state without touching the created token.
func (s *implSession) notify() {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	snap, observers := s.snapshotLocked(), s.observerList()
	s.mu.Unlock()

	for _, o := range observers {
		o(snap)
	}
}
