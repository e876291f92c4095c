package usecase

import (
	"context"
	"errors"

	"jwt-builder/pkg/base64"
	"jwt-builder/pkg/signer"
)

// Submit has no ordering guard: whichever response arrives last is displayed.
func (s *implSession) Submit(ctx context.Context) string {
	s.mu.Lock()
	req := signer.Request{
		Claims: s.derived.Claims,
		Key:    s.key,
		Alg:    s.alg,
	}
	s.submissions++
	seq := s.submissions
	s.pending++
	s.mu.Unlock()
	s.notify()

	tok, err := s.submitter.Submit(ctx, req)

	s.mu.Lock()
	s.pending--
	s.createdJwt = s.render(ctx, seq, tok, err)
	shown := s.createdJwt
	s.mu.Unlock()
	s.notify()

	return shown
}

// render must be called with s.mu held; the base64 toggle is read at arrival.
func (s *implSession) render(ctx context.Context, seq uint64, tok string, err error) string {
	if err != nil {
		var respErr *signer.ResponseError
		if errors.As(err, &respErr) {
			s.l.Warnf(ctx, "internal.form.usecase.Submit: submission %d rejected with status %d", seq, respErr.StatusCode)
			return respErr.Body
		}
		s.l.Warnf(ctx, "internal.form.usecase.Submit: submission %d failed: %v", seq, err)
		return err.Error()
	}
	if !s.base64 {
		return tok
	}
	encoded, err := base64.Encode(tok)
	if err != nil {
		s.l.Errorf(ctx, "internal.form.usecase.Submit: encode token: %v", err)
		return err.Error()
	}
	return encoded
}
