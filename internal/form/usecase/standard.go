package usecase

import (
	"context"
	"time"

	"jwt-builder/internal/claim"
	"jwt-builder/pkg/claimset"
)

func (s *implSession) SetIssuer(ctx context.Context, v string) error {
	return s.update(ctx, func() error {
		s.standard.Issuer = v
		return nil
	})
}

func (s *implSession) SetIssuedAt(ctx context.Context, v string) error {
	return s.update(ctx, func() error {
		s.standard.IssuedAt = v
		return nil
	})
}

func (s *implSession) SetExpiration(ctx context.Context, v string) error {
	return s.update(ctx, func() error {
		s.standard.Expiration = v
		return nil
	})
}

func (s *implSession) SetAudience(ctx context.Context, v string) error {
	return s.update(ctx, func() error {
		s.standard.Audience = v
		return nil
	})
}

func (s *implSession) SetSubject(ctx context.Context, v string) error {
	return s.update(ctx, func() error {
		s.standard.Subject = v
		return nil
	})
}

func (s *implSession) IssuedAtNow(ctx context.Context) error {
	return s.SetIssuedAt(ctx, claimset.FormatTimestamp(s.clock()))
}

func (s *implSession) ExpirationNow(ctx context.Context) error {
	return s.setExpirationIn(ctx, 0)
}

func (s *implSession) ExpirationInTwentyMinutes(ctx context.Context) error {
	return s.setExpirationIn(ctx, claim.ShortLifetime)
}

func (s *implSession) ExpirationInOneYear(ctx context.Context) error {
	return s.setExpirationIn(ctx, claim.DefaultLifetime)
}

func (s *implSession) setExpirationIn(ctx context.Context, d time.Duration) error {
	return s.SetExpiration(ctx, claimset.FormatTimestamp(s.clock().Add(d)))
}
