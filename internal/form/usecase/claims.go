package usecase

import (
	"context"
	"errors"

	"jwt-builder/internal/claim"
	"jwt-builder/internal/form"

	"github.com/google/uuid"
)

func (s *implSession) AddClaim(ctx context.Context, claimType, value string) (string, error) {
	id := uuid.NewString()
	err := s.update(ctx, func() error {
		s.additional = append(s.additional, form.Claim{ID: id, ClaimType: claimType, Value: value})
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *implSession) AddPreset(ctx context.Context, name string) (string, error) {
	p, err := s.claimUC.Preset(ctx, name)
	if err != nil {
		if errors.Is(err, claim.ErrPresetNotFound) {
			return "", form.ErrPresetNotFound
		}
		return "", err
	}
	return s.AddClaim(ctx, p.Claim.ClaimType, p.Claim.Value)
}

func (s *implSession) UpdateClaim(ctx context.Context, id, claimType, value string) error {
	return s.update(ctx, func() error {
		i := s.indexOf(id)
		if i < 0 {
			return form.ErrClaimNotFound
		}
		s.additional[i].ClaimType = claimType
		s.additional[i].Value = value
		return nil
	})
}

func (s *implSession) RemoveClaim(ctx context.Context, id string) error {
	return s.update(ctx, func() error {
		i := s.indexOf(id)
		if i < 0 {
			return form.ErrClaimNotFound
		}
		s.additional = append(s.additional[:i], s.additional[i+1:]...)
		return nil
	})
}

func (s *implSession) ClearClaims(ctx context.Context) error {
	return s.update(ctx, func() error {
		s.additional = nil
		return nil
	})
}

func (s *implSession) indexOf(id string) int {
	for i, c := range s.additional {
		if c.ID == id {
			return i
		}
	}
	return -1
}
