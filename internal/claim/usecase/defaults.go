package usecase

import (
	"context"

	"jwt-builder/internal/claim"
	"jwt-builder/pkg/claimset"
)

func (uc *implUseCase) Defaults(ctx context.Context) claim.FormDefaults {
	now := uc.clock()
	return claim.FormDefaults{
		Standard: claimset.StandardClaims{
			Issuer:     claim.DefaultIssuer,
			IssuedAt:   claimset.FormatTimestamp(now),
			Expiration: claimset.FormatTimestamp(now.Add(claim.DefaultLifetime)),
			Audience:   claim.DefaultAudience,
			Subject:    claim.DefaultSubject,
		},
		Additional: claim.DefaultAdditionalClaims(),
		Key:        claim.DefaultKey,
		Algorithm:  claim.DefaultAlgorithm,
	}
}

func (uc *implUseCase) Presets(ctx context.Context) []claim.Preset {
	return claim.Presets()
}

func (uc *implUseCase) Preset(ctx context.Context, name string) (claim.Preset, error) {
	for _, p := range claim.Presets() {
		if p.Name == name {
			return p, nil
		}
	}
	return claim.Preset{}, claim.ErrPresetNotFound
}
