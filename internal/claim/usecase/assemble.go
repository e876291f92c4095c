package usecase

import (
	"context"

	"jwt-builder/internal/claim"
	"jwt-builder/pkg/claimset"
)

func (uc *implUseCase) Assemble(ctx context.Context, input claim.AssembleInput) (claim.AssembleOutput, error) {
	cs := claimset.AssembleIn(input.Standard, input.Additional, uc.loc)

	display, err := cs.Display()
	if err != nil {
		uc.l.Errorf(ctx, "internal.claim.usecase.Assemble.Display: %v", err)
		return claim.AssembleOutput{}, claim.ErrRenderFailed
	}

	return claim.AssembleOutput{
		Claims:   cs,
		Display:  display,
		Warnings: uc.warnings(input),
	}, nil
}

// warnings never block assembly; they are shown next to the form.
func (uc *implUseCase) warnings(input claim.AssembleInput) []string {
	warnings := []string{}
	if _, ok := claimset.ParseTimestamp(input.Standard.IssuedAt, uc.loc); !ok {
		warnings = append(warnings, claim.WarningIssuedAt)
	}
	if _, ok := claimset.ParseTimestamp(input.Standard.Expiration, uc.loc); !ok {
		warnings = append(warnings, claim.WarningExpiration)
	}

	seen := make(map[string]struct{})
	for _, c := range input.Additional {
		if c.ClaimType == "" || c.Value == "" || !claimset.IsReserved(c.ClaimType) {
			continue
		}
		if _, dup := seen[c.ClaimType]; dup {
			continue
		}
		seen[c.ClaimType] = struct{}{}
		warnings = append(warnings, claim.ReservedWarning(c.ClaimType))
	}
	return warnings
}
