package http

import (
	"context"

	"jwt-builder/internal/form"
)

// dispatch applies one inbound action to the session. Submit runs in the
// background so later actions are not held up by the signer.
func (h *Handler) dispatch(ctx context.Context, s form.Session, req actionReq, c *connection) error {
	switch req.Action {
	case ActionSetIssuer:
		return s.SetIssuer(ctx, req.Value)
	case ActionSetIssuedAt:
		return s.SetIssuedAt(ctx, req.Value)
	case ActionSetExpiration:
		return s.SetExpiration(ctx, req.Value)
	case ActionSetAudience:
		return s.SetAudience(ctx, req.Value)
	case ActionSetSubject:
		return s.SetSubject(ctx, req.Value)
	case ActionIssuedAtNow:
		return s.IssuedAtNow(ctx)
	case ActionExpirationNow:
		return s.ExpirationNow(ctx)
	case ActionExpirationInTwentyMinutes:
		return s.ExpirationInTwentyMinutes(ctx)
	case ActionExpirationInOneYear:
		return s.ExpirationInOneYear(ctx)
	case ActionAddClaim:
		_, err := s.AddClaim(ctx, req.ClaimType, req.Value)
		return err
	case ActionAddPreset:
		_, err := s.AddPreset(ctx, req.Name)
		return err
	case ActionUpdateClaim:
		return s.UpdateClaim(ctx, req.ID, req.ClaimType, req.Value)
	case ActionRemoveClaim:
		return s.RemoveClaim(ctx, req.ID)
	case ActionClearClaims:
		return s.ClearClaims(ctx)
	case ActionSetKey:
		return s.SetKey(ctx, req.Value)
	case ActionGenerateKey:
		return s.GenerateKey(ctx, req.Length)
	case ActionSelectAlgorithm:
		return s.SelectAlgorithm(ctx, req.Value)
	case ActionToggleBase64:
		return s.ToggleBase64(ctx)
	case ActionSubmit:
		go s.Submit(ctx)
		return nil
	case ActionSnapshot:
		c.pushSnapshot(s.Snapshot())
		return nil
	}
	return errUnknownAction
}
