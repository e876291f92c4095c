package usecase

import (
	"bytes"
	"context"
	"encoding/json"

	"jwt-builder/internal/form"
	"jwt-builder/internal/token"
	"jwt-builder/pkg/signer"
)

type localSubmitter struct {
	uc token.UseCase
}

// NewLocalSubmitter signs in-process. The claims take the same JSON round trip
// a remote signer would see.
func NewLocalSubmitter(uc token.UseCase) form.Submitter {
	return &localSubmitter{uc: uc}
}

func (ls *localSubmitter) Submit(ctx context.Context, req signer.Request) (string, error) {
	raw, err := json.Marshal(req.Claims)
	if err != nil {
		return "", err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var claims map[string]any
	if err := dec.Decode(&claims); err != nil {
		return "", err
	}

	out, err := ls.uc.Sign(ctx, token.SignInput{Claims: claims, Key: req.Key, Alg: req.Alg})
	if err != nil {
		return "", err
	}
	return out.Token, nil
}
