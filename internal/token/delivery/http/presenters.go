package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"jwt-builder/internal/token"
	"jwt-builder/pkg/errors"
)

// --- Request DTOs ---

type signReq struct {
	// Claims stays raw so numbers keep their exact text.
	Claims json.RawMessage `json:"claims" swaggertype:"object"`
	Key    string          `json:"key"`
	Alg    string          `json:"alg"`
}

func (r signReq) toInput() (token.SignInput, error) {
	claims, err := decodeClaims(r.Claims)
	if err != nil {
		return token.SignInput{}, errors.NewValidationError(http.StatusBadRequest, "claims", err.Error())
	}
	return token.SignInput{
		Claims: claims,
		Key:    r.Key,
		Alg:    r.Alg,
	}, nil
}

// decodeClaims returns nil for an absent or null claim set.
func decodeClaims(raw json.RawMessage) (map[string]any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] != '{' {
		return nil, errClaimsNotObject
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	var claims map[string]any
	if err := dec.Decode(&claims); err != nil {
		return nil, err
	}
	return claims, nil
}

type verifyReq struct {
	Token string `json:"token"`
	Key   string `json:"key"`
}

func (r verifyReq) validate() error {
	errs := errors.NewValidationErrorCollector()
	if r.Token == "" {
		errs.Add(errors.NewValidationError(http.StatusBadRequest, "token", "is required"))
	} else if strings.Count(r.Token, ".") != 2 {
		errs.Add(errors.NewValidationError(http.StatusBadRequest, "token", "must have three dot-separated segments"))
	}
	if errs.HasError() {
		return errs
	}
	return nil
}

func (r verifyReq) toInput() token.VerifyInput {
	return token.VerifyInput{Token: r.Token, Key: r.Key}
}

type keyReq struct {
	Length int `form:"length"`
}

// codecReq accepts either a single value or a raw argument list.
type codecReq struct {
	Value *string  `json:"value"`
	Args  []string `json:"args"`
}

func (r codecReq) toInput() token.CodecInput {
	if r.Args != nil {
		return token.CodecInput{Args: r.Args}
	}
	if r.Value != nil {
		return token.CodecInput{Args: []string{*r.Value}}
	}
	return token.CodecInput{}
}

// --- Response DTOs ---

// tokenResp is returned bare, outside the response envelope.
type tokenResp struct {
	Token string `json:"token"`
}

type verifyResp struct {
	Alg    string         `json:"alg"`
	Header map[string]any `json:"header"`
	Claims map[string]any `json:"claims"`
}

func (h *Handler) newVerifyResp(o token.VerifyOutput) verifyResp {
	return verifyResp{Alg: o.Alg, Header: o.Header, Claims: o.Claims}
}

type keyResp struct {
	Key    string `json:"key"`
	Length int    `json:"length"`
}

type codecResp struct {
	Value string `json:"value"`
}
