package http

import (
	"encoding/json"

	"jwt-builder/internal/claim"
	"jwt-builder/pkg/claimset"
)

// --- Request DTOs ---

type standardReq struct {
	Issuer     string `json:"issuer"`
	IssuedAt   string `json:"issuedAt"`
	Expiration string `json:"expiration"`
	Audience   string `json:"audience"`
	Subject    string `json:"subject"`
}

type claimReq struct {
	ClaimType string `json:"claimType"`
	Value     string `json:"value"`
}

type assembleReq struct {
	StandardClaims   standardReq `json:"standardClaims"`
	AdditionalClaims []claimReq  `json:"additionalClaims"`
}

func (r assembleReq) toInput() claim.AssembleInput {
	additional := make([]claimset.AdditionalClaim, 0, len(r.AdditionalClaims))
	for _, c := range r.AdditionalClaims {
		additional = append(additional, claimset.AdditionalClaim{ClaimType: c.ClaimType, Value: c.Value})
	}
	return claim.AssembleInput{
		Standard: claimset.StandardClaims{
			Issuer:     r.StandardClaims.Issuer,
			IssuedAt:   r.StandardClaims.IssuedAt,
			Expiration: r.StandardClaims.Expiration,
			Audience:   r.StandardClaims.Audience,
			Subject:    r.StandardClaims.Subject,
		},
		Additional: additional,
	}
}

// --- Response DTOs ---

type assembleResp struct {
	// Claims keeps insertion order through ClaimSet.MarshalJSON.
	Claims   json.Marshaler `json:"claims" swaggertype:"object"`
	Display  string         `json:"display"`
	Warnings []string       `json:"warnings"`
}

func (h *Handler) newAssembleResp(o claim.AssembleOutput) assembleResp {
	return assembleResp{
		Claims:   o.Claims,
		Display:  o.Display,
		Warnings: o.Warnings,
	}
}

type defaultsResp struct {
	StandardClaims   standardReq `json:"standardClaims"`
	AdditionalClaims []claimReq  `json:"additionalClaims"`
	Key              string      `json:"key"`
	Algorithm        string      `json:"algorithm"`
}

func (h *Handler) newDefaultsResp(d claim.FormDefaults) defaultsResp {
	return defaultsResp{
		StandardClaims: standardReq{
			Issuer:     d.Standard.Issuer,
			IssuedAt:   d.Standard.IssuedAt,
			Expiration: d.Standard.Expiration,
			Audience:   d.Standard.Audience,
			Subject:    d.Standard.Subject,
		},
		AdditionalClaims: toClaimResps(d.Additional),
		Key:              d.Key,
		Algorithm:        d.Algorithm,
	}
}

type presetResp struct {
	Name      string `json:"name"`
	ClaimType string `json:"claimType"`
	Value     string `json:"value"`
}

func (h *Handler) newPresetResp(p claim.Preset) presetResp {
	return presetResp{Name: p.Name, ClaimType: p.Claim.ClaimType, Value: p.Claim.Value}
}

func (h *Handler) newPresetsResp(ps []claim.Preset) []presetResp {
	out := make([]presetResp, 0, len(ps))
	for _, p := range ps {
		out = append(out, h.newPresetResp(p))
	}
	return out
}

func toClaimResps(cs []claimset.AdditionalClaim) []claimReq {
	out := make([]claimReq, 0, len(cs))
	for _, c := range cs {
		out = append(out, claimReq{ClaimType: c.ClaimType, Value: c.Value})
	}
	return out
}
