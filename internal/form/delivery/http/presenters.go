package http

import (
	"encoding/json"

	"jwt-builder/internal/form"
	"jwt-builder/pkg/claimset"
)

const (
	ActionSetIssuer                 = "set_issuer"
	ActionSetIssuedAt               = "set_issued_at"
	ActionSetExpiration             = "set_expiration"
	ActionSetAudience               = "set_audience"
	ActionSetSubject                = "set_subject"
	ActionIssuedAtNow               = "issued_at_now"
	ActionExpirationNow             = "expiration_now"
	ActionExpirationInTwentyMinutes = "expiration_twenty_minutes"
	ActionExpirationInOneYear       = "expiration_one_year"
	ActionAddClaim                  = "add_claim"
	ActionAddPreset                 = "add_preset"
	ActionUpdateClaim               = "update_claim"
	ActionRemoveClaim               = "remove_claim"
	ActionClearClaims               = "clear_claims"
	ActionSetKey                    = "set_key"
	ActionGenerateKey               = "generate_key"
	ActionSelectAlgorithm           = "select_algorithm"
	ActionToggleBase64              = "toggle_base64"
	ActionSubmit                    = "submit"
	ActionSnapshot                  = "snapshot"
)

const (
	MessageTypeSnapshot = "snapshot"
	MessageTypeError    = "error"
)

// --- Inbound ---

type actionReq struct {
	Action    string `json:"action"`
	Value     string `json:"value"`
	ID        string `json:"id"`
	ClaimType string `json:"claimType"`
	Name      string `json:"name"`
	Length    int    `json:"length"`
}

// --- Outbound ---

type claimResp struct {
	ID        string `json:"id"`
	ClaimType string `json:"claimType"`
	Value     string `json:"value"`
}

type snapshotResp struct {
	ID               string                  `json:"id"`
	StandardClaims   claimset.StandardClaims `json:"standardClaims"`
	AdditionalClaims []claimResp             `json:"additionalClaims"`
	Key              string                  `json:"key"`
	KeyLength        int                     `json:"keyLength"`
	Algorithm        string                  `json:"selectedAlgorithm"`
	Algorithms       []string                `json:"algorithms"`
	Base64           bool                    `json:"isBase64Encoding"`
	ClaimSet         json.Marshaler          `json:"generatedClaimSet"`
	Display          string                  `json:"generatedClaimSetDisplay"`
	Warnings         []string                `json:"warnings"`
	CreatedJwt       string                  `json:"createdJwt"`
	Pending          int                     `json:"pending"`
}

func newSnapshotResp(s form.Snapshot) snapshotResp {
	claims := make([]claimResp, 0, len(s.Additional))
	for _, c := range s.Additional {
		claims = append(claims, claimResp{ID: c.ID, ClaimType: c.ClaimType, Value: c.Value})
	}
	return snapshotResp{
		ID:               s.ID,
		StandardClaims:   s.Standard,
		AdditionalClaims: claims,
		Key:              s.Key,
		KeyLength:        s.KeyLength,
		Algorithm:        s.Algorithm,
		Algorithms:       s.Algorithms,
		Base64:           s.Base64,
		ClaimSet:         s.Claims,
		Display:          s.Display,
		Warnings:         s.Warnings,
		CreatedJwt:       s.CreatedJwt,
		Pending:          s.Pending,
	}
}

type message struct {
	Type    string `json:"type"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func snapshotMessage(s form.Snapshot) ([]byte, error) {
	return json.Marshal(message{Type: MessageTypeSnapshot, Data: newSnapshotResp(s)})
}

func errorMessage(text string) ([]byte, error) {
	return json.Marshal(message{Type: MessageTypeError, Message: text})
}
