package form

import (
	"context"

	"jwt-builder/pkg/signer"
)

// UseCase opens builder form sessions and keeps track of the live ones.
type UseCase interface {
	NewSession(ctx context.Context) (Session, error)
	CloseSession(ctx context.Context, id string)
	GetStats(ctx context.Context) Stats
}

// Session is one live builder form. Every input change recomputes the claim
// set and clears the created token. Implementations are safe for concurrent use.
type Session interface {
	ID() string

	SetIssuer(ctx context.Context, v string) error
	SetIssuedAt(ctx context.Context, v string) error
	SetExpiration(ctx context.Context, v string) error
	SetAudience(ctx context.Context, v string) error
	SetSubject(ctx context.Context, v string) error
	IssuedAtNow(ctx context.Context) error
	ExpirationNow(ctx context.Context) error
	ExpirationInTwentyMinutes(ctx context.Context) error
	ExpirationInOneYear(ctx context.Context) error

	AddClaim(ctx context.Context, claimType, value string) (string, error)
	AddPreset(ctx context.Context, name string) (string, error)
	UpdateClaim(ctx context.Context, id, claimType, value string) error
	RemoveClaim(ctx context.Context, id string) error
	ClearClaims(ctx context.Context) error

	SetKey(ctx context.Context, key string) error
	GenerateKey(ctx context.Context, length int) error
	SelectAlgorithm(ctx context.Context, alg string) error
	ToggleBase64(ctx context.Context) error

	// Submit signs the current claim set and returns the text now on display.
	// Failures are displayed, never returned.
	Submit(ctx context.Context) string

	Snapshot() Snapshot
	// Subscribe registers o for every change. Observers run synchronously and
	// must not call back into the session's mutators.
	Subscribe(o Observer) (unsubscribe func())
}

// Observer receives the session state after each change.
type Observer func(Snapshot)

// Submitter sends a claim set to be signed.
type Submitter interface {
	Submit(ctx context.Context, req signer.Request) (string, error)
}
