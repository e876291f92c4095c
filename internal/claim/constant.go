package claim

import (
	"fmt"
	"time"

	"jwt-builder/pkg/claimset"
)

const (
	WarningIssuedAt   = `IssuedAt is not a valid <a href="http://www.w3.org/TR/NOTE-datetime">W3C date/time</a>. Must be formatted as: YYYY-MM-DDThh:mm:ssZ`
	WarningExpiration = `Expiration  is not a valid <a href="http://www.w3.org/TR/NOTE-datetime">W3C date/time</a>. Must be formatted as: YYYY-MM-DDThh:mm:ssZ`

	// warningReservedFormat is emitted when an additional claim lands on a registered claim.
	warningReservedFormat = `Additional claim "%s" collides with a registered claim and turns it into an array`
)

const (
	DefaultIssuer    = "Online JWT Builder"
	DefaultAudience  = "www.example.com"
	DefaultSubject   = "jrocket@example.com"
	DefaultKey       = "qwertyuiopasdfghjklzxcvbnm123456"
	DefaultAlgorithm = "HS256"

	// DefaultLifetime is how far the "one year" expiration lies ahead.
	DefaultLifetime = 365 * 24 * time.Hour
	// ShortLifetime backs the "twenty minutes" expiration.
	ShortLifetime = 20 * time.Minute
)

const (
	PresetEmail    = "email"
	PresetNetName  = "net-name"
	PresetNetRole  = "net-role"
	PresetNetEmail = "net-email"
	PresetBlank    = "blank"
)

// DefaultAdditionalClaims seeds a fresh form.
func DefaultAdditionalClaims() []claimset.AdditionalClaim {
	return []claimset.AdditionalClaim{
		{ClaimType: "GivenName", Value: "Johnny"},
		{ClaimType: "Surname", Value: "Rocket"},
		{ClaimType: "Email", Value: "jrocket@example.com"},
		{ClaimType: "Role", Value: "Manager"},
		{ClaimType: "Role", Value: "Project Administrator"},
	}
}

var presets = []Preset{
	{Name: PresetEmail, Claim: claimset.AdditionalClaim{ClaimType: "Email", Value: "bee@example.com"}},
	{Name: PresetNetName, Claim: claimset.AdditionalClaim{ClaimType: "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/name", Value: "jrocket"}},
	{Name: PresetNetRole, Claim: claimset.AdditionalClaim{ClaimType: "http://schemas.microsoft.com/ws/2008/06/identity/claims/role", Value: "Manager"}},
	{Name: PresetNetEmail, Claim: claimset.AdditionalClaim{ClaimType: "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/email", Value: "bee@example.com"}},
	{Name: PresetBlank},
}

// Presets returns the canned additional claims in menu order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// ReservedWarning formats the collision warning for name.
func ReservedWarning(name string) string {
	return fmt.Sprintf(warningReservedFormat, name)
}
