// Package claimset assembles JWT claim sets from the builder form's standard
// claims and its list of additional claims.
package claimset

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Assemble builds the claim set using the local time zone for zone-less dates.
func Assemble(standard StandardClaims, additional []AdditionalClaim) *ClaimSet {
	return AssembleIn(standard, additional, time.Local)
}

// AssembleIn builds the claim set. Dates without a zone are read in loc.
//
// Additional claims sharing a name are merged into a sequence in insertion
// order. Registered names are not protected: an additional "exp" turns the
// expiration into a sequence.
func AssembleIn(standard StandardClaims, additional []AdditionalClaim, loc *time.Location) *ClaimSet {
	cs := newClaimSet()
	cs.set(KeyIssuer, standard.Issuer)
	cs.set(KeyIssuedAt, ToNumericDate(standard.IssuedAt, loc))
	cs.set(KeyExpiration, ToNumericDate(standard.Expiration, loc))
	cs.set(KeyAudience, standard.Audience)
	cs.set(KeySubject, CoerceSubject(standard.Subject))

	for _, claim := range additional {
		if claim.ClaimType == "" || claim.Value == "" {
			continue
		}
		current, ok := cs.values[claim.ClaimType]
		if !ok {
			cs.set(claim.ClaimType, claim.Value)
			continue
		}
		if seq, isSeq := current.([]any); isSeq {
			cs.set(claim.ClaimType, append(seq, claim.Value))
		} else {
			cs.set(claim.ClaimType, []any{current, claim.Value})
		}
	}
	return cs
}

// CoerceSubject converts a decimal integer subject to int64 unless it starts
// with '0', which keeps identifiers like "007" intact.
func CoerceSubject(sub string) any {
	if sub == "" || strings.HasPrefix(sub, "0") {
		return sub
	}
	n, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return sub
	}
	return n
}

// Display renders the claim set as indented JSON.
func (c *ClaimSet) Display() (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", DisplayIndent)
	if err := enc.Encode(c); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
