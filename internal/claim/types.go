package claim

import "jwt-builder/pkg/claimset"

// AssembleInput is the raw form content.
type AssembleInput struct {
	Standard   claimset.StandardClaims
	Additional []claimset.AdditionalClaim
}

// AssembleOutput is the assembled claim set and everything derived from it.
type AssembleOutput struct {
	Claims   *claimset.ClaimSet
	Display  string
	Warnings []string
}

// FormDefaults is the state a fresh builder form starts with.
type FormDefaults struct {
	Standard   claimset.StandardClaims
	Additional []claimset.AdditionalClaim
	Key        string
	Algorithm  string
}

// Preset is a canned additional claim offered by the form.
type Preset struct {
	Name  string
	Claim claimset.AdditionalClaim
}
