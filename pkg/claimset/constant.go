package claimset

// Registered claim names seeded into every claim set.
const (
	KeyIssuer     = "iss"
	KeyIssuedAt   = "iat"
	KeyExpiration = "exp"
	KeyAudience   = "aud"
	KeySubject    = "sub"
)

// DisplayIndent is the indentation used when rendering a claim set for display.
const DisplayIndent = "    "

var reservedKeys = map[string]struct{}{
	KeyIssuer:     {},
	KeyIssuedAt:   {},
	KeyExpiration: {},
	KeyAudience:   {},
	KeySubject:    {},
}

// IsReserved reports whether name is one of the registered claims seeded by Assemble.
func IsReserved(name string) bool {
	_, ok := reservedKeys[name]
	return ok
}
