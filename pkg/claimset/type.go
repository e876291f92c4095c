package claimset

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// StandardClaims holds the raw form values of the registered claims.
type StandardClaims struct {
	Issuer     string `json:"issuer"`
	IssuedAt   string `json:"issuedAt"`
	Expiration string `json:"expiration"`
	Audience   string `json:"audience"`
	Subject    string `json:"subject"`
}

// AdditionalClaim is one user-editable claim row.
type AdditionalClaim struct {
	ClaimType string `json:"claimType"`
	Value     string `json:"value"`
}

// NumericDate is a Unix timestamp in seconds. An unparseable input yields NaN,
// which is rendered as JSON null.
type NumericDate float64

// NaN returns the sentinel for an unparseable date.
func NaN() NumericDate {
	return NumericDate(math.NaN())
}

// IsNaN reports whether d is the unparseable-date sentinel.
func (d NumericDate) IsNaN() bool {
	return math.IsNaN(float64(d))
}

// Unix returns d as whole seconds. NaN yields 0.
func (d NumericDate) Unix() int64 {
	if d.IsNaN() {
		return 0
	}
	return int64(d)
}

func (d NumericDate) MarshalJSON() ([]byte, error) {
	if d.IsNaN() || math.IsInf(float64(d), 0) {
		return []byte("null"), nil
	}
	return strconv.AppendInt(nil, int64(d), 10), nil
}

// ClaimSet is an insertion-ordered mapping from claim name to value. Values are
// string, int64, NumericDate or []any.
type ClaimSet struct {
	keys   []string
	values map[string]any
}

func newClaimSet() *ClaimSet {
	return &ClaimSet{values: make(map[string]any)}
}

// Get returns the value stored under name.
func (c *ClaimSet) Get(name string) (any, bool) {
	v, ok := c.values[name]
	return v, ok
}

// Keys returns the claim names in insertion order.
func (c *ClaimSet) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Len returns the number of claims.
func (c *ClaimSet) Len() int {
	return len(c.keys)
}

// Map returns a copy of the claims suitable for a JWT payload. Sequences are
// copied so callers cannot alias the set.
func (c *ClaimSet) Map() map[string]any {
	out := make(map[string]any, len(c.keys))
	for _, k := range c.keys {
		v := c.values[k]
		if seq, ok := v.([]any); ok {
			cp := make([]any, len(seq))
			copy(cp, seq)
			v = cp
		}
		out[k] = v
	}
	return out
}

func (c *ClaimSet) set(name string, value any) {
	if _, ok := c.values[name]; !ok {
		c.keys = append(c.keys, name)
	}
	c.values[name] = value
}

// MarshalJSON writes the claims in insertion order without HTML escaping.
func (c *ClaimSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSON(&buf, k); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSON(&buf, c.values[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}
