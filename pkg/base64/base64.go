// Package base64 encodes and decodes byte-valued strings with the standard
// RFC 4648 alphabet. A byte-valued string is one whose runes all lie in
// [0,255]; each rune stands for one byte.
package base64

import (
	stdbase64 "encoding/base64"
	"strings"
)

const (
	// Alphabet is the standard RFC 4648 alphabet.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	// PadChar pads a trailing partial group.
	PadChar = '='
)

var encoding = stdbase64.StdEncoding

// Encode returns the base64 form of s. It fails with an EncodingError when a
// rune of s is above 255.
func Encode(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	raw, err := toBytes(s)
	if err != nil {
		return "", err
	}
	return encoding.EncodeToString(raw), nil
}

// EncodeArgs is Encode behind an arity check: anything but a single argument
// fails with an ArgumentError.
func EncodeArgs(args ...string) (string, error) {
	if len(args) != 1 {
		return "", newError(ArgumentError, -1)
	}
	return Encode(args[0])
}

// Decode reverses Encode. The empty string decodes to itself. The input length
// must be a multiple of 4 and every character must belong to the alphabet,
// except for one or two trailing pad characters.
func Decode(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	if len(s)%4 != 0 {
		return "", newError(DecodeError, -1)
	}
	if err := validate(s); err != nil {
		return "", err
	}
	raw, err := encoding.DecodeString(s)
	if err != nil {
		return "", newError(DecodeError, -1)
	}
	return fromBytes(raw), nil
}

func validate(s string) error {
	n := len(s)
	pads := 0
	if s[n-1] == PadChar {
		pads = 1
		if s[n-2] == PadChar {
			pads = 2
		}
	}
	for i := 0; i < n-pads; i++ {
		if strings.IndexByte(Alphabet, s[i]) < 0 {
			return newError(DecodeError, i)
		}
	}
	return nil
}

func toBytes(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for i, r := range s {
		if r > 0xff {
			return nil, newError(EncodingError, i)
		}
		out = append(out, byte(r))
	}
	return out, nil
}

func fromBytes(raw []byte) string {
	var sb strings.Builder
	sb.Grow(len(raw))
	for _, b := range raw {
		sb.WriteRune(rune(b))
	}
	return sb.String()
}
