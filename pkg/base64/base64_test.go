package base64

import (
	"errors"
	"testing"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"f", "Zg=="},
		{"fo", "Zm8="},
		{"foo", "Zm9v"},
		{"foob", "Zm9vYg=="},
		{"fooba", "Zm9vYmE="},
		{"foobar", "Zm9vYmFy"},
		{"Man", "TWFu"},
		{"ÿ", "/w=="},
		{"ÿþ", "//4="},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Encode(tt.in)
			if err != nil {
				t.Fatalf("Encode(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Encode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEncode_RejectsWideRunes(t *testing.T) {
	_, err := Encode("ok€")
	if !errors.Is(err, ErrEncoding) {
		t.Fatalf("Encode() error = %v, want ErrEncoding", err)
	}
	var codecErr *Error
	if !errors.As(err, &codecErr) || codecErr.Kind != EncodingError {
		t.Fatalf("Encode() error kind = %v, want EncodingError", err)
	}
	if codecErr.Offset != 2 {
		t.Errorf("Offset = %d, want 2", codecErr.Offset)
	}
}

func TestEncodeArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr error
	}{
		{"no arguments", nil, "", ErrArgument},
		{"two arguments", []string{"a", "b"}, "", ErrArgument},
		{"one argument", []string{"Man"}, "TWFu", nil},
		{"one empty argument", []string{""}, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeArgs(tt.args...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("EncodeArgs() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("EncodeArgs() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Zg==", "f"},
		{"Zm8=", "fo"},
		{"Zm9v", "foo"},
		{"TWFu", "Man"},
		{"/w==", "ÿ"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Decode(tt.in)
			if err != nil {
				t.Fatalf("Decode(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Decode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"length not multiple of four", "TWF"},
		{"length five", "TWFuT"},
		{"character outside alphabet", "TW-u"},
		{"url-safe alphabet", "_w=="},
		{"pad in the middle", "T=Fu"},
		{"pad only", "===="},
		{"three pads", "T==="},
		{"newline", "TWF\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.in)
			if !errors.Is(err, ErrDecode) {
				t.Fatalf("Decode(%q) error = %v, want ErrDecode", tt.in, err)
			}
			var codecErr *Error
			if !errors.As(err, &codecErr) || codecErr.Kind != DecodeError {
				t.Errorf("Decode(%q) kind = %v, want DecodeError", tt.in, err)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"f",
		"fo",
		"foo",
		"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJzdWIiOiIxMjMifQ.sig",
		"The quick brown fox jumps over the lazy dog",
		"\x00\x01\x02þÿ",
		"café",
	}

	for _, in := range inputs {
		enc, err := Encode(in)
		if err != nil {
			t.Fatalf("Encode(%q) error = %v", in, err)
		}
		dec, err := Decode(enc)
		if err != nil {
			t.Fatalf("Decode(%q) error = %v", enc, err)
		}
		if dec != in {
			t.Errorf("Decode(Encode(%q)) = %q", in, dec)
		}
	}
}

func TestErrorKind_String(t *testing.T) {
	if got := DecodeError.String(); got != "DecodeError" {
		t.Errorf("String() = %q", got)
	}
	if got := ErrorKind(42).String(); got != "ErrorKind(42)" {
		t.Errorf("String() = %q", got)
	}
}
