package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"jwt-builder/internal/token"
	"jwt-builder/pkg/jwt"
	"jwt-builder/pkg/keygen"
	"jwt-builder/pkg/log"
)

func newTestUseCase() token.UseCase {
	return New(log.NewNop(), jwt.New())
}

func TestSign(t *testing.T) {
	uc := newTestUseCase()
	claims := map[string]any{"iss": "Online JWT Builder", "Role": []any{"A", "B"}}

	tests := []struct {
		name    string
		input   token.SignInput
		wantErr error
	}{
		{"HS256", token.SignInput{Claims: claims, Key: "secret", Alg: "HS256"}, nil},
		{"HS512", token.SignInput{Claims: claims, Key: "secret", Alg: "HS512"}, nil},
		{"empty claims allowed", token.SignInput{Claims: map[string]any{}, Key: "secret", Alg: "HS384"}, nil},
		{"unsupported", token.SignInput{Claims: claims, Key: "secret", Alg: "RS256"}, token.ErrUnsupportedAlgorithm},
		{"missing key", token.SignInput{Claims: claims, Alg: "HS256"}, token.ErrMissingKey},
		{"missing claims", token.SignInput{Key: "secret", Alg: "HS256"}, token.ErrMissingClaims},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.Sign(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Sign() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && strings.Count(out.Token, ".") != 2 {
				t.Errorf("Sign() token = %q, want three segments", out.Token)
			}
		})
	}
}

func TestVerify(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	signed, err := uc.Sign(ctx, token.SignInput{Claims: map[string]any{"sub": "x", "exp": 1}, Key: "k", Alg: "HS384"})
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	out, err := uc.Verify(ctx, token.VerifyInput{Token: signed.Token, Key: "k"})
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if out.Alg != "HS384" || out.Claims["sub"] != "x" {
		t.Errorf("Verify() = %+v", out)
	}

	if _, err := uc.Verify(ctx, token.VerifyInput{Token: signed.Token, Key: "other"}); !errors.Is(err, token.ErrInvalidToken) {
		t.Errorf("Verify(wrong key) error = %v, want ErrInvalidToken", err)
	}
	if _, err := uc.Verify(ctx, token.VerifyInput{Token: signed.Token}); !errors.Is(err, token.ErrMissingKey) {
		t.Errorf("Verify(no key) error = %v, want ErrMissingKey", err)
	}
}

func TestGenerateKey(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	tests := []struct {
		name    string
		length  int
		wantLen int
		wantErr error
	}{
		{"default", 0, 32, nil},
		{"explicit", 64, 64, nil},
		{"max", 512, 512, nil},
		{"too long", 513, 0, token.ErrInvalidKeyLength},
		{"negative", -1, 0, token.ErrInvalidKeyLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := uc.GenerateKey(ctx, tt.length)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("GenerateKey(%d) error = %v, want %v", tt.length, err, tt.wantErr)
			}
			if len(key) != tt.wantLen {
				t.Errorf("len(GenerateKey(%d)) = %d, want %d", tt.length, len(key), tt.wantLen)
			}
			for _, r := range key {
				if !strings.ContainsRune(keygen.Charset, r) {
					t.Fatalf("key contains %q", r)
				}
			}
		})
	}
}

func TestCodec(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	enc, err := uc.Encode(ctx, token.CodecInput{Args: []string{"a.b.c"}})
	if err != nil || enc.Value != "YS5iLmM=" {
		t.Fatalf("Encode() = %q, %v", enc.Value, err)
	}
	dec, err := uc.Decode(ctx, token.CodecInput{Args: []string{enc.Value}})
	if err != nil || dec.Value != "a.b.c" {
		t.Fatalf("Decode() = %q, %v", dec.Value, err)
	}

	errTests := []struct {
		name    string
		fn      func(context.Context, token.CodecInput) (token.CodecOutput, error)
		args    []string
		wantErr error
	}{
		{"encode arity", uc.Encode, []string{"a", "b"}, token.ErrArgument},
		{"encode no args", uc.Encode, nil, token.ErrArgument},
		{"encode wide rune", uc.Encode, []string{"€"}, token.ErrEncoding},
		{"decode arity", uc.Decode, nil, token.ErrArgument},
		{"decode bad length", uc.Decode, []string{"abc"}, token.ErrDecoding},
		{"decode bad alphabet", uc.Decode, []string{"ab*="}, token.ErrDecoding},
	}
	for _, tt := range errTests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.fn(ctx, token.CodecInput{Args: tt.args}); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
