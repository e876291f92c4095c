package keygen

import (
	"errors"
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	for _, n := range []int{1, 32, 64, 128} {
		key, err := Generate(n)
		if err != nil {
			t.Fatalf("Generate(%d) error = %v", n, err)
		}
		if len(key) != n {
			t.Errorf("len(Generate(%d)) = %d", n, len(key))
		}
		for _, r := range key {
			if !strings.ContainsRune(Charset, r) {
				t.Errorf("Generate(%d) produced %q outside the charset", n, r)
			}
		}
	}
}

func TestGenerate_InvalidLength(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := Generate(n); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("Generate(%d) error = %v, want ErrInvalidLength", n, err)
		}
	}
}

func TestGenerate_Distinct(t *testing.T) {
	a, _ := Generate(32)
	b, _ := Generate(32)
	if a == b {
		t.Errorf("two 32-character keys collided: %q", a)
	}
}
