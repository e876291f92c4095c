package base64

import (
	"errors"
	"fmt"
)

// ErrorKind classifies codec failures.
type ErrorKind uint8

const (
	// EncodingError: an input rune is outside [0,255].
	EncodingError ErrorKind = iota + 1
	// DecodeError: bad length or a character outside the alphabet.
	DecodeError
	// ArgumentError: the arity-checked entry point got other than one argument.
	ArgumentError
)

func (k ErrorKind) String() string {
	switch k {
	case EncodingError:
		return "EncodingError"
	case DecodeError:
		return "DecodeError"
	case ArgumentError:
		return "ArgumentError"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

var (
	ErrEncoding = errors.New("base64: invalid character")
	ErrDecode   = errors.New("base64: cannot decode")
	ErrArgument = errors.New("base64: expected exactly one argument")
)

// Error is returned by every codec function.
type Error struct {
	Kind ErrorKind
	// Offset is the input position that failed, or -1 when not applicable.
	Offset int
}

func (e *Error) Error() string {
	base := e.sentinel().Error()
	if e.Offset < 0 {
		return base
	}
	return fmt.Sprintf("%s at offset %d", base, e.Offset)
}

// Is matches the kind sentinels.
func (e *Error) Is(target error) bool {
	return target == e.sentinel()
}

func (e *Error) sentinel() error {
	switch e.Kind {
	case EncodingError:
		return ErrEncoding
	case ArgumentError:
		return ErrArgument
	default:
		return ErrDecode
	}
}

func newError(kind ErrorKind, offset int) *Error {
	return &Error{Kind: kind, Offset: offset}
}
