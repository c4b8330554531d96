package suikey

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies why a key was rejected.
type Kind int

const (
	KindEmptyKey Kind = iota + 1
	KindUndecodable
	KindUnexpectedPrefix
	KindEmptyPayload
	KindUnsupportedScheme
	KindWrongSecretLength
)

func (k Kind) String() string {
	switch k {
	case KindEmptyKey:
		return "empty key"
	case KindUndecodable:
		return "undecodable payload"
	case KindUnexpectedPrefix:
		return "unexpected prefix"
	case KindEmptyPayload:
		return "empty payload"
	case KindUnsupportedScheme:
		return "unsupported scheme"
	case KindWrongSecretLength:
		return "wrong secret length"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is returned for every key that fails validation.  Only the fields
// relevant to Kind are set.
type Error struct {
	Kind   Kind
	HRP    string
	Scheme Scheme
	Length int
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindEmptyKey:
		return "empty key provided"
	case KindUndecodable:
		if e.Err != nil {
			return fmt.Sprintf("unable to decode Bech32 payload: %v", e.Err)
		}
		return "unable to decode Bech32 payload"
	case KindUnexpectedPrefix:
		return fmt.Sprintf("unexpected HRP %q; expected %q", e.HRP, HRP)
	case KindEmptyPayload:
		return "Bech32 payload is empty"
	case KindUnsupportedScheme:
		return fmt.Sprintf("unsupported key scheme byte 0x%02x; expected 0x%02x for Ed25519", byte(e.Scheme), byte(SchemeEd25519))
	case KindWrongSecretLength:
		return fmt.Sprintf("secret length is %d bytes; expected exactly %d bytes", e.Length, SecretSize)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err, or any error it wraps, is an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == k
}
