// Package suikey decodes and encodes Sui private keys in their Bech32
// "suiprivkey" text form.
//
// The payload of a suiprivkey string is exactly 33 bytes: a scheme byte
// followed by the 32-byte secret.  Only the Ed25519 scheme (0x00) is
// supported.
package suikey

import (
	"encoding/base64"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/pkg/errors"
)

// HRP is the human-readable part of an encoded Sui private key.
const HRP = "suiprivkey"

// SecretSize is the length of an Ed25519 secret seed.
const SecretSize = 32

// Scheme is the signature scheme flag that prefixes the secret.
type Scheme byte

const SchemeEd25519 Scheme = 0x00

// Secret is a 32-byte Ed25519 seed.
type Secret [SecretSize]byte

// Base64 returns the secret in standard, padded base64.
func (s Secret) Base64() string {
	return base64.StdEncoding.EncodeToString(s[:])
}

// Decode extracts the secret from a suiprivkey string.  Surrounding
// whitespace is ignored.
func Decode(text string) (Secret, error) {
	key := strings.TrimSpace(text)
	if key == "" {
		return Secret{}, &Error{Kind: KindEmptyKey}
	}

	hrp, words, version, err := bech32.DecodeGeneric(key)
	if err != nil {
		return Secret{}, &Error{Kind: KindUndecodable, Err: err}
	}
	if hrp != HRP {
		return Secret{}, &Error{Kind: KindUnexpectedPrefix, HRP: hrp}
	}
	if version != bech32.Version0 {
		return Secret{}, &Error{Kind: KindUndecodable, Err: errors.New("bech32m checksum is not accepted")}
	}

	raw, err := bech32.ConvertBits(words, 5, 8, false)
	if err != nil {
		return Secret{}, &Error{Kind: KindUndecodable, Err: err}
	}
	return ParseRaw(hrp, raw)
}

// ParseRaw validates the regrouped payload of a Bech32 key and returns its
// secret.  The checks run in a fixed order and the first failure is
// returned.
func ParseRaw(hrp string, raw []byte) (Secret, error) {
	var s Secret
	if hrp != HRP {
		return s, &Error{Kind: KindUnexpectedPrefix, HRP: hrp}
	}
	if len(raw) == 0 {
		return s, &Error{Kind: KindEmptyPayload}
	}
	if scheme := Scheme(raw[0]); scheme != SchemeEd25519 {
		return s, &Error{Kind: KindUnsupportedScheme, Scheme: scheme}
	}
	if n := len(raw) - 1; n != SecretSize {
		return s, &Error{Kind: KindWrongSecretLength, Length: n}
	}
	copy(s[:], raw[1:])
	return s, nil
}

// ToBase64Secret converts a suiprivkey string to the base64 form of its
// 32-byte secret.
func ToBase64Secret(text string) (string, error) {
	s, err := Decode(text)
	if err != nil {
		return "", err
	}
	return s.Base64(), nil
}

// Encode returns the canonical suiprivkey string for s.
func Encode(s Secret) (string, error) {
	raw := make([]byte, 0, 1+SecretSize)
	raw = append(raw, byte(SchemeEd25519))
	raw = append(raw, s[:]...)

	words, err := bech32.ConvertBits(raw, 8, 5, true)
	if err != nil {
		return "", errors.Wrap(err, "encoding bech32 failed")
	}
	return bech32.Encode(HRP, words)
}
