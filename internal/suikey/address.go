package suikey

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// ParseSecret accepts either a suiprivkey string or a base64 value.  Base64
// input may hold the bare 32-byte seed, the seed prefixed by its scheme
// byte, or a 64-byte seed||public key pair.
func ParseSecret(text string) (Secret, error) {
	key := strings.TrimSpace(text)
	if key == "" {
		return Secret{}, &Error{Kind: KindEmptyKey}
	}
	if strings.HasPrefix(strings.ToLower(key), HRP) {
		return Decode(key)
	}

	raw, err := base64.StdEncoding.DecodeString(key)
	if err != nil {
		return Secret{}, &Error{Kind: KindUndecodable, Err: err}
	}

	var s Secret
	switch len(raw) {
	case 0:
		return s, &Error{Kind: KindEmptyPayload}
	case SecretSize:
		copy(s[:], raw)
	case 1 + SecretSize:
		return ParseRaw(HRP, raw)
	case ed25519.PrivateKeySize:
		copy(s[:], raw[:SecretSize])
	default:
		return s, &Error{Kind: KindWrongSecretLength, Length: len(raw)}
	}
	return s, nil
}

// PublicKey derives the Ed25519 public key of s.
func PublicKey(s Secret) ed25519.PublicKey {
	priv := ed25519.NewKeyFromSeed(s[:])
	return priv.Public().(ed25519.PublicKey)
}

// Address returns the Sui address of an Ed25519 public key: the BLAKE2b-256
// digest of the scheme byte followed by the key.
func Address(pub ed25519.PublicKey) string {
	buf := make([]byte, 0, 1+len(pub))
	buf = append(buf, byte(SchemeEd25519))
	buf = append(buf, pub...)
	sum := blake2b.Sum256(buf)
	return "0x" + hex.EncodeToString(sum[:])
}
