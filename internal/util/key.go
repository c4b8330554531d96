package util

import (
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

// DecodeKeyBase64String decodes standard, padded base64 after trimming
// surrounding whitespace.  Malformed input is an error; no partially decoded
// prefix is ever returned.
func DecodeKeyBase64String(key string) ([]byte, error) {
	decoded, err := decodeKeyBase64([]byte(strings.TrimSpace(key)))
	if err != nil {
		return nil, errors.Wrap(err, "invalid base64")
	}
	return decoded, nil
}

func decodeKeyBase64(key []byte) ([]byte, error) {
	length := base64.StdEncoding.DecodedLen(len(key))
	decoded := make([]byte, length)
	n, err := base64.StdEncoding.Decode(decoded, key)
	if err != nil {
		return nil, err
	}
	return decoded[0:n], nil
}

// HexPreview returns the lowercase hex encoding of at most n leading bytes of
// data.
func HexPreview(data []byte, n uint) string {
	if n > uint(len(data)) {
		n = uint(len(data))
	}
	return hex.EncodeToString(data[:n])
}
