package util

import (
	"bytes"
	"encoding/hex"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeKeyBase64String(t *testing.T) {
	got, err := DecodeKeyBase64String(" aGVsbG8gd29ybGQ=\n")
	require.NoError(t, err)
	require.Equal(t, []byte("hello world"), got)

	got, err = DecodeKeyBase64String("")
	require.NoError(t, err)
	require.Empty(t, got)

	for _, bad := range []string{"aGVsbG8gd29ybGQ", "aGVsbG8*d29ybGQ=", "a", "aGVsbG8gd29ybGQ=aGVs"} {
		got, err := DecodeKeyBase64String(bad)
		require.Error(t, err, bad)
		require.Nil(t, got, bad)
		require.Contains(t, err.Error(), "invalid base64")
	}
}

func TestHexPreview(t *testing.T) {
	data := []byte("hello world")
	for _, tc := range []struct {
		n    uint
		want string
	}{
		{16, "68656c6c6f20776f726c64"},
		{11, "68656c6c6f20776f726c64"},
		{4, "68656c6c"},
		{0, ""},
		{^uint(0), "68656c6c6f20776f726c64"},
	} {
		require.Equal(t, tc.want, HexPreview(data, tc.n), "n=%d", tc.n)
	}

	long := bytes.Repeat([]byte{0xff, 0x00}, 20)
	for n := 0; n <= len(long)+2; n++ {
		m := n
		if m > len(long) {
			m = len(long)
		}
		require.Equal(t, hex.EncodeToString(long[:m]), HexPreview(long, uint(n)))
	}
	require.Equal(t, "", HexPreview(nil, 16))
}

func TestReadLine(t *testing.T) {
	line, err := ReadLine(strings.NewReader("  suiprivkey1abc \nsecond\n"))
	require.NoError(t, err)
	require.Equal(t, "suiprivkey1abc", line)

	line, err = ReadLine(strings.NewReader("no newline"))
	require.NoError(t, err)
	require.Equal(t, "no newline", line)

	line, err = ReadLine(strings.NewReader("\n"))
	require.NoError(t, err)
	require.Equal(t, "", line)

	_, err = ReadLine(strings.NewReader(""))
	require.Equal(t, io.ErrUnexpectedEOF, err)
}

func TestPromptSecretWithoutTerminal(t *testing.T) {
	var out bytes.Buffer
	line, err := PromptSecret("Key: ", strings.NewReader("value\n"), &out)
	require.NoError(t, err)
	require.Equal(t, "value", line)
	require.Equal(t, "Key: ", out.String())
}

func TestNewLoggerHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("test", "warn", &buf)
	logger.Debug("hidden")
	require.Empty(t, buf.String())

	logger.Warn("shown", "bytes", 3)
	require.Contains(t, buf.String(), "shown")
	require.Contains(t, buf.String(), "bytes=3")
}
