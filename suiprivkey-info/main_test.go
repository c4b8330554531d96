package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	"github.com/suirifyprotocol/key-tools/internal/suikey"
)

const (
	rfc8032Key  = "suiprivkey1qzwkrvvaal745c96s390fyhv9nzygjw9d9any6gewqa6cqcu4elkqqfr3zg"
	rfc8032B64  = "nWGxne/9WmC6hEr0kuwsxERJxWl7MmkZcDusAxyuf2A="
	rfc8032Pub  = "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a"
	rfc8032Addr = "0x304af458e90e97c841685b8cbbc59b909f3e2cf150df590ada4c81452c29737d"
)

func TestDescribe(t *testing.T) {
	for _, input := range []string{rfc8032Key, rfc8032B64} {
		info, err := describe(hclog.NewNullLogger(), input)
		require.NoError(t, err)
		require.Equal(t, rfc8032Addr, info.Address)
		require.Equal(t, rfc8032Pub, info.PublicKey)
		require.Equal(t, rfc8032Key, info.Bech32)
		require.Equal(t, rfc8032B64, info.Base64)
	}
}

func TestDescribeRejects(t *testing.T) {
	_, err := describe(hclog.NewNullLogger(), "")
	require.True(t, suikey.IsKind(err, suikey.KindEmptyKey))

	_, err = describe(hclog.NewNullLogger(), "AAAA")
	require.True(t, suikey.IsKind(err, suikey.KindWrongSecretLength))
}

func TestWriteText(t *testing.T) {
	info, err := describe(hclog.NewNullLogger(), rfc8032Key)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, info.write(&out, "text"))
	require.Contains(t, out.String(), "Sui address:        "+rfc8032Addr+"\n")
	require.Contains(t, out.String(), "Public key (bytes): [215,90,152,1,130,177,10,183,")
	require.Contains(t, out.String(), "Secret (base64):    "+rfc8032B64+"\n")
}

func TestWriteJSON(t *testing.T) {
	info, err := describe(hclog.NewNullLogger(), rfc8032B64)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, info.write(&out, "json"))

	var got map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Equal(t, map[string]string{
		"address":       rfc8032Addr,
		"public_key":    rfc8032Pub,
		"suiprivkey":    rfc8032Key,
		"secret_base64": rfc8032B64,
	}, got)

	require.Error(t, info.write(&out, "yaml"))
}

func TestByteVector(t *testing.T) {
	require.Equal(t, "[]", byteVector(nil))
	require.Equal(t, "[0,7,255]", byteVector([]byte{0, 7, 255}))
}

func TestPromptForKey(t *testing.T) {
	var prompt bytes.Buffer
	key, err := promptForKey(strings.NewReader(rfc8032B64+"\n"), &prompt)
	require.NoError(t, err)
	require.Equal(t, rfc8032B64, key)
	require.Equal(t, "Paste private key: ", prompt.String())

	_, err = promptForKey(strings.NewReader(""), &prompt)
	require.EqualError(t, err, "reading key: unexpected EOF")
}
