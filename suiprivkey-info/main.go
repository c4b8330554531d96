package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/suirifyprotocol/key-tools/internal/suikey"
	"github.com/suirifyprotocol/key-tools/internal/util"
)

const progname = "suiprivkey-info"

func main() {
	app := kingpin.New(progname,
		"Show the public key and Sui address of an Ed25519 private key.\n\n"+
			"The key may be supplied as a suiprivkey... Bech32 string or as base64 (32-byte seed, 33-byte flagged seed, or 64-byte keypair).  "+
			"The program will interactively prompt for the key if it is not supplied as an argument.").
		UsageTemplate(kingpin.CompactUsageTemplate)
	logLevel := app.Flag("log-level", "Diagnostic log level.  Logs are written to standard error.").
		Default("warn").Enum(util.LogLevels...)
	format := app.Flag("format", "Output format.").Default("text").Enum("text", "json")
	key := app.Arg("key", "Private key, either suiprivkey... or base64.").String()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := util.NewLogger(progname, *logLevel, os.Stderr)

	text := *key
	if text == "" {
		var err error
		text, err = promptForKey(os.Stdin, os.Stderr)
		if err != nil {
			app.Fatalf("%v", err)
		}
	}

	info, err := describe(logger, text)
	if err != nil {
		app.Fatalf("%v", err)
	}
	if err := info.write(os.Stdout, *format); err != nil {
		app.Fatalf("%v", err)
	}
}

func promptForKey(in io.Reader, out io.Writer) (string, error) {
	key, err := util.PromptSecret("Paste private key: ", in, out)
	if err != nil {
		return "", errors.Wrap(err, "reading key")
	}
	return key, nil
}

type keyInfo struct {
	Address   string `json:"address"`
	PublicKey string `json:"public_key"`
	PublicVec []byte `json:"-"`
	Bech32    string `json:"suiprivkey"`
	Base64    string `json:"secret_base64"`
}

func describe(logger hclog.Logger, text string) (*keyInfo, error) {
	secret, err := suikey.ParseSecret(text)
	if err != nil {
		return nil, err
	}

	encoded, err := suikey.Encode(secret)
	if err != nil {
		return nil, err
	}

	pub := suikey.PublicKey(secret)
	info := &keyInfo{
		Address:   suikey.Address(pub),
		PublicKey: hex.EncodeToString(pub),
		PublicVec: pub,
		Bech32:    encoded,
		Base64:    secret.Base64(),
	}
	logger.Debug("derived public key", "address", info.Address)
	return info, nil
}

func (i *keyInfo) write(w io.Writer, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(i)
	case "text":
		_, err := fmt.Fprintf(w,
			"Sui address:        %s\n"+
				"Public key (hex):   %s\n"+
				"Public key (bytes): %s\n"+
				"Private key:        %s\n"+
				"Secret (base64):    %s\n",
			i.Address, i.PublicKey, byteVector(i.PublicVec), i.Bech32, i.Base64)
		return err
	}
	return errors.Errorf("unknown output format %q", format)
}

// byteVector formats b as a decimal list, the form Move and the Sui CLI take
// for vector<u8> arguments.
func byteVector(b []byte) string {
	v := make([]string, len(b))
	for i := range b {
		v[i] = strconv.Itoa(int(b[i]))
	}
	return "[" + strings.Join(v, ",") + "]"
}
