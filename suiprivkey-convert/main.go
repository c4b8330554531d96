package main

import (
	"fmt"
	"io"
	"os"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/suirifyprotocol/key-tools/internal/suikey"
	"github.com/suirifyprotocol/key-tools/internal/util"
)

const progname = "suiprivkey-convert"

func main() {
	app := kingpin.New(progname,
		"Convert a suiprivkey... Bech32 private key into the base64-encoded 32-byte secret expected by ENCLAVE_PRIVATE_KEY_B64.\n\n"+
			"The program will interactively prompt for the key if it is not supplied as an argument.").
		UsageTemplate(kingpin.CompactUsageTemplate)
	logLevel := app.Flag("log-level", "Diagnostic log level.  Logs are written to standard error.").
		Default("warn").Enum(util.LogLevels...)
	key := app.Arg("key", "Bech32 private key starting with suiprivkey...").String()

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

	if err := convert(os.Stdout, logger, text); err != nil {
		app.Fatalf("%v", err)
	}
}

func promptForKey(in io.Reader, out io.Writer) (string, error) {
	key, err := util.PromptSecret("Paste suiprivkey... key: ", in, out)
	if err != nil {
		return "", errors.Wrap(err, "reading key")
	}
	return key, nil
}

func convert(w io.Writer, logger hclog.Logger, text string) error {
	secret, err := suikey.Decode(text)
	if err != nil {
		var kerr *suikey.Error
		if errors.As(err, &kerr) {
			logger.Debug("key rejected", "reason", kerr.Kind.String())
		}
		return err
	}
	logger.Debug("key decoded", "hrp", suikey.HRP, "scheme", "ed25519")

	_, err = fmt.Fprintln(w, secret.Base64())
	return err
}
