package main

import (
	"fmt"
	"io"
	"os"

	hclog "github.com/hashicorp/go-hclog"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/suirifyprotocol/key-tools/internal/util"
)

const progname = "base64-inspect"

func main() {
	app := kingpin.New(progname,
		"Decode a base64 string, report the byte length, and show a hex preview of the first few bytes.").
		UsageTemplate(kingpin.CompactUsageTemplate)
	logLevel := app.Flag("log-level", "Diagnostic log level.  Logs are written to standard error.").
		Default("warn").Enum(util.LogLevels...)
	previewBytes := app.Flag("preview-bytes", "Number of leading bytes to show in hex.").
		Short('n').Default("16").Uint()
	value := app.Arg("value", "Base64-encoded string to inspect.").Required().String()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := util.NewLogger(progname, *logLevel, os.Stderr)
	if err := inspect(os.Stdout, logger, *value, *previewBytes); err != nil {
		app.Fatalf("%v", err)
	}
}

func inspect(w io.Writer, logger hclog.Logger, value string, previewBytes uint) error {
	data, err := util.DecodeKeyBase64String(value)
	if err != nil {
		return err
	}
	logger.Debug("decoded value", "bytes", len(data), "preview", previewBytes)

	_, err = fmt.Fprintf(w, "%d bytes -> %s...\n", len(data), util.HexPreview(data, previewBytes))
	return err
}
