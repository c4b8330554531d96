package util

import (
	"io"

	hclog "github.com/hashicorp/go-hclog"
)

// LogLevels are the values accepted by the --log-level flag.
var LogLevels = []string{"trace", "debug", "info", "warn", "error"}

// NewLogger returns a logger for progname.  Diagnostics go to w, normally
// standard error, so that standard output carries only results.
func NewLogger(progname, level string, w io.Writer) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   progname,
		Level:  hclog.LevelFromString(level),
		Output: w,
	})
}
