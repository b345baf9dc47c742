// Package logging holds the process-wide logrus logger. Diagnostics go to
// stderr so stdout stays reserved for results.
package logging

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// Log is the shared logger. It starts at Info level.
var Log *log.Logger

// Fields is forwarded from logrus for use with WithFields.
type Fields = log.Fields

func init() {
	Log = &log.Logger{
		Out:          os.Stderr,
		Formatter:    &log.TextFormatter{FullTimestamp: true},
		Hooks:        make(log.LevelHooks),
		Level:        log.InfoLevel,
		ExitFunc:     os.Exit,
		ReportCaller: false,
	}
}

// Configure sets the level: Debug when verbose, Info otherwise. noColor
// disables ANSI colours in the text formatter.
func Configure(verbose, noColor bool) {
	Log.SetLevel(log.InfoLevel)
	if verbose {
		Log.SetLevel(log.DebugLevel)
	}
	Log.SetFormatter(&log.TextFormatter{FullTimestamp: true, DisableColors: noColor})
}

// SetOutput redirects the shared logger, mostly for tests.
func SetOutput(w io.Writer) { Log.SetOutput(w) }

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}
