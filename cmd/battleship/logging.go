package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

// newLogger builds the CLI logger. Output that is not a terminal gets the
// logfmt formatter so it stays machine-readable.
func newLogger(level string) *log.Logger {
	return newLoggerTo(os.Stderr, level, term.IsTerminal(int(os.Stderr.Fd())))
}

func newLoggerTo(w io.Writer, level string, tty bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "battleship",
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		l.SetLevel(lvl)
	}
	if !tty {
		l.SetFormatter(log.LogfmtFormatter)
	}
	return l
}
