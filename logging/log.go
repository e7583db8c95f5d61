package logging

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Logger is the process-wide logger. It writes to stderr so that stdout
// carries matched lines only.
var Logger zerolog.Logger

func init() {
	noColor := !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd())
	Logger = New(os.Stderr, noColor)
}

// New returns a console logger at info level writing to w.
func New(w io.Writer, noColor bool) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    noColor,
		TimeFormat: time.RFC3339,
	}).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()
}

func With() zerolog.Context {
	return Logger.With()
}

func Debug() *zerolog.Event {
	return Logger.Debug()
}

func Warn() *zerolog.Event {
	return Logger.Warn()
}

func Fatal() *zerolog.Event {
	return Logger.Fatal()
}
