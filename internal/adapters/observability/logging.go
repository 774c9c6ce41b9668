package observability

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns the process logger. dev/development gets a console writer
// at debug with caller info; anything else writes JSON at info.
func NewLogger(env string) zerolog.Logger {
	return newLogger(env, os.Stdout)
}

func newLogger(env string, out io.Writer) zerolog.Logger {
	switch env {
	case "dev", "development":
		return zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Caller().Logger()
	default:
		return zerolog.New(out).Level(zerolog.InfoLevel).
			With().Timestamp().Str("service", "daypass").Str("env", env).Logger()
	}
}
