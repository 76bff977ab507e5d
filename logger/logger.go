// Package logger wraps zerolog.Logger with the constructors and
// context helpers the site uses.
package logger

import (
	"context"
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger so the full zerolog API is available.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger on stdout tagged with role
// (e.g. "server", "seed").
func NewLogger(role string) *Logger {
	return New(os.Stdout, role)
}

// setupGlobals configures the zerolog package-level caller settings once.
var setupGlobals sync.Once

// New returns a logger writing JSON entries to w. Every entry carries a
// "role" field, a timestamp and the calling function name under "func".
func New(w io.Writer, role string) *Logger {
	setupGlobals.Do(func() {
		zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
			return runtime.FuncForPC(pc).Name()
		}
		zerolog.CallerFieldName = "func"
	})

	l := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()
	return &Logger{l}
}

// Nop returns a logger that discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// FromContext returns the logger stored in ctx by WithContext. zerolog
// falls back to a disabled logger when none is stored, so the result is
// never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// WithContext returns a copy of ctx carrying l.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}
