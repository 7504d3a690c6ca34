// Package logging provides structured logging setup for cnk.
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// Setup initializes the default slog logger on stderr.
// Dev mode uses colored tint output at debug level; prod uses JSON at info.
func Setup(devMode bool) {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, devMode)))
}

// NewHandler builds the handler Setup installs, writing to w.
func NewHandler(w io.Writer, devMode bool) slog.Handler {
	if devMode {
		return tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.TimeOnly,
		})
	}
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
}
