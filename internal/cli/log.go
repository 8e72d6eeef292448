package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger writes to w (stderr in main) so stdout carries only answers,
// reports and diagrams.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one CLI step, such as counting triangles or rendering a
// diagram, and logs it at Info when done.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs e.g. "Found 7 triangles (3ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type loggerCtxKey struct{}

// withLogger attaches l to ctx; the root command does this before any
// subcommand runs.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default() for contexts that never passed through the root command.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerCtxKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
