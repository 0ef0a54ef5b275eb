package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, rounded to the millisecond.
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability Hooks
// =============================================================================

// logHooks writes session and render events to a logger at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnCommand(_ context.Context, sessionID, command string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("command rejected", "session", shortID(sessionID), "command", command, "err", err)
		return
	}
	h.logger.Debug("command", "session", shortID(sessionID), "command", command, "took", d)
}

func (h *logHooks) OnLayout(_ context.Context, sessionID string, nodes, levels int, d time.Duration) {
	h.logger.Debug("layout", "session", shortID(sessionID), "nodes", nodes, "levels", levels, "took", d)
}

func (h *logHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("render start", "formats", formats)
}

func (h *logHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.logger.Error("render failed", "formats", formats, "err", err)
		return
	}
	h.logger.Debug("render complete", "formats", formats, "took", d)
}

// shortID keeps log lines narrow; eight hex digits are plenty within one run.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
