package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/genogrid/pkg/pipeline"
)

// newLogger creates a logger writing to w with "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// renderLog logs the lifecycle of one render of input.
type renderLog struct {
	logger *log.Logger
	start  time.Time
	now    func() time.Time
}

func newRenderLog(l *log.Logger, input string) *renderLog {
	rl := &renderLog{logger: l.With("input", input), now: time.Now}
	rl.start = rl.now()
	rl.logger.Debug("render started")
	return rl
}

func (rl *renderLog) elapsed() time.Duration {
	return rl.now().Sub(rl.start).Round(time.Millisecond)
}

// rendered logs the completion line, e.g. "Rendered 4 cells (12ms) side=50".
func (rl *renderLog) rendered(res *pipeline.Result) {
	g := res.Grid
	rl.logger.Infof("Rendered %d cells (%s)", res.Stats.Items, rl.elapsed())
	rl.logger.Debug("layout",
		"side", g.Side, "columns", g.Columns(), "rows", g.Rows(),
		"categories", res.Stats.Categories, "formats", len(res.Artifacts))
}

// failed logs a render error with the time spent before it.
func (rl *renderLog) failed(err error, cancelled bool) {
	if cancelled {
		rl.logger.Warn("render cancelled", "after", rl.elapsed())
		return
	}
	rl.logger.Debug("render failed", "err", err, "after", rl.elapsed())
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger set by the root command, or a
// warn-level logger on the status output when none is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return newLogger(statusOut, log.WarnLevel)
}
