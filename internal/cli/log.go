package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates the CLI logger. Timestamps use "15:04:05.00"; at debug
// level each line also names its call site.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		ReportCaller:    level <= log.DebugLevel,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one layout command.
type progress struct {
	logger *log.Logger
	verb   string
	start  time.Time
}

func newProgress(l *log.Logger, verb string) *progress {
	return &progress{logger: l, verb: verb, start: time.Now()}
}

// done logs the verb with the size of the result and whether it was cached:
//
//	14:32:01.45 INFO Compacted items=12 cached=false took=1ms
func (p *progress) done(items int, cached bool) {
	p.logger.Info(p.verb, "items", items, "cached", cached, "took", p.elapsed())
}

// failed logs err at debug level; the error itself is reported by main.
func (p *progress) failed(err error) {
	p.logger.Debug(p.verb+" failed", "err", err, "took", p.elapsed())
}

func (p *progress) elapsed() time.Duration {
	return time.Since(p.start).Round(time.Millisecond)
}

type loggerKey struct{}

// withLogger attaches l to ctx for loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default when there is none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
