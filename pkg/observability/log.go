package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to a logger at debug level, and failed
// operations and server errors at warn level.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks logging to l, or to the default logger if l is nil.
func NewLogHooks(l *log.Logger) *LogHooks {
	if l == nil {
		l = log.Default()
	}
	return &LogHooks{Logger: l.WithPrefix("hooks")}
}

// Register installs h as the engine, cache, and HTTP hooks.
func (h *LogHooks) Register() {
	SetEngineHooks(h)
	SetCacheHooks(h)
	SetHTTPHooks(h)
}

func (h *LogHooks) op(name string, duration time.Duration, err error, kv ...any) {
	kv = append(kv, "duration", duration)
	if err != nil {
		h.Logger.Warn(name+" failed", append(kv, "err", err)...)
		return
	}
	h.Logger.Debug(name, kv...)
}

func (h *LogHooks) OnCompact(_ context.Context, items int, verticalCompact bool, d time.Duration, err error) {
	h.op("compact", d, err, "items", items, "vertical", verticalCompact)
}

func (h *LogHooks) OnCorrectBounds(_ context.Context, items, cols int, d time.Duration, err error) {
	h.op("bounds", d, err, "items", items, "cols", cols)
}

func (h *LogHooks) OnMove(_ context.Context, id string, items int, d time.Duration, err error) {
	h.op("move", d, err, "id", id, "items", items)
}

func (h *LogHooks) OnResize(_ context.Context, id string, items int, d time.Duration, err error) {
	h.op("resize", d, err, "id", id, "items", items)
}

func (h *LogHooks) OnResolve(_ context.Context, bp string, cols int, cacheHit bool, d time.Duration, err error) {
	h.op("resolve", d, err, "breakpoint", bp, "cols", cols, "cache_hit", cacheHit)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.Logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.Logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.Logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, path string) {
	h.Logger.Debug("request", "method", method, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	if status >= 500 {
		h.Logger.Warn("response", "method", method, "path", path, "status", status, "duration", d)
		return
	}
	h.Logger.Debug("response", "method", method, "path", path, "status", status, "duration", d)
}

var (
	_ EngineHooks = (*LogHooks)(nil)
	_ CacheHooks  = (*LogHooks)(nil)
	_ HTTPHooks   = (*LogHooks)(nil)
)
