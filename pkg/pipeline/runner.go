package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridpack/pkg/cache"
	"github.com/matzehuels/gridpack/pkg/errors"
	"github.com/matzehuels/gridpack/pkg/grid"
	"github.com/matzehuels/gridpack/pkg/observability"
	"github.com/matzehuels/gridpack/pkg/responsive"
)

// Runner executes grid operations with caching.
//
// The Runner holds no per-request state, so one Runner can serve many
// goroutines as long as its Cache does.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// CompactWithCacheInfo compacts l and reports whether the result came from
// the cache.
func (r *Runner) CompactWithCacheInfo(ctx context.Context, l grid.Layout, opts Options) (grid.Layout, bool, error) {
	start := time.Now()
	out, hit, err := r.compact(ctx, l, opts)
	observability.Engine().OnCompact(ctx, len(l), opts.VerticalCompact, time.Since(start), err)
	return out, hit, err
}

// Compact is a convenience wrapper that calls CompactWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Compact(ctx context.Context, l grid.Layout, opts Options) (grid.Layout, error) {
	out, _, err := r.CompactWithCacheInfo(ctx, l, opts)
	return out, err
}

func (r *Runner) compact(ctx context.Context, l grid.Layout, opts Options) (grid.Layout, bool, error) {
	if err := r.prepare(ctx, l, &opts); err != nil {
		return nil, false, err
	}
	key, err := r.layoutKey(l, cache.LayoutKeyOpts{Op: OpCompact, VerticalCompact: opts.VerticalCompact})
	if err != nil {
		return nil, false, err
	}

	out, hit := r.cached(ctx, opts.Logger, OpCompact, key, opts.Refresh, cache.TTLLayout, func() grid.Layout {
		return grid.Compact(l, opts.VerticalCompact)
	})
	opts.Logger.Debug("compacted layout", "items", len(l), "vertical", opts.VerticalCompact, "cache_hit", hit)
	return out, hit, nil
}

// CorrectBoundsWithCacheInfo fits l into opts.Cols columns and reports
// whether the result came from the cache. Items that end up on top of each
// other are pushed down, so the result never overlaps.
func (r *Runner) CorrectBoundsWithCacheInfo(ctx context.Context, l grid.Layout, opts Options) (grid.Layout, bool, error) {
	start := time.Now()
	out, hit, err := r.correctBounds(ctx, l, opts)
	cols := opts.Cols
	if cols == 0 {
		cols = DefaultCols
	}
	observability.Engine().OnCorrectBounds(ctx, len(l), cols, time.Since(start), err)
	return out, hit, err
}

// CorrectBounds is a convenience wrapper that calls
// CorrectBoundsWithCacheInfo and discards the cache hit info.
func (r *Runner) CorrectBounds(ctx context.Context, l grid.Layout, opts Options) (grid.Layout, error) {
	out, _, err := r.CorrectBoundsWithCacheInfo(ctx, l, opts)
	return out, err
}

func (r *Runner) correctBounds(ctx context.Context, l grid.Layout, opts Options) (grid.Layout, bool, error) {
	if err := r.prepare(ctx, l, &opts); err != nil {
		return nil, false, err
	}
	key, err := r.layoutKey(l, cache.LayoutKeyOpts{Op: OpBounds, Cols: opts.Cols})
	if err != nil {
		return nil, false, err
	}

	out, hit := r.cached(ctx, opts.Logger, OpBounds, key, opts.Refresh, cache.TTLLayout, func() grid.Layout {
		// Shifting items left can stack them; settle without pulling up.
		return grid.Compact(grid.CorrectBounds(l, opts.Cols), false)
	})
	opts.Logger.Debug("corrected bounds", "items", len(l), "cols", opts.Cols, "cache_hit", hit)
	return out, hit, nil
}

// Move moves the item id to (x, y) as a user drag and compacts the result.
func (r *Runner) Move(ctx context.Context, l grid.Layout, id string, x, y int, opts Options) (grid.Layout, error) {
	start := time.Now()
	out, err := r.move(ctx, l, id, x, y, opts)
	observability.Engine().OnMove(ctx, id, len(l), time.Since(start), err)
	return out, err
}

func (r *Runner) move(ctx context.Context, l grid.Layout, id string, x, y int, opts Options) (grid.Layout, error) {
	if err := r.prepare(ctx, l, &opts); err != nil {
		return nil, err
	}
	moved, err := grid.MoveElement(l, id, x, y, opts.MoveOptions(true))
	if err != nil {
		return nil, err
	}
	opts.Logger.Debug("moved item", "id", id, "x", x, "y", y)
	return grid.Compact(moved, opts.VerticalCompact), nil
}

// Resize sets the size of item id and compacts the result.
func (r *Runner) Resize(ctx context.Context, l grid.Layout, id string, w, h int, opts Options) (grid.Layout, error) {
	start := time.Now()
	out, err := r.resize(ctx, l, id, w, h, opts)
	observability.Engine().OnResize(ctx, id, len(l), time.Since(start), err)
	return out, err
}

func (r *Runner) resize(ctx context.Context, l grid.Layout, id string, w, h int, opts Options) (grid.Layout, error) {
	if err := r.prepare(ctx, l, &opts); err != nil {
		return nil, err
	}
	resized, err := grid.ResizeElement(l, id, w, h, opts.MoveOptions(true))
	if err != nil {
		return nil, err
	}
	opts.Logger.Debug("resized item", "id", id, "w", w, "h", h)
	return grid.Compact(resized, opts.VerticalCompact), nil
}

// Resolve picks the breakpoint for opts.Width and returns its layout. A
// layout already present in opts.Responsive is returned as is; any other is
// derived from the nearest larger breakpoint's layout or the base layout.
func (r *Runner) Resolve(ctx context.Context, opts ResolveOptions) (*Resolution, error) {
	start := time.Now()
	res, err := r.resolve(ctx, opts)

	var bp string
	var cols int
	var hit bool
	if res != nil {
		bp, cols, hit = res.Breakpoint, res.Cols, res.CacheHit
	}
	observability.Engine().OnResolve(ctx, bp, cols, hit, time.Since(start), err)
	return res, err
}

func (r *Runner) resolve(ctx context.Context, opts ResolveOptions) (*Resolution, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	bp := responsive.BreakpointFromWidth(opts.Breakpoints, opts.Width)
	cols, err := responsive.ColsFromBreakpoint(bp, opts.Cols)
	if err != nil {
		return nil, err
	}
	req := responsive.Request{
		Base:            opts.Layout,
		Cached:          opts.Responsive,
		Breakpoints:     opts.Breakpoints,
		Breakpoint:      bp,
		LastBreakpoint:  opts.LastBreakpoint,
		Cols:            cols,
		VerticalCompact: opts.VerticalCompact,
	}

	res := &Resolution{Breakpoint: bp, Cols: cols}
	if _, ok := opts.Responsive[bp]; ok {
		res.Layout = responsive.FindOrGenerate(req)
	} else {
		inputHash, err := cache.HashJSON(struct {
			Layout      grid.Layout            `json:"layout"`
			Responsive  responsive.Layouts     `json:"responsive"`
			Breakpoints responsive.Breakpoints `json:"breakpoints"`
		}{opts.Layout, opts.Responsive, opts.Breakpoints})
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "hash resolve inputs")
		}
		key := r.Keyer.ResolveKey(inputHash, cache.ResolveKeyOpts{
			Breakpoint:      bp,
			Cols:            cols,
			VerticalCompact: opts.VerticalCompact,
		})
		res.Layout, res.CacheHit = r.cached(ctx, opts.Logger, OpResolve, key, opts.Refresh, cache.TTLResolve, func() grid.Layout {
			return responsive.FindOrGenerate(req)
		})
	}

	opts.Logger.Debug("resolved breakpoint",
		"width", opts.Width,
		"breakpoint", bp,
		"from", opts.LastBreakpoint,
		"cols", cols,
		"cache_hit", res.CacheHit)
	return res, nil
}

// Sweep resolves widths in order, as a container being resized through them
// would. The first visit to a breakpoint derives its layout from the nearest
// larger breakpoint seen so far; later visits reuse it. opts.Width is
// ignored. Sweep returns one Resolution per width and every layout held at
// the end, keyed by breakpoint. Results are not cached.
func (r *Runner) Sweep(ctx context.Context, opts ResolveOptions, widths []int) ([]Resolution, responsive.Layouts, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	if len(widths) == 0 {
		return nil, nil, errors.New(errors.ErrCodeInvalidInput, "no widths to resolve")
	}
	for _, w := range widths {
		if w < 0 {
			return nil, nil, errors.New(errors.ErrCodeInvalidInput, "width must not be negative, got %d", w)
		}
	}
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}

	tr, err := responsive.NewTracker(opts.Layout, opts.Breakpoints, opts.Cols, opts.Responsive, opts.VerticalCompact)
	if err != nil {
		return nil, nil, err
	}

	steps := make([]Resolution, 0, len(widths))
	var current grid.Layout
	for _, w := range widths {
		start := time.Now()
		from := tr.Breakpoint()
		ch, err := tr.Resize(w, current)
		observability.Engine().OnResolve(ctx, ch.Breakpoint, ch.Cols, false, time.Since(start), err)
		if err != nil {
			return nil, nil, err
		}
		if ch.Changed {
			opts.Logger.Debug("breakpoint changed", "width", w, "from", from, "to", ch.Breakpoint, "cols", ch.Cols)
		}
		current = ch.Layout
		steps = append(steps, Resolution{Breakpoint: ch.Breakpoint, Cols: ch.Cols, Layout: ch.Layout})
	}
	return steps, tr.Layouts(), nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// prepare applies the runner's logger and defaults, then checks opts and l.
func (r *Runner) prepare(ctx context.Context, l grid.Layout, opts *Options) error {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	return grid.Validate(l)
}

func (r *Runner) layoutKey(l grid.Layout, opts cache.LayoutKeyOpts) (string, error) {
	h, err := cache.HashJSON(l)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "hash layout")
	}
	return r.Keyer.LayoutKey(h, opts), nil
}

// cached returns the layout stored under key, or computes and stores it.
// Hooks see op as the key type.
// Cache failures are logged and otherwise ignored.
func (r *Runner) cached(ctx context.Context, logger *log.Logger, op, key string, refresh bool, ttl time.Duration, compute func() grid.Layout) (grid.Layout, bool) {
	hooks := observability.Cache()

	if !refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		switch {
		case err != nil:
			logger.Warn("cache read failed", "key", key, "err", err)
		case hit:
			var l grid.Layout
			if err := json.Unmarshal(data, &l); err == nil {
				hooks.OnCacheHit(ctx, op)
				return l, true
			}
			logger.Warn("discarding unreadable cache entry", "key", key)
		}
		hooks.OnCacheMiss(ctx, op)
	}

	l := compute()
	data, err := json.Marshal(l)
	if err != nil {
		return l, false
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		logger.Warn("cache write failed", "key", key, "err", err)
		return l, false
	}
	hooks.OnCacheSet(ctx, op, len(data))
	return l, false
}
