// Package pipeline runs grid operations for every gridpack entry point.
//
// The CLI, the interactive editor, and the HTTP service all go through a
// [Runner], so validation, caching, logging, and hooks behave the same no
// matter where a request comes from.
//
// # Operations
//
//   - [Runner.Compact]: close vertical gaps
//   - [Runner.CorrectBounds]: fit items into a column count
//   - [Runner.Move]: the drag handler, a move followed by a compaction
//   - [Runner.Resize]: the resize handler, a resize followed by a compaction
//   - [Runner.Resolve]: pick the breakpoint for a width and derive its layout
//
// Compact, CorrectBounds and Resolve results are cached. Move and Resize
// depend on the item being dragged and are always recomputed.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.OptionsFromConfig(cfg)
//	out, err := runner.Move(ctx, layout, "chart", 4, 0, opts)
//
//	res, err := runner.Resolve(ctx, pipeline.ResolveOptions{
//	    Layout:      layout,
//	    Width:       900,
//	    Breakpoints: cfg.Breakpoints,
//	    Cols:        cfg.Cols,
//	})
package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridpack/pkg/config"
	"github.com/matzehuels/gridpack/pkg/errors"
	"github.com/matzehuels/gridpack/pkg/grid"
	"github.com/matzehuels/gridpack/pkg/responsive"
)

// DefaultCols is the column count used when Options.Cols is zero.
const DefaultCols = 12

// Operation names, used in cache keys and log lines.
const (
	OpCompact = "compact"
	OpBounds  = "bounds"
	OpMove    = "move"
	OpResize  = "resize"
	OpResolve = "resolve"
)

// Options configures the single-layout operations.
type Options struct {
	// Cols is the grid width for CorrectBounds. Zero means DefaultCols.
	Cols int `json:"cols,omitempty"`

	VerticalCompact  bool `json:"vertical_compact"`
	HorizontalShift  bool `json:"horizontal_shift,omitempty"`
	PreventCollision bool `json:"prevent_collision,omitempty"`

	// MaxDepth bounds move cascades. Zero means grid.DefaultMaxCascadeDepth.
	MaxDepth int `json:"max_depth,omitempty"`

	// Refresh skips cache reads; results are still written.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`
}

// OptionsFromConfig returns options carrying the engine settings of c.
func OptionsFromConfig(c *config.Config) Options {
	return Options{
		VerticalCompact:  c.VerticalCompact,
		HorizontalShift:  c.HorizontalShift,
		PreventCollision: c.PreventCollision,
		MaxDepth:         c.MaxCascadeDepth,
	}
}

// ValidateAndSetDefaults checks the options and fills in defaults. It is
// safe to call more than once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Cols == 0 {
		o.Cols = DefaultCols
	}
	if err := errors.ValidateCols(o.Cols); err != nil {
		return err
	}
	if o.MaxDepth < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max_depth must not be negative, got %d", o.MaxDepth)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// MoveOptions returns the engine options for a move.
func (o Options) MoveOptions(userAction bool) grid.MoveOptions {
	return grid.MoveOptions{
		IsUserAction:     userAction,
		HorizontalShift:  o.HorizontalShift,
		PreventCollision: o.PreventCollision,
		MaxDepth:         o.MaxDepth,
	}
}

// ResolveOptions describes one breakpoint resolution.
type ResolveOptions struct {
	// Layout is the base layout, used when no responsive layout applies.
	Layout grid.Layout `json:"layout"`

	// Responsive holds layouts already known per breakpoint.
	Responsive responsive.Layouts `json:"responsive,omitempty"`

	// Width is the container width in pixels.
	Width int `json:"width"`

	// LastBreakpoint is the breakpoint the caller was on. It is only logged.
	LastBreakpoint string `json:"last_breakpoint,omitempty"`

	Breakpoints     responsive.Breakpoints `json:"breakpoints"`
	Cols            responsive.Cols        `json:"cols"`
	VerticalCompact bool                   `json:"vertical_compact"`

	Refresh bool        `json:"-"`
	Logger  *log.Logger `json:"-"`
}

// Validate checks the breakpoint tables, the width, and every layout.
func (o *ResolveOptions) Validate() error {
	if o.Width < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "width must not be negative, got %d", o.Width)
	}
	if err := responsive.Check(o.Breakpoints, o.Cols); err != nil {
		return err
	}
	if err := grid.Validate(o.Layout); err != nil {
		return err
	}
	for bp, l := range o.Responsive {
		if err := grid.Validate(l); err != nil {
			return errors.Wrap(errors.GetCode(err), err, "breakpoint %q", bp)
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// Resolution is the outcome of Resolve.
type Resolution struct {
	Breakpoint string      `json:"breakpoint"`
	Cols       int         `json:"cols"`
	Layout     grid.Layout `json:"layout"`

	// CacheHit reports that the layout came from the runner's cache.
	CacheHit bool `json:"cache_hit"`
}
