// Package config loads gridpack settings from a TOML file.
//
// A file only needs the keys it changes; everything else keeps the values
// from [Default]. The [breakpoints] and [cols] tables replace the defaults
// as a whole when present, so a file that defines its own breakpoints does
// not inherit lg/md/sm/xs/xxs.
//
//	vertical_compact  = true
//	horizontal_shift  = false
//	prevent_collision = false
//	margin            = [10, 10]
//	max_cascade_depth = 0
//
//	[breakpoints]
//	desktop = 1024
//	phone   = 0
//
//	[cols]
//	desktop = 12
//	phone   = 4
package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gridpack/pkg/errors"
	"github.com/matzehuels/gridpack/pkg/grid"
	"github.com/matzehuels/gridpack/pkg/responsive"
)

const (
	appName  = "gridpack"
	fileName = "config.toml"
)

// Config holds engine and breakpoint settings.
type Config struct {
	VerticalCompact  bool                   `toml:"vertical_compact"`
	HorizontalShift  bool                   `toml:"horizontal_shift"`
	PreventCollision bool                   `toml:"prevent_collision"`
	Margin           []int                  `toml:"margin"`
	MaxCascadeDepth  int                    `toml:"max_cascade_depth"`
	Breakpoints      responsive.Breakpoints `toml:"breakpoints"`
	Cols             responsive.Cols        `toml:"cols"`
}

// Default returns the stock settings of the grid component.
func Default() *Config {
	return &Config{
		VerticalCompact: true,
		Margin:          []int{10, 10},
		Breakpoints:     responsive.Breakpoints{"lg": 1200, "md": 996, "sm": 768, "xs": 480, "xxs": 0},
		Cols:            responsive.Cols{"lg": 12, "md": 10, "sm": 6, "xs": 4, "xxs": 2},
	}
}

// file mirrors Config with optional fields so that absent keys can be told
// apart from zero values.
type file struct {
	VerticalCompact  *bool                  `toml:"vertical_compact"`
	HorizontalShift  *bool                  `toml:"horizontal_shift"`
	PreventCollision *bool                  `toml:"prevent_collision"`
	Margin           []int                  `toml:"margin"`
	MaxCascadeDepth  *int                   `toml:"max_cascade_depth"`
	Breakpoints      responsive.Breakpoints `toml:"breakpoints"`
	Cols             responsive.Cols        `toml:"cols"`
}

// Parse decodes TOML data over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var f file
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}

	cfg := Default()
	if f.VerticalCompact != nil {
		cfg.VerticalCompact = *f.VerticalCompact
	}
	if f.HorizontalShift != nil {
		cfg.HorizontalShift = *f.HorizontalShift
	}
	if f.PreventCollision != nil {
		cfg.PreventCollision = *f.PreventCollision
	}
	if md.IsDefined("margin") {
		cfg.Margin = f.Margin
	}
	if f.MaxCascadeDepth != nil {
		cfg.MaxCascadeDepth = *f.MaxCascadeDepth
	}
	if md.IsDefined("breakpoints") {
		cfg.Breakpoints = f.Breakpoints
	}
	if md.IsDefined("cols") {
		cfg.Cols = f.Cols
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "load %s", path)
	}
	return cfg, nil
}

// LoadOrDefault loads path when it is set. With an empty path it loads the
// file at DefaultPath if one exists, and returns Default otherwise. The
// second result is the file actually loaded, or "".
func LoadOrDefault(path string) (*Config, string, error) {
	if path != "" {
		cfg, err := Load(path)
		return cfg, path, err
	}
	def, err := DefaultPath()
	if err != nil {
		return Default(), "", nil
	}
	if _, err := os.Stat(def); err != nil {
		return Default(), "", nil
	}
	cfg, err := Load(def)
	return cfg, def, err
}

// DefaultPath returns the config file location following the XDG standard
// (~/.config/gridpack/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Validate checks that every breakpoint has a positive column count, that
// the margin has one or two non-negative values, and that the cascade depth
// is not negative.
func (c *Config) Validate() error {
	if err := errors.ValidateMargin(c.Margin); err != nil {
		return err
	}
	if c.MaxCascadeDepth < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_cascade_depth must not be negative, got %d", c.MaxCascadeDepth)
	}
	if err := responsive.Check(c.Breakpoints, c.Cols); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "breakpoints")
	}
	return nil
}

// Margins returns the margin as a [horizontal, vertical] pair.
// A config that has not been validated may yield the zero value.
func (c *Config) Margins() grid.Margins {
	m, _ := grid.NormalizeMargins(c.Margin)
	return m
}

// MoveOptions builds engine options from the config.
func (c *Config) MoveOptions(userAction bool) grid.MoveOptions {
	return grid.MoveOptions{
		IsUserAction:     userAction,
		HorizontalShift:  c.HorizontalShift,
		PreventCollision: c.PreventCollision,
		MaxDepth:         c.MaxCascadeDepth,
	}
}

// ColsFor returns the column count for a breakpoint.
func (c *Config) ColsFor(bp string) (int, error) {
	return responsive.ColsFromBreakpoint(bp, c.Cols)
}
