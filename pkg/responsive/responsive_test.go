package responsive

import (
	"slices"
	"testing"

	"github.com/matzehuels/gridpack/pkg/errors"
	"github.com/matzehuels/gridpack/pkg/grid"
)

var defaultBreakpoints = Breakpoints{"lg": 1200, "md": 996, "sm": 768, "xs": 480, "xxs": 0}

func TestSortBreakpoints(t *testing.T) {
	tests := []struct {
		name string
		in   Breakpoints
		want []string
	}{
		{"defaults", defaultBreakpoints, []string{"xxs", "xs", "sm", "md", "lg"}},
		{"ties by name", Breakpoints{"b": 0, "a": 0, "c": 10}, []string{"a", "b", "c"}},
		{"empty", Breakpoints{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortBreakpoints(tt.in)
			if len(got) != len(tt.want) || (len(got) > 0 && !slices.Equal(got, tt.want)) {
				t.Errorf("SortBreakpoints() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBreakpointFromWidth(t *testing.T) {
	b := Breakpoints{"sm": 0, "md": 768, "lg": 1200}

	tests := []struct {
		width int
		want  string
	}{
		{900, "md"},
		{768, "sm"},
		{769, "md"},
		{1200, "md"},
		{1201, "lg"},
		{0, "sm"},
		{-10, "sm"},
	}

	for _, tt := range tests {
		if got := BreakpointFromWidth(b, tt.width); got != tt.want {
			t.Errorf("BreakpointFromWidth(%d) = %q, want %q", tt.width, got, tt.want)
		}
	}

	if got := BreakpointFromWidth(nil, 500); got != "" {
		t.Errorf("BreakpointFromWidth(nil) = %q, want empty", got)
	}
}

func TestColsFromBreakpoint(t *testing.T) {
	cols := Cols{"lg": 12, "sm": 6}

	n, err := ColsFromBreakpoint("sm", cols)
	if err != nil || n != 6 {
		t.Errorf("ColsFromBreakpoint(sm) = %d, %v; want 6, nil", n, err)
	}

	if _, err := ColsFromBreakpoint("md", cols); !errors.Is(err, errors.ErrCodeUnknownBreakpoint) {
		t.Errorf("ColsFromBreakpoint(md) error = %v, want UNKNOWN_BREAKPOINT", err)
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name string
		b    Breakpoints
		cols Cols
		code errors.Code
	}{
		{"consistent", Breakpoints{"sm": 0, "lg": 1200}, Cols{"sm": 6, "lg": 12}, ""},
		{"missing cols", Breakpoints{"sm": 0, "lg": 1200}, Cols{"sm": 6}, errors.ErrCodeUnknownBreakpoint},
		{"zero cols", Breakpoints{"sm": 0}, Cols{"sm": 0}, errors.ErrCodeInvalidConfig},
		{"no breakpoints", Breakpoints{}, Cols{}, errors.ErrCodeInvalidConfig},
		{"bad name", Breakpoints{"big screen": 0}, Cols{"big screen": 4}, errors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.b, tt.cols)
			if tt.code == "" {
				if err != nil {
					t.Errorf("Check() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Check() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestFindOrGenerate(t *testing.T) {
	b := Breakpoints{"sm": 0, "md": 768, "lg": 1200}
	wide := grid.Layout{{ID: "a", X: 8, Y: 0, W: 4, H: 1}}
	mid := grid.Layout{{ID: "a", X: 1, Y: 0, W: 4, H: 1}}

	tests := []struct {
		name  string
		req   Request
		wantX int
		wantY int
		wantW int
	}{
		{
			name:  "cached target returned untouched",
			req:   Request{Cached: Layouts{"sm": {{ID: "a", X: 10, Y: 3, W: 2, H: 1}}}, Breakpoints: b, Breakpoint: "sm", Cols: 6, VerticalCompact: true},
			wantX: 10, wantY: 3, wantW: 2,
		},
		{
			name:  "derived from larger cached layout",
			req:   Request{Cached: Layouts{"lg": wide}, Breakpoints: b, Breakpoint: "sm", Cols: 6, VerticalCompact: true},
			wantX: 2, wantY: 0, wantW: 4,
		},
		{
			name:  "nearest larger layout wins",
			req:   Request{Cached: Layouts{"lg": wide, "md": mid}, Breakpoints: b, Breakpoint: "sm", Cols: 6, VerticalCompact: true},
			wantX: 1, wantY: 0, wantW: 4,
		},
		{
			name:  "smaller cached layout ignored",
			req:   Request{Base: grid.Layout{{ID: "a", X: 0, Y: 4, W: 1, H: 1}}, Cached: Layouts{"sm": wide}, Breakpoints: b, Breakpoint: "md", Cols: 10, VerticalCompact: true},
			wantX: 0, wantY: 0, wantW: 1,
		},
		{
			name:  "base without vertical compaction",
			req:   Request{Base: grid.Layout{{ID: "a", X: 0, Y: 4, W: 1, H: 1}}, Breakpoints: b, Breakpoint: "lg", Cols: 12},
			wantX: 0, wantY: 4, wantW: 1,
		},
		{
			name:  "unknown target uses base",
			req:   Request{Base: grid.Layout{{ID: "a", X: 0, Y: 0, W: 20, H: 1}}, Cached: Layouts{"lg": wide}, Breakpoints: b, Breakpoint: "xl", Cols: 12},
			wantX: 0, wantY: 0, wantW: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindOrGenerate(tt.req)
			if len(got) != 1 {
				t.Fatalf("FindOrGenerate() returned %d items, want 1", len(got))
			}
			if it := got[0]; it.X != tt.wantX || it.Y != tt.wantY || it.W != tt.wantW {
				t.Errorf("FindOrGenerate() = %+v, want x=%d y=%d w=%d", it, tt.wantX, tt.wantY, tt.wantW)
			}
		})
	}

	if wide[0].X != 8 {
		t.Errorf("cached layout mutated: x = %d, want 8", wide[0].X)
	}
}

func TestFindOrGenerateReturnsCopy(t *testing.T) {
	cached := Layouts{"sm": {{ID: "a", W: 1, H: 1}}}
	got := FindOrGenerate(Request{Cached: cached, Breakpoints: Breakpoints{"sm": 0}, Breakpoint: "sm", Cols: 6})
	got[0].X = 5
	if cached["sm"][0].X != 0 {
		t.Error("FindOrGenerate() returned the cached slice itself")
	}
}

func TestTracker(t *testing.T) {
	base := grid.Layout{{ID: "a", X: 8, Y: 0, W: 4, H: 1}}
	tr, err := NewTracker(base, Breakpoints{"sm": 0, "lg": 1200}, Cols{"sm": 6, "lg": 12}, nil, true)
	if err != nil {
		t.Fatalf("NewTracker() error = %v", err)
	}

	ch, err := tr.Resize(1300, nil)
	if err != nil {
		t.Fatalf("Resize(1300) error = %v", err)
	}
	if ch.Breakpoint != "lg" || ch.Cols != 12 || !ch.Changed || ch.Layout[0].X != 8 {
		t.Errorf("Resize(1300) = %+v, want lg/12 with a at x=8", ch)
	}

	dragged := grid.Layout{{ID: "a", X: 0, Y: 0, W: 4, H: 1}}
	ch, err = tr.Resize(500, dragged)
	if err != nil {
		t.Fatalf("Resize(500) error = %v", err)
	}
	if ch.Breakpoint != "sm" || ch.Cols != 6 || !ch.Changed {
		t.Errorf("Resize(500) = %+v, want changed to sm/6", ch)
	}
	if ch.Layout[0].X != 0 {
		t.Errorf("sm derived from edited lg: x = %d, want 0", ch.Layout[0].X)
	}

	ch, err = tr.Resize(600, ch.Layout)
	if err != nil {
		t.Fatalf("Resize(600) error = %v", err)
	}
	if ch.Changed {
		t.Error("Resize(600) reported a breakpoint change within sm")
	}

	ch, err = tr.Resize(1300, ch.Layout)
	if err != nil {
		t.Fatalf("Resize(1300) error = %v", err)
	}
	if ch.Layout[0].X != 0 {
		t.Errorf("lg after round trip: x = %d, want the edited 0", ch.Layout[0].X)
	}
	if got := len(tr.Layouts()); got != 2 {
		t.Errorf("tracker holds %d layouts, want 2", got)
	}
	if tr.Breakpoint() != "lg" {
		t.Errorf("Breakpoint() = %q, want lg", tr.Breakpoint())
	}
}

func TestNewTrackerRejectsInconsistentConfig(t *testing.T) {
	_, err := NewTracker(nil, Breakpoints{"sm": 0, "lg": 1200}, Cols{"sm": 6}, nil, true)
	if !errors.Is(err, errors.ErrCodeUnknownBreakpoint) {
		t.Errorf("NewTracker() error = %v, want UNKNOWN_BREAKPOINT", err)
	}
}
