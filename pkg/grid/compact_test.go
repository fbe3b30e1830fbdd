package grid

import (
	"slices"
	"testing"
)

type pos struct{ X, Y int }

func positions(l Layout) map[string]pos {
	out := make(map[string]pos, len(l))
	for _, it := range l {
		out[it.ID] = pos{it.X, it.Y}
	}
	return out
}

func checkPositions(t *testing.T, got Layout, want map[string]pos) {
	t.Helper()
	have := positions(got)
	for id, p := range want {
		if have[id] != p {
			t.Errorf("%s at %v, want %v", id, have[id], p)
		}
	}
}

func TestCompact(t *testing.T) {
	tests := []struct {
		name     string
		in       Layout
		vertical bool
		want     map[string]pos
	}{
		{
			name:     "gap closed",
			in:       Layout{{ID: "a", X: 0, Y: 0, W: 2, H: 2}, {ID: "b", X: 0, Y: 5, W: 2, H: 2}},
			vertical: true,
			want:     map[string]pos{"a": {0, 0}, "b": {0, 2}},
		},
		{
			name:     "floating item rises to top",
			in:       Layout{{ID: "a", X: 3, Y: 8, W: 1, H: 1}},
			vertical: true,
			want:     map[string]pos{"a": {3, 0}},
		},
		{
			name: "packed layout untouched",
			in: Layout{
				{ID: "a", X: 0, Y: 0, W: 2, H: 2},
				{ID: "b", X: 2, Y: 0, W: 2, H: 1},
				{ID: "c", X: 0, Y: 2, W: 4, H: 1},
			},
			vertical: true,
			want:     map[string]pos{"a": {0, 0}, "b": {2, 0}, "c": {0, 2}},
		},
		{
			name: "overlaps pushed down without vertical compaction",
			in: Layout{
				{ID: "a", X: 0, Y: 0, W: 2, H: 2},
				{ID: "b", X: 0, Y: 1, W: 2, H: 2},
				{ID: "c", X: 0, Y: 3, W: 2, H: 1},
			},
			vertical: false,
			want:     map[string]pos{"a": {0, 0}, "b": {0, 2}, "c": {0, 4}},
		},
		{
			name:     "gap kept without vertical compaction",
			in:       Layout{{ID: "a", X: 0, Y: 0, W: 2, H: 2}, {ID: "b", X: 0, Y: 5, W: 2, H: 2}},
			vertical: false,
			want:     map[string]pos{"a": {0, 0}, "b": {0, 5}},
		},
		{
			name: "item rests on static",
			in: Layout{
				{ID: "s", X: 0, Y: 0, W: 2, H: 1, Static: true},
				{ID: "a", X: 0, Y: 5, W: 2, H: 1},
			},
			vertical: true,
			want:     map[string]pos{"s": {0, 0}, "a": {0, 1}},
		},
		{
			name: "static never moves",
			in: Layout{
				{ID: "a", X: 0, Y: 0, W: 2, H: 2},
				{ID: "s", X: 0, Y: 1, W: 2, H: 1, Static: true},
			},
			vertical: true,
			want:     map[string]pos{"s": {0, 1}, "a": {0, 2}},
		},
		{
			name:     "negative y clamped",
			in:       Layout{{ID: "a", X: 0, Y: -3, W: 1, H: 1}},
			vertical: false,
			want:     map[string]pos{"a": {0, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compact(tt.in, tt.vertical)
			checkPositions(t, got, tt.want)
			if !slices.Equal(got.IDs(), tt.in.IDs()) {
				t.Errorf("Compact() order = %v, want %v", got.IDs(), tt.in.IDs())
			}
			if o := Overlaps(got); len(o) > 0 {
				t.Errorf("Compact() left overlaps %v", o)
			}
		})
	}
}

func TestCompactClearsMoved(t *testing.T) {
	in := Layout{
		{ID: "a", X: 0, Y: 0, W: 1, H: 1, Moved: true},
		{ID: "s", X: 1, Y: 0, W: 1, H: 1, Static: true, Moved: true},
	}
	for _, it := range Compact(in, true) {
		if it.Moved {
			t.Errorf("%s.Moved = true after Compact", it.ID)
		}
	}
	if !in[0].Moved {
		t.Error("Compact() mutated its input")
	}
}

func TestCompactEmpty(t *testing.T) {
	got := Compact(nil, true)
	if got == nil || len(got) != 0 {
		t.Errorf("Compact(nil) = %#v, want empty layout", got)
	}
}

func TestCorrectBounds(t *testing.T) {
	tests := []struct {
		name  string
		in    Layout
		cols  int
		want  map[string]pos
		wantW map[string]int
	}{
		{
			name: "overflow shifted left",
			in:   Layout{{ID: "a", X: 5, Y: 0, W: 3, H: 1}},
			cols: 6,
			want: map[string]pos{"a": {3, 0}},
		},
		{
			name:  "negative x becomes full row",
			in:    Layout{{ID: "a", X: -2, Y: 0, W: 2, H: 1}},
			cols:  6,
			want:  map[string]pos{"a": {0, 0}},
			wantW: map[string]int{"a": 6},
		},
		{
			name:  "wider than grid becomes full row",
			in:    Layout{{ID: "a", X: 0, Y: 0, W: 12, H: 1}},
			cols:  4,
			want:  map[string]pos{"a": {0, 0}},
			wantW: map[string]int{"a": 4},
		},
		{
			name: "in bounds untouched",
			in:   Layout{{ID: "a", X: 1, Y: 2, W: 3, H: 1}},
			cols: 6,
			want: map[string]pos{"a": {1, 2}},
		},
		{
			name: "shifted items left overlapping",
			in: Layout{
				{ID: "a", X: 3, Y: 0, W: 3, H: 1},
				{ID: "b", X: 5, Y: 0, W: 3, H: 1},
			},
			cols: 6,
			want: map[string]pos{"a": {3, 0}, "b": {3, 0}},
		},
		{
			name: "shifted static pushed below static",
			in: Layout{
				{ID: "s1", X: 0, Y: 0, W: 4, H: 1, Static: true},
				{ID: "s2", X: 10, Y: 0, W: 4, H: 1, Static: true},
			},
			cols: 6,
			want: map[string]pos{"s1": {0, 0}, "s2": {2, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CorrectBounds(tt.in, tt.cols)
			checkPositions(t, got, tt.want)
			for id, w := range tt.wantW {
				if it, _ := got.Item(id); it.W != w {
					t.Errorf("%s.W = %d, want %d", id, it.W, w)
				}
			}
			for _, it := range got {
				if it.X < 0 || it.Right() > tt.cols {
					t.Errorf("%s spans [%d,%d), outside [0,%d)", it.ID, it.X, it.Right(), tt.cols)
				}
			}
		})
	}
}
