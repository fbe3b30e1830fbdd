package grid

import (
	"slices"
	"testing"
)

func TestCollides(t *testing.T) {
	tests := []struct {
		name string
		a, b Item
		want bool
	}{
		{
			name: "overlapping",
			a:    Item{ID: "a", X: 0, Y: 0, W: 2, H: 2},
			b:    Item{ID: "b", X: 1, Y: 1, W: 2, H: 2},
			want: true,
		},
		{
			name: "same id never collides",
			a:    Item{ID: "a", X: 0, Y: 0, W: 2, H: 2},
			b:    Item{ID: "a", X: 0, Y: 0, W: 2, H: 2},
			want: false,
		},
		{
			name: "touching right edge",
			a:    Item{ID: "a", X: 0, Y: 0, W: 2, H: 2},
			b:    Item{ID: "b", X: 2, Y: 0, W: 2, H: 2},
			want: false,
		},
		{
			name: "touching bottom edge",
			a:    Item{ID: "a", X: 0, Y: 0, W: 2, H: 2},
			b:    Item{ID: "b", X: 0, Y: 2, W: 2, H: 2},
			want: false,
		},
		{
			name: "contained",
			a:    Item{ID: "a", X: 0, Y: 0, W: 4, H: 4},
			b:    Item{ID: "b", X: 1, Y: 1, W: 1, H: 1},
			want: true,
		},
		{
			name: "disjoint",
			a:    Item{ID: "a", X: 0, Y: 0, W: 1, H: 1},
			b:    Item{ID: "b", X: 5, Y: 5, W: 1, H: 1},
			want: false,
		},
		{
			name: "static still collides",
			a:    Item{ID: "a", X: 0, Y: 0, W: 2, H: 1, Static: true},
			b:    Item{ID: "b", X: 1, Y: 0, W: 2, H: 1},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collides(tt.a, tt.b); got != tt.want {
				t.Errorf("Collides() = %v, want %v", got, tt.want)
			}
			if got := Collides(tt.b, tt.a); got != tt.want {
				t.Errorf("Collides() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFirstCollision(t *testing.T) {
	l := Layout{
		{ID: "a", X: 0, Y: 0, W: 2, H: 1},
		{ID: "b", X: 2, Y: 0, W: 2, H: 1},
		{ID: "c", X: 0, Y: 1, W: 4, H: 1},
	}

	got, ok := l.FirstCollision(Item{ID: "probe", X: 1, Y: 0, W: 2, H: 2})
	if !ok {
		t.Fatal("FirstCollision() found nothing, want a")
	}
	if got.ID != "a" {
		t.Errorf("FirstCollision().ID = %q, want %q", got.ID, "a")
	}

	if _, ok := l.FirstCollision(Item{ID: "probe", X: 0, Y: 2, W: 4, H: 1}); ok {
		t.Error("FirstCollision() below the layout should find nothing")
	}
}

func TestAllCollisionsKeepsLayoutOrder(t *testing.T) {
	l := Layout{
		{ID: "c", X: 0, Y: 1, W: 4, H: 1},
		{ID: "a", X: 0, Y: 0, W: 2, H: 1},
		{ID: "b", X: 2, Y: 0, W: 2, H: 1},
	}

	got := Layout(l.AllCollisions(Item{ID: "probe", X: 1, Y: 0, W: 2, H: 2})).IDs()
	want := []string{"c", "a", "b"}
	if !slices.Equal(got, want) {
		t.Errorf("AllCollisions() = %v, want %v", got, want)
	}
}

func TestInternalCollidesUsesIdentity(t *testing.T) {
	a := &Item{ID: "a", X: 0, Y: 0, W: 2, H: 2}
	probe := &Item{ID: "a", X: 0, Y: 1, W: 2, H: 2}

	if collides(a, a) {
		t.Error("collides(a, a) = true, want false")
	}
	if !collides(a, probe) {
		t.Error("a probe derived from an item must still collide with it")
	}
}
