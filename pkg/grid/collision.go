package grid

// Collides reports whether a and b overlap as open rectangles.
// Items sharing an ID are the same item and never collide; items that only
// touch along an edge do not collide either.
func Collides(a, b Item) bool {
	if a.ID == b.ID {
		return false
	}
	return overlaps(a, b)
}

func overlaps(a, b Item) bool {
	return a.X < b.Right() && b.X < a.Right() &&
		a.Y < b.Bottom() && b.Y < a.Bottom()
}

// FirstCollision returns the first item of l, in layout order, that collides with it.
func (l Layout) FirstCollision(it Item) (Item, bool) {
	for _, other := range l {
		if Collides(other, it) {
			return other, true
		}
	}
	return Item{}, false
}

// AllCollisions returns every item of l that collides with it, in layout order.
// Resolution code depends on this order.
func (l Layout) AllCollisions(it Item) []Item {
	var out []Item
	for _, other := range l {
		if Collides(other, it) {
			out = append(out, other)
		}
	}
	return out
}

// collides is the engine-internal test. Identity is the pointer, which lets
// a probe rectangle be checked against the very item it was derived from.
func collides(a, b *Item) bool {
	return a != b && overlaps(*a, *b)
}

func firstCollision(items []*Item, it *Item) *Item {
	for _, other := range items {
		if collides(other, it) {
			return other
		}
	}
	return nil
}

func allCollisions(items []*Item, it *Item) []*Item {
	var out []*Item
	for _, other := range items {
		if collides(other, it) {
			out = append(out, other)
		}
	}
	return out
}
