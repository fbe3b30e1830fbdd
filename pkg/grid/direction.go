package grid

// Direction is the dominant direction of a single move.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Horizontal reports whether d is Left or Right.
func (d Direction) Horizontal() bool { return d == DirLeft || d == DirRight }

// MovingDirection picks the direction of a move from (oldX, oldY) to (x, y).
//
// A diagonal move sets more than one flag; the first one in the order
// Down, Left, Right, Up wins. This ordering decides which collisions get
// horizontal rather than vertical treatment and must not change.
func MovingDirection(oldX, oldY, x, y int) Direction {
	switch {
	case oldY < y:
		return DirDown
	case oldX > x:
		return DirLeft
	case oldX < x:
		return DirRight
	case oldY > y:
		return DirUp
	}
	return DirNone
}

// directionOffset returns where mover should go to get out of blocker's way
// for a move in direction d. Horizontal moves hop the mover across the
// blocker's width at the blocker's row; anything else drops it one row.
func directionOffset(d Direction, blocker, mover Item) (x, y int) {
	switch d {
	case DirLeft:
		return mover.X + blocker.W, blocker.Y
	case DirRight:
		return mover.X - blocker.W, blocker.Y
	default:
		return mover.X, mover.Y + 1
	}
}
