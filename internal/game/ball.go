// Package game implements Thru' The Wall, a single-screen ball-and-paddle
// game. The ball moves on a character grid in discrete compass directions;
// the player slides a paddle along the bottom row and loses a life when the
// ball gets past it.
package game

// Dir is one of the six discrete compass directions the ball can travel,
// a plain enum with unit cell deltas.
type Dir int

const (
	DirDown Dir = iota
	DirUp
	DirDownRight
	DirUpRight
	DirUpLeft
	DirDownLeft
)

// String returns a human-readable name for the direction.
func (d Dir) String() string {
	switch d {
	case DirDown:
		return "Down"
	case DirUp:
		return "Up"
	case DirDownRight:
		return "DownRight"
	case DirUpRight:
		return "UpRight"
	case DirUpLeft:
		return "UpLeft"
	case DirDownLeft:
		return "DownLeft"
	default:
		return "Unknown"
	}
}

// Delta returns the per-step cell offsets for the direction.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirDown:
		return 0, 1
	case DirUp:
		return 0, -1
	case DirDownRight:
		return 1, 1
	case DirUpRight:
		return 1, -1
	case DirUpLeft:
		return -1, -1
	case DirDownLeft:
		return -1, 1
	default:
		return 0, 0
	}
}

// GoingUp returns true if the direction has an upward component.
func (d Dir) GoingUp() bool {
	_, dy := d.Delta()
	return dy < 0
}

// GoingDown returns true if the direction has a downward component.
func (d Dir) GoingDown() bool {
	_, dy := d.Delta()
	return dy > 0
}

// GoingLeft returns true if the direction has a leftward component.
func (d Dir) GoingLeft() bool {
	dx, _ := d.Delta()
	return dx < 0
}

// GoingRight returns true if the direction has a rightward component.
func (d Dir) GoingRight() bool {
	dx, _ := d.Delta()
	return dx > 0
}

// MirrorX reverses the horizontal component, preserving the vertical one.
func (d Dir) MirrorX() Dir {
	switch d {
	case DirDownRight:
		return DirDownLeft
	case DirDownLeft:
		return DirDownRight
	case DirUpRight:
		return DirUpLeft
	case DirUpLeft:
		return DirUpRight
	default:
		return d
	}
}

// MirrorY reverses the vertical component, preserving the horizontal one.
func (d Dir) MirrorY() Dir {
	switch d {
	case DirDown:
		return DirUp
	case DirUp:
		return DirDown
	case DirDownRight:
		return DirUpRight
	case DirUpRight:
		return DirDownRight
	case DirDownLeft:
		return DirUpLeft
	case DirUpLeft:
		return DirDownLeft
	default:
		return d
	}
}

// Ball is the ball state in arena grid coordinates.
// X is the column, Y the row; (0, 0) is the arena's top-left cell.
type Ball struct {
	X, Y int
	Dir  Dir
}

// Advance moves the ball one step along its current direction.
func (b *Ball) Advance() {
	dx, dy := b.Dir.Delta()
	b.X += dx
	b.Y += dy
}
