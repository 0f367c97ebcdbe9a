package game

// Arena is the bounded playing rectangle in grid coordinates.
// Columns run 0..W-1 and rows 0..H-1. There is no bottom wall: the
// paddle row is the last line of defence and crossing it costs a life.
type Arena struct {
	W, H      int
	PaddleRow int // Row the paddle sits on (H-1)
}

// WallDeflect returns the ball's direction after boundary contact.
// Reflection is a pure mirror: the perpendicular component reverses
// and the parallel component is preserved. A ball in a corner gets
// both mirrors applied in the same step.
func WallDeflect(b Ball, a Arena) Dir {
	d := b.Dir
	if b.X <= 0 && d.GoingLeft() {
		d = d.MirrorX()
	}
	if b.X >= a.W-1 && d.GoingRight() {
		d = d.MirrorX()
	}
	if b.Y <= 0 && d.GoingUp() {
		d = d.MirrorY()
	}
	return d
}

// PaddleDeflect returns the rebound direction when the ball sits on the
// contact row directly above the paddle, moving down, with the paddle
// under it. The rebound depends on where along the paddle the ball
// lands: cells left of the midpoint send it up-left, the midpoint cell
// straight up, and cells right of it up-right. For the default width
// of 4 this matches the ZX Spectrum game's rebound rule.
func PaddleDeflect(b Ball, p Paddle) (Dir, bool) {
	if !b.Dir.GoingDown() {
		return b.Dir, false
	}
	if b.Y != p.Y-1 {
		return b.Dir, false
	}
	if !p.Covers(b.X) {
		return b.Dir, false
	}

	offset := b.X - p.X
	half := p.Width / 2
	switch {
	case offset < half:
		return DirUpLeft, true
	case offset == half:
		return DirUp, true
	default:
		return DirUpRight, true
	}
}

// Missed reports whether the ball has crossed the paddle row, which
// triggers a life loss.
func Missed(b Ball, a Arena) bool {
	return b.Y >= a.PaddleRow
}
