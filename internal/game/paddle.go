package game

import "github.com/zxarcade/thruwall/internal/core"

// Paddle is the player's paddle. X is the left edge in arena grid
// coordinates; Y is the fixed row it sits on.
type Paddle struct {
	X     int
	Y     int
	Width int
}

// MoveBy shifts the paddle horizontally by delta cells, clamping so the
// whole paddle stays within [0, arenaW - Width].
func (p *Paddle) MoveBy(delta, arenaW int) {
	p.X = core.Clamp(p.X+delta, 0, arenaW-p.Width)
}

// Covers returns true if column x is within the paddle's span.
func (p Paddle) Covers(x int) bool {
	return x >= p.X && x < p.X+p.Width
}

// Right returns the column just past the paddle's right edge.
func (p Paddle) Right() int {
	return p.X + p.Width
}
