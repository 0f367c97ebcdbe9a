package game

// Snapshot is an immutable copy of the visible game state for one tick.
// Observers (tests, debug tooling) read this instead of reaching into
// the game's mutable fields.
type Snapshot struct {
	Tick  int
	Phase Phase

	BallX, BallY int
	BallDir      Dir

	PaddleX     int
	PaddleWidth int

	Score      int
	Lives      int
	Round      int
	FinalScore int
	Serving    bool
	Paused     bool
}

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:        g.tickCount,
		Phase:       g.phase,
		BallX:       g.ball.X,
		BallY:       g.ball.Y,
		BallDir:     g.ball.Dir,
		PaddleX:     g.paddle.X,
		PaddleWidth: g.paddle.Width,
		Score:       g.score,
		Lives:       g.lives,
		Round:       g.round,
		FinalScore:  g.FinalScore(),
		Serving:     g.serveDelay > 0,
		Paused:      g.paused,
	}
}
