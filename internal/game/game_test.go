package game

import (
	"testing"

	"github.com/zxarcade/thruwall/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 20,
		Seed:     seed,
	}
}

// startPlaying resets the game and presses a key on the title screen.
func startPlaying(t *testing.T, seed int64) *Game {
	t.Helper()

	g := New()
	g.Reset(testRuntime(seed))

	in := core.NewInputFrame()
	in.Set(core.ActionStart)
	g.Step(in)

	if g.phase != PhasePlaying {
		t.Fatalf("expected Playing after a title keypress, got %v", g.phase)
	}
	return g
}

func TestTitleTransitionsOnce(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	if g.phase != PhaseTitle {
		t.Fatalf("fresh game should be on the title screen, got %v", g.phase)
	}

	// Empty frames keep us on the title screen
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.phase != PhaseTitle {
		t.Errorf("empty input should not leave the title screen, got %v", g.phase)
	}

	// Any key starts the game
	in := core.NewInputFrame()
	in.Set(core.ActionStart)
	g.Step(in)
	if g.phase != PhasePlaying {
		t.Fatalf("keypress should start the game, got %v", g.phase)
	}
	if g.round != 1 {
		t.Errorf("round = %d, expected 1", g.round)
	}

	// A second keypress must not re-initialize the running game
	g.score = 50
	in = core.NewInputFrame()
	in.Set(core.ActionStart)
	g.Step(in)
	if g.round != 1 || g.score != 50 {
		t.Errorf("second keypress re-initialized: round=%d score=%d", g.round, g.score)
	}
}

func TestServeState(t *testing.T) {
	g := startPlaying(t, 7)

	if g.ball.Y != g.cfg.Ball.ServeRow {
		t.Errorf("serve row = %d, expected %d", g.ball.Y, g.cfg.Ball.ServeRow)
	}
	min := g.cfg.Ball.ServeColMin
	max := min + g.cfg.Ball.ServeColSpan
	if g.ball.X < min || g.ball.X > max {
		t.Errorf("serve column %d outside [%d, %d]", g.ball.X, min, max)
	}
	if g.ball.Dir != DirDown {
		t.Errorf("serve direction = %v, expected Down", g.ball.Dir)
	}
	if g.serveDelay != g.cfg.Gameplay.ServeDelay {
		t.Errorf("serve delay = %d, expected %d", g.serveDelay, g.cfg.Gameplay.ServeDelay)
	}
	if g.lives != g.cfg.Gameplay.Lives {
		t.Errorf("lives = %d, expected %d", g.lives, g.cfg.Gameplay.Lives)
	}
}

func TestPaddleStaysInBoundsUnderInput(t *testing.T) {
	g := startPlaying(t, 3)

	// Hammer the paddle in both directions for a while
	for i := 0; i < 400; i++ {
		in := core.NewInputFrame()
		switch {
		case i%7 == 0:
			in.Set(core.ActionLeftFast)
		case i%3 == 0:
			in.Set(core.ActionLeft)
		case i%2 == 0:
			in.Set(core.ActionRightFast)
		default:
			in.Set(core.ActionRight)
		}
		g.Step(in)

		if g.phase != PhasePlaying {
			break
		}
		if g.paddle.X < 0 || g.paddle.X > g.arena.W-g.paddle.Width {
			t.Fatalf("tick %d: paddle X = %d outside [0, %d]", i, g.paddle.X, g.arena.W-g.paddle.Width)
		}
	}
}

func TestRightWallScenario(t *testing.T) {
	g := startPlaying(t, 5)
	g.serveDelay = 0

	// Ball touching the right wall moving down-right
	g.ball = Ball{X: g.arena.W - 1, Y: 5, Dir: DirDownRight}

	g.stepBall()
	if g.ball.Dir != DirDownLeft {
		t.Fatalf("direction after right wall = %v, expected DownLeft", g.ball.Dir)
	}

	// X decreases from here on
	prevX := g.ball.X
	g.stepBall()
	if g.ball.X >= prevX {
		t.Errorf("ball X should decrease after the right wall bounce: %d -> %d", prevX, g.ball.X)
	}
}

func TestTopWallScenario(t *testing.T) {
	g := startPlaying(t, 5)
	g.serveDelay = 0

	// Ball on the top row moving up-right: vertical reverses, horizontal holds
	g.ball = Ball{X: 10, Y: 0, Dir: DirUpRight}

	g.stepBall()
	if g.ball.Dir != DirDownRight {
		t.Fatalf("direction after top wall = %v, expected DownRight", g.ball.Dir)
	}
	if g.ball.X != 11 || g.ball.Y != 1 {
		t.Errorf("ball at (%d, %d), expected (11, 1)", g.ball.X, g.ball.Y)
	}
}

func TestPaddleHitScores(t *testing.T) {
	g := startPlaying(t, 5)
	g.serveDelay = 0

	// Drop the ball onto the paddle's midpoint cell
	g.paddle.X = 10
	g.ball = Ball{X: 12, Y: g.arena.PaddleRow - 1, Dir: DirDown}

	g.stepBall()
	if g.score != g.cfg.Gameplay.PointsPerHit {
		t.Errorf("score = %d, expected %d", g.score, g.cfg.Gameplay.PointsPerHit)
	}
	if g.ball.Dir != DirUp {
		t.Errorf("rebound = %v, expected Up", g.ball.Dir)
	}
	if g.ball.Y != g.arena.PaddleRow-2 {
		t.Errorf("ball row = %d, expected %d", g.ball.Y, g.arena.PaddleRow-2)
	}
	if g.lives != g.cfg.Gameplay.Lives {
		t.Errorf("a paddle hit must not cost a life, lives = %d", g.lives)
	}
}

func TestMissCostsLifeAndReserves(t *testing.T) {
	g := startPlaying(t, 5)
	g.serveDelay = 0
	livesBefore := g.lives
	roundBefore := g.round

	// Ball drops past a paddle parked elsewhere
	g.paddle.X = g.arena.W - g.paddle.Width
	g.ball = Ball{X: 0, Y: g.arena.PaddleRow - 1, Dir: DirDown}

	g.stepBall()
	if g.lives != livesBefore-1 {
		t.Errorf("lives = %d, expected %d", g.lives, livesBefore-1)
	}
	if g.phase != PhasePlaying {
		t.Errorf("with lives remaining the game continues, got %v", g.phase)
	}
	if g.round != roundBefore+1 {
		t.Errorf("round = %d, expected %d", g.round, roundBefore+1)
	}
	if g.ball.Y != g.cfg.Ball.ServeRow || g.ball.Dir != DirDown {
		t.Errorf("ball should be re-served, got (%d, %d) %v", g.ball.X, g.ball.Y, g.ball.Dir)
	}
	if g.serveDelay != g.cfg.Gameplay.ServeDelay {
		t.Errorf("serve delay = %d, expected %d", g.serveDelay, g.cfg.Gameplay.ServeDelay)
	}
}

func TestLastLifeMissEndsGameImmediately(t *testing.T) {
	g := startPlaying(t, 5)
	g.serveDelay = 0
	g.lives = 1

	g.paddle.X = g.arena.W - g.paddle.Width
	g.ball = Ball{X: 0, Y: g.arena.PaddleRow - 1, Dir: DirDown}

	g.stepBall()
	if g.phase != PhaseGameOver {
		t.Fatalf("expected GameOver on the same tick, got %v", g.phase)
	}
	if !g.State().GameOver {
		t.Error("State().GameOver should be true")
	}
	if g.totalGames != 1 {
		t.Errorf("totalGames = %d, expected 1", g.totalGames)
	}
}

// gameOver drives a started game to the game over screen.
func gameOver(t *testing.T, g *Game) {
	t.Helper()
	g.serveDelay = 0
	g.lives = 1
	g.paddle.X = g.arena.W - g.paddle.Width
	g.ball = Ball{X: 0, Y: g.arena.PaddleRow - 1, Dir: DirDown}
	g.stepBall()
	if g.phase != PhaseGameOver {
		t.Fatalf("could not reach game over, phase = %v", g.phase)
	}
}

func TestGameOverRestart(t *testing.T) {
	g := startPlaying(t, 5)
	g.score = 120
	gameOver(t, g)

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in)

	if g.phase != PhasePlaying {
		t.Fatalf("Y should start a fresh game, got %v", g.phase)
	}
	if g.score != 0 {
		t.Errorf("restart should reset score, got %d", g.score)
	}
	if g.lives != g.cfg.Gameplay.Lives {
		t.Errorf("restart should reset lives, got %d", g.lives)
	}
	if g.round != 1 {
		t.Errorf("restart should reset round, got %d", g.round)
	}
	if g.State().Done {
		t.Error("restart must not signal exit")
	}
}

func TestGameOverQuit(t *testing.T) {
	g := startPlaying(t, 5)
	gameOver(t, g)

	in := core.NewInputFrame()
	in.Set(core.ActionQuit)
	result := g.Step(in)

	if !result.State.Done {
		t.Error("N on game over should signal exit")
	}
	if g.phase != PhaseGameOver {
		t.Errorf("phase should remain GameOver, got %v", g.phase)
	}
}

func TestFinalScoreFormula(t *testing.T) {
	g := startPlaying(t, 5)
	g.score = 120
	gameOver(t, g)

	want := g.cfg.Gameplay.GameBonus + 120
	if got := g.FinalScore(); got != want {
		t.Errorf("FinalScore() = %d, expected %d", got, want)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := New()
		g.Reset(testRuntime(12345))

		start := core.NewInputFrame()
		start.Set(core.ActionStart)
		g.Step(start)

		for i := 0; i < 300; i++ {
			in := core.NewInputFrame()
			if i%4 == 0 {
				in.Set(core.ActionLeft)
			}
			if i%9 == 0 {
				in.Set(core.ActionRightFast)
			}
			g.Step(in)
		}
		return g.Snapshot()
	}

	s1 := run()
	s2 := run()
	if s1 != s2 {
		t.Errorf("same seed and inputs diverged:\n%+v\n%+v", s1, s2)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := startPlaying(t, 5)
	g.serveDelay = 0
	g.ball = Ball{X: 10, Y: 5, Dir: DirDown}

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)
	if !g.paused {
		t.Fatal("pause action should pause the game")
	}

	before := g.ball
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.ball != before {
		t.Error("ball moved while paused")
	}

	in = core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)
	if g.paused {
		t.Error("pause action should unpause the game")
	}
}

func TestBallStaysInArenaWhilePlaying(t *testing.T) {
	g := startPlaying(t, 99)
	g.serveDelay = 0

	for i := 0; i < 2000 && g.phase == PhasePlaying; i++ {
		g.Step(core.NewInputFrame())

		snap := g.Snapshot()
		if snap.Phase != PhasePlaying {
			break
		}
		if snap.BallX < 0 || snap.BallX >= g.arena.W {
			t.Fatalf("tick %d: ball X = %d outside arena", i, snap.BallX)
		}
		// The ball may sit on the paddle row only on the tick a life was
		// lost; after the re-serve it is back at the serve row.
		if snap.BallY < 0 || snap.BallY > g.arena.PaddleRow {
			t.Fatalf("tick %d: ball Y = %d outside arena", i, snap.BallY)
		}
	}
}

func TestRenderSmoke(t *testing.T) {
	g := New()
	g.Reset(testRuntime(5))
	screen := core.NewScreen(80, 24)

	// Title screen shows the name
	g.Render(screen)
	if !containsText(screen, "THRU' THE WALL") {
		t.Error("title screen should show the game name")
	}

	// Playing shows the paddle on its row
	in := core.NewInputFrame()
	in.Set(core.ActionStart)
	g.Step(in)
	g.Render(screen)

	paddleScreenY := g.cellY(g.paddle.Y)
	found := false
	for x := 0; x < screen.Width(); x++ {
		if screen.Get(x, paddleScreenY) == PaddleChar {
			found = true
			break
		}
	}
	if !found {
		t.Error("paddle not drawn on its row")
	}

	// Game over shows the prompt
	gameOver(t, g)
	g.Render(screen)
	if !containsText(screen, "GAME OVER") {
		t.Error("game over screen should show GAME OVER")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 10, ScreenH: 5, TickRate: 20, Seed: 1})

	if !g.screenTooSmall {
		t.Fatal("10x5 terminal should be flagged too small")
	}

	// Stepping is a no-op
	in := core.NewInputFrame()
	in.Set(core.ActionStart)
	g.Step(in)
	if g.phase != PhaseTitle {
		t.Error("too-small game should not start")
	}

	screen := core.NewScreen(10, 5)
	g.Render(screen) // Must not panic
}

func containsText(s *core.Screen, text string) bool {
	for y := 0; y < s.Height(); y++ {
		row := s.Row(y)
		if len(row) >= len(text) {
			for i := 0; i+len(text) <= len(row); i++ {
				if row[i:i+len(text)] == text {
					return true
				}
			}
		}
	}
	return false
}
