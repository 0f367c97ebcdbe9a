package game

import (
	"math/rand"

	"github.com/zxarcade/thruwall/internal/config"
	"github.com/zxarcade/thruwall/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	WallChar   = '▒'
)

// Phase is the outer game state machine.
type Phase int

const (
	PhaseTitle Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "Title"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game implements the Thru' The Wall game logic.
type Game struct {
	phase  Phase
	arena  Arena
	ball   Ball
	paddle Paddle

	// Counters
	score      int
	lives      int
	round      int // Serve counter, 1-based within a game
	totalGames int // Completed games this process, feeds the final score

	serveDelay int // Ticks left before the ball starts moving
	paused     bool
	done       bool // Player chose to exit from game over

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.Config
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	tickCount  int

	// Layout (computed from screen size)
	offsetX        int // Screen column of the box's left border
	offsetY        int // Screen row of the HUD line
	screenTooSmall bool
}

// New creates a new game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "thruwall"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Thru' The Wall"
}

// Reset initializes the game and shows the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	// Load game config
	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.Default()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}

	normalize(&cfg)
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.arena = Arena{
		W:         cfg.Arena.Width,
		H:         cfg.Arena.Height,
		PaddleRow: cfg.Arena.Height - 1,
	}

	g.calculateLayout()

	g.phase = PhaseTitle
	g.totalGames = 0
	g.tickCount = 0
	g.done = false
}

// normalize clamps config values into playable ranges so a sparse or
// hand-edited YAML cannot wedge the game.
func normalize(cfg *config.Config) {
	cfg.Arena.Width = core.Max(cfg.Arena.Width, 16)
	cfg.Arena.Height = core.Max(cfg.Arena.Height, 10)
	cfg.Arena.WallRows = core.Clamp(cfg.Arena.WallRows, 0, cfg.Arena.Height/3)
	cfg.Paddle.Width = core.Clamp(cfg.Paddle.Width, 2, cfg.Arena.Width/2)
	cfg.Paddle.Speed = core.Max(cfg.Paddle.Speed, 1)
	cfg.Paddle.FastSpeed = core.Max(cfg.Paddle.FastSpeed, cfg.Paddle.Speed)
	cfg.Ball.Interval = core.Max(cfg.Ball.Interval, 1)
	cfg.Ball.ServeRow = core.Clamp(cfg.Ball.ServeRow, 1, cfg.Arena.Height-3)
	cfg.Ball.ServeColMin = core.Clamp(cfg.Ball.ServeColMin, 0, cfg.Arena.Width-1)
	cfg.Ball.ServeColSpan = core.Clamp(cfg.Ball.ServeColSpan, 0, cfg.Arena.Width-1-cfg.Ball.ServeColMin)
	cfg.Gameplay.Lives = core.Max(cfg.Gameplay.Lives, 1)
	cfg.Gameplay.ServeDelay = core.Max(cfg.Gameplay.ServeDelay, 0)
}

// calculateLayout centers the HUD line plus the bordered arena box on the
// screen.
func (g *Game) calculateLayout() {
	boxW := g.arena.W + 2
	blockH := g.arena.H + 3 // HUD line + box borders + arena rows

	g.offsetX = (g.runtime.ScreenW - boxW) / 2
	g.offsetY = (g.runtime.ScreenH - blockH) / 2
	g.screenTooSmall = g.offsetX < 0 || g.offsetY < 0
}

// startGame begins a fresh game from the title or game over screen.
func (g *Game) startGame() {
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.round = 0
	g.paused = false
	g.paddle = Paddle{
		Y:     g.arena.PaddleRow,
		Width: g.cfg.Paddle.Width,
	}
	g.serve()
	g.phase = PhasePlaying
}

// serve places the ball for a new round: the serve row, a random column,
// moving straight down, with the paddle recentered.
func (g *Game) serve() {
	g.round++
	g.ball = Ball{
		X:   g.cfg.Ball.ServeColMin + g.rng.Intn(g.cfg.Ball.ServeColSpan+1),
		Y:   g.cfg.Ball.ServeRow,
		Dir: DirDown,
	}
	g.serveDelay = g.cfg.Gameplay.ServeDelay
	g.paddle.X = (g.arena.W - g.paddle.Width) / 2
	g.paddle.MoveBy(0, g.arena.W)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	switch g.phase {
	case PhaseTitle:
		// Any key starts the game.
		if in.Any() {
			g.startGame()
		}
	case PhasePlaying:
		g.stepPlaying(in)
	case PhaseGameOver:
		switch {
		case in.Has(core.ActionRestart):
			g.startGame()
		case in.Has(core.ActionQuit):
			g.done = true
		}
	}

	return core.StepResult{State: g.State()}
}

// stepPlaying runs one tick of the Playing phase.
func (g *Game) stepPlaying(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}

	// Difficulty can narrow the paddle mid-game; reclamp after.
	width := g.difficulty.PaddleWidth(g.cfg.Paddle.Width, g.score, g.tickCount)
	if width != g.paddle.Width {
		g.paddle.Width = width
		g.paddle.MoveBy(0, g.arena.W)
	}

	g.paddle.MoveBy(paddleDelta(in, g.cfg.Paddle), g.arena.W)

	// The ball waits (blinking) before each serve.
	if g.serveDelay > 0 {
		g.serveDelay--
		return
	}

	interval := g.difficulty.BallInterval(g.cfg.Ball.Interval, g.score, g.tickCount)
	if g.tickCount%interval == 0 {
		g.stepBall()
	}
}

// paddleDelta converts the frame's movement actions to a cell delta.
// Fast (shifted) movement wins over slow on the same side; opposite
// sides cancel.
func paddleDelta(in core.InputFrame, cfg config.PaddleConfig) int {
	delta := 0
	switch {
	case in.Has(core.ActionLeftFast):
		delta -= cfg.FastSpeed
	case in.Has(core.ActionLeft):
		delta -= cfg.Speed
	}
	switch {
	case in.Has(core.ActionRightFast):
		delta += cfg.FastSpeed
	case in.Has(core.ActionRight):
		delta += cfg.Speed
	}
	return delta
}

// stepBall moves the ball one step: paddle rebound first, then wall
// deflection, then the move itself, then the miss check.
func (g *Game) stepBall() {
	if dir, hit := PaddleDeflect(g.ball, g.paddle); hit {
		g.ball.Dir = dir
		g.score += g.cfg.Gameplay.PointsPerHit
	}

	g.ball.Dir = WallDeflect(g.ball, g.arena)
	g.ball.Advance()

	if Missed(g.ball, g.arena) {
		g.loseLife()
	}
}

// loseLife handles the ball crossing the paddle row.
func (g *Game) loseLife() {
	g.lives--
	if g.lives <= 0 {
		g.totalGames++
		g.phase = PhaseGameOver
		return
	}
	g.serve()
}

// FinalScore returns the score shown on the game over screen:
// a bonus per completed game plus the points from the current one.
func (g *Game) FinalScore() int {
	return g.totalGames*g.cfg.Gameplay.GameBonus + g.score
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
		Done:     g.done,
	}
}
