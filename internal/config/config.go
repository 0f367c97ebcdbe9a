// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// Config contains all tunable parameters for Thru' The Wall.
type Config struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Ball       BallConfig       `yaml:"ball"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArenaConfig defines the playfield interior. The platform adds a HUD
// line and a border box around it and centers the block on the
// terminal, so height 18 ends up as a 21-row frame.
type ArenaConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	WallRows int `yaml:"wall_rows"` // Height of the decorative wall band at the top
}

// PaddleConfig defines the player's paddle.
type PaddleConfig struct {
	Width     int `yaml:"width"`
	Speed     int `yaml:"speed"`      // Cells per tick for O/P
	FastSpeed int `yaml:"fast_speed"` // Cells per tick for Shift+O/P
}

// BallConfig defines ball serving and pacing.
type BallConfig struct {
	ServeRow     int `yaml:"serve_row"`      // Row the ball is served from
	ServeColMin  int `yaml:"serve_col_min"`  // Leftmost serve column
	ServeColSpan int `yaml:"serve_col_span"` // Serve column is min + rand(span+1)
	Interval     int `yaml:"interval"`       // Ticks between ball moves (>= 1)
}

// GameplayConfig defines lives and scoring.
type GameplayConfig struct {
	Lives        int `yaml:"lives"`
	ServeDelay   int `yaml:"serve_delay"` // Ticks the ball waits (and blinks) before a serve
	PointsPerHit int `yaml:"points_per_hit"`
	GameBonus    int `yaml:"game_bonus"` // Added per completed game to the final score
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	IntervalReduction int `yaml:"interval_reduction"` // Ball interval reduction at max difficulty
	WidthReduction    int `yaml:"width_reduction"`    // Paddle width reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
