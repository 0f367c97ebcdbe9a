package config

import (
	_ "embed"
)

//go:embed defaults/thruwall.yaml
var defaultYAML []byte

// Default returns the default configuration, matching the embedded YAML.
func Default() Config {
	return Config{
		Arena: ArenaConfig{
			Width:    32,
			Height:   18,
			WallRows: 3,
		},
		Paddle: PaddleConfig{
			Width:     4,
			Speed:     1,
			FastSpeed: 2,
		},
		Ball: BallConfig{
			ServeRow:     10,
			ServeColMin:  8,
			ServeColSpan: 13,
			Interval:     2,
		},
		Gameplay: GameplayConfig{
			Lives:        3,
			ServeDelay:   20,
			PointsPerHit: 10,
			GameBonus:    600,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 300,
			},
			Scaling: ScalingConfig{
				IntervalReduction: 1,
				WidthReduction:    1,
			},
		},
	}
}
