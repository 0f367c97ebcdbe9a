package game

import "testing"

func TestPaddleMoveByClamps(t *testing.T) {
	const arenaW = 32
	p := Paddle{X: 14, Y: 21, Width: 4}

	// Walk hard left - must stop at 0
	for i := 0; i < 50; i++ {
		p.MoveBy(-2, arenaW)
		if p.X < 0 {
			t.Fatalf("paddle left edge out of bounds: %d", p.X)
		}
	}
	if p.X != 0 {
		t.Errorf("after walking left, X = %d, expected 0", p.X)
	}

	// Walk hard right - must stop at arenaW - width
	for i := 0; i < 50; i++ {
		p.MoveBy(2, arenaW)
		if p.X > arenaW-p.Width {
			t.Fatalf("paddle right edge out of bounds: %d", p.X)
		}
	}
	if p.X != arenaW-p.Width {
		t.Errorf("after walking right, X = %d, expected %d", p.X, arenaW-p.Width)
	}

	// Zero delta reclamps without moving
	p.X = 40
	p.MoveBy(0, arenaW)
	if p.X != arenaW-p.Width {
		t.Errorf("MoveBy(0) should reclamp, X = %d", p.X)
	}
}

func TestPaddleCovers(t *testing.T) {
	p := Paddle{X: 10, Y: 21, Width: 4}

	tests := []struct {
		x        int
		expected bool
	}{
		{9, false},
		{10, true},
		{11, true},
		{13, true},
		{14, false},
	}

	for _, tc := range tests {
		if got := p.Covers(tc.x); got != tc.expected {
			t.Errorf("Covers(%d) = %v, expected %v", tc.x, got, tc.expected)
		}
	}

	if p.Right() != 14 {
		t.Errorf("Right() = %d, expected 14", p.Right())
	}
}
