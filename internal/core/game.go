package core

// Game is the interface the platform drives each tick. The game contains
// pure logic with no external dependencies (especially no Bubble Tea); the
// platform handles input mapping, timing, and terminal display.
type Game interface {
	// ID returns a stable identifier for this game (e.g., "thruwall").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start; the RuntimeConfig provides screen dimensions
	// and the RNG seed.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions.
	Step(in InputFrame) StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
